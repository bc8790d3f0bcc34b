// Package api defines the request and response types of the HTTP surface.
package api

import "time"

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateTheatreRequest struct {
	Name string `json:"name" validate:"required,max=120,theatre_name"`
}

type AddHallRequest struct {
	Number      int `json:"number" validate:"required,min=1"`
	Rows        int `json:"rows" validate:"required,min=1,max=200"`
	SeatsPerRow int `json:"seatsPerRow" validate:"required,min=1,max=200"`
}

type CreateSessionRequest struct {
	Movie           string `json:"movie" validate:"required,max=200"`
	StartTime       string `json:"startTime" validate:"required,max=50"`
	DurationMinutes int    `json:"durationMinutes" validate:"required,min=1"`
}

// SellTicketRequest addresses a seat the way it is printed on a ticket:
// 1-based row and seat numbers.
type SellTicketRequest struct {
	Row  int `json:"row" validate:"required,min=1"`
	Seat int `json:"seat" validate:"required,min=1"`
}

type TheatreResponse struct {
	Name  string         `json:"name"`
	Halls []HallResponse `json:"halls"`
}

type HallResponse struct {
	Number      int               `json:"number"`
	Rows        int               `json:"rows"`
	SeatsPerRow int               `json:"seatsPerRow"`
	Sessions    []SessionResponse `json:"sessions"`
}

type SessionResponse struct {
	Index           int    `json:"index"`
	Movie           string `json:"movie"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
	FreeSeats       int    `json:"freeSeats"`
	SoldSeats       int    `json:"soldSeats"`
}

type TheatreListResponse struct {
	Theatres []TheatreSummary `json:"theatres"`
}

type TheatreSummary struct {
	Name      string        `json:"name"`
	HallCount int           `json:"hallCount"`
	Halls     []HallSummary `json:"halls"`
}

type HallSummary struct {
	Number       int `json:"number"`
	Rows         int `json:"rows"`
	SeatsPerRow  int `json:"seatsPerRow"`
	SessionCount int `json:"sessionCount"`
}

type TicketResponse struct {
	TicketId  string `json:"ticketId"`
	Theatre   string `json:"theatre"`
	Hall      int    `json:"hall"`
	Movie     string `json:"movie"`
	StartTime string `json:"startTime"`
	Row       int    `json:"row"`
	Seat      int    `json:"seat"`
}

type SeatStatus string

const (
	SeatFree SeatStatus = "free"
	SeatSold SeatStatus = "sold"
)

type Seat struct {
	Number int        `json:"number"`
	Status SeatStatus `json:"status"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	Theatre      string    `json:"theatre"`
	Hall         int       `json:"hall"`
	SessionIndex int       `json:"sessionIndex"`
	Movie        string    `json:"movie"`
	StartTime    string    `json:"startTime"`
	SeatRows     []SeatRow `json:"seatRows"`
	FreeSeats    int       `json:"freeSeats"`
	SoldSeats    int       `json:"soldSeats"`
}

type NearestSessionResponse struct {
	Theatre         string `json:"theatre"`
	Hall            int    `json:"hall"`
	SessionIndex    int    `json:"sessionIndex"`
	Movie           string `json:"movie"`
	StartTime       string `json:"startTime"`
	DurationMinutes int    `json:"durationMinutes"`
}
