package domain

import "errors"

var (
	ErrTheatreExists      = errors.New("theatre already exists")
	ErrTheatreNotFound    = errors.New("theatre not found")
	ErrHallNotFound       = errors.New("hall not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrDuplicateHall      = errors.New("hall number is already in use")
	ErrInvalidGeometry    = errors.New("rows and seats per row must be positive")
	ErrInvalidRow         = errors.New("row is out of range")
	ErrInvalidSeat        = errors.New("seat is out of range")
	ErrSeatAlreadySold    = errors.New("seat is already sold")
	ErrEmptyTheatreName   = errors.New("theatre name must not be empty")
	ErrEmptyMovieName     = errors.New("movie name must not be empty")
	ErrInvalidDuration    = errors.New("duration must be a positive number of minutes")
	ErrNoUpcomingSessions = errors.New("no upcoming sessions with free seats")
)
