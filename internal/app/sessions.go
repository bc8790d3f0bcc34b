package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/selinkose/cinema-ticketing/api"
	"github.com/selinkose/cinema-ticketing/internal/domain"
)

func (app *Application) CreateSession(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "theatreName")

	hallNumber, err := readIntParam(r, "hallNumber")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input api.CreateSessionRequest

	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var resp api.SessionResponse

	err = app.locker.WithLock(r.Context(), name, func(ctx context.Context) error {
		theatre, err := app.registry.Load(ctx, name)
		if err != nil {
			return err
		}

		hall, err := theatre.Hall(hallNumber)
		if err != nil {
			return err
		}

		session, err := hall.AddSession(input.Movie, input.StartTime, input.DurationMinutes)
		if err != nil {
			return err
		}

		if err := app.registry.Save(ctx, theatre); err != nil {
			return err
		}

		resp = api.SessionResponse{
			Index:           len(hall.Sessions) - 1,
			Movie:           session.Movie,
			StartTime:       session.StartTime,
			DurationMinutes: session.DurationMinutes,
			FreeSeats:       session.Seats.FreeSeats(),
			SoldSeats:       session.Seats.SoldSeats(),
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheatreNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("theatre %q not found", name))
		case errors.Is(err, domain.ErrHallNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("hall %d not found in theatre %q", hallNumber, name))
		case errors.Is(err, domain.ErrEmptyMovieName), errors.Is(err, domain.ErrInvalidDuration):
			app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "theatreName")

	hallNumber, err := readIntParam(r, "hallNumber")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	sessionIndex, err := readIntParam(r, "sessionIndex")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	theatre, err := app.registry.Load(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheatreNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("theatre %q not found", name))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	hall, err := theatre.Hall(hallNumber)
	if err != nil {
		app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("hall %d not found in theatre %q", hallNumber, name))
		return
	}

	session, err := hall.Session(sessionIndex)
	if err != nil {
		app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("session %d not found in hall %d", sessionIndex, hallNumber))
		return
	}

	resp := toSeatMapResponse(theatre.Name, hall.Number, sessionIndex, session)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeatMapResponse(theatre string, hall, sessionIndex int, session *domain.Session) api.SeatMapResponse {
	plan := session.Plan()

	seatRows := make([]api.SeatRow, len(plan.Rows))

	for i, row := range plan.Rows {
		seats := make([]api.Seat, len(row.Seats))

		for j, sold := range row.Seats {
			status := api.SeatFree
			if sold {
				status = api.SeatSold
			}

			seats[j] = api.Seat{Number: j + 1, Status: status}
		}

		seatRows[i] = api.SeatRow{Row: row.Number, Seats: seats}
	}

	return api.SeatMapResponse{
		Theatre:      theatre,
		Hall:         hall,
		SessionIndex: sessionIndex,
		Movie:        session.Movie,
		StartTime:    session.StartTime,
		SeatRows:     seatRows,
		FreeSeats:    plan.FreeSeats,
		SoldSeats:    plan.SoldSeats,
	}
}
