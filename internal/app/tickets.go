package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/selinkose/cinema-ticketing/api"
	"github.com/selinkose/cinema-ticketing/internal/domain"
)

func (app *Application) SellTicket(w http.ResponseWriter, r *http.Request) {
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

	var input api.SellTicketRequest

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

	var ticket *domain.Ticket

	err = app.locker.WithLock(r.Context(), name, func(ctx context.Context) error {
		theatre, err := app.registry.Load(ctx, name)
		if err != nil {
			return err
		}

		t, err := theatre.SellSeat(hallNumber, sessionIndex, input.Row-1, input.Seat-1)
		if err != nil {
			return err
		}

		if err := app.registry.Save(ctx, theatre); err != nil {
			return err
		}

		ticket = t

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheatreNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("theatre %q not found", name))
		case errors.Is(err, domain.ErrHallNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("hall %d not found in theatre %q", hallNumber, name))
		case errors.Is(err, domain.ErrSessionNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("session %d not found in hall %d", sessionIndex, hallNumber))
		case errors.Is(err, domain.ErrInvalidRow), errors.Is(err, domain.ErrInvalidSeat):
			app.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, domain.ErrSeatAlreadySold):
			app.conflictResponse(w, r, fmt.Sprintf("seat %d-%d is already sold", input.Row, input.Seat))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	app.logger.Info("ticket sold",
		"theatre", ticket.Theatre,
		"hall", ticket.Hall,
		"movie", ticket.Movie,
		"row", ticket.Row,
		"seat", ticket.Seat,
	)

	resp := api.TicketResponse{
		TicketId:  uuid.NewString(),
		Theatre:   ticket.Theatre,
		Hall:      ticket.Hall,
		Movie:     ticket.Movie,
		StartTime: ticket.StartTime,
		Row:       ticket.Row,
		Seat:      ticket.Seat,
	}

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
