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

func (app *Application) AddHall(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "theatreName")

	var input api.AddHallRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var resp api.HallResponse

	err = app.locker.WithLock(r.Context(), name, func(ctx context.Context) error {
		theatre, err := app.registry.Load(ctx, name)
		if err != nil {
			return err
		}

		hall, err := theatre.AddHall(input.Number, input.Rows, input.SeatsPerRow)
		if err != nil {
			return err
		}

		if err := app.registry.Save(ctx, theatre); err != nil {
			return err
		}

		resp = toHallResponse(hall)

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheatreNotFound):
			app.errorResponse(w, r, http.StatusNotFound, fmt.Sprintf("theatre %q not found", name))
		case errors.Is(err, domain.ErrDuplicateHall):
			app.conflictResponse(w, r, fmt.Sprintf("hall %d already exists in theatre %q", input.Number, name))
		case errors.Is(err, domain.ErrInvalidGeometry):
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
