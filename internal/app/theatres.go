package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/selinkose/cinema-ticketing/api"
	"github.com/selinkose/cinema-ticketing/internal/domain"
)

func (app *Application) CreateTheatre(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheatreRequest

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

	theatre, err := app.registry.Create(r.Context(), input.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTheatreExists):
			app.conflictResponse(w, r, fmt.Sprintf("theatre %q already exists", input.Name))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toTheatreResponse(theatre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListTheatres(w http.ResponseWriter, r *http.Request) {
	names, err := app.registry.Names(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	summaries := make([]api.TheatreSummary, 0, len(names))

	for _, name := range names {
		theatre, err := app.registry.Load(r.Context(), name)
		if err != nil {
			app.serverErrorResponse(w, r, err)
			return
		}

		summaries = append(summaries, toTheatreSummary(theatre))
	}

	resp := api.TheatreListResponse{Theatres: summaries}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheatre(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "theatreName")

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

	err = app.writeJSON(w, http.StatusOK, toTheatreResponse(theatre), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheatreResponse(theatre *domain.Theatre) api.TheatreResponse {
	halls := make([]api.HallResponse, len(theatre.Halls))

	for i := range theatre.Halls {
		halls[i] = toHallResponse(&theatre.Halls[i])
	}

	return api.TheatreResponse{
		Name:  theatre.Name,
		Halls: halls,
	}
}

func toHallResponse(hall *domain.Hall) api.HallResponse {
	sessions := make([]api.SessionResponse, len(hall.Sessions))

	for i := range hall.Sessions {
		session := &hall.Sessions[i]

		sessions[i] = api.SessionResponse{
			Index:           i,
			Movie:           session.Movie,
			StartTime:       session.StartTime,
			DurationMinutes: session.DurationMinutes,
			FreeSeats:       session.Seats.FreeSeats(),
			SoldSeats:       session.Seats.SoldSeats(),
		}
	}

	return api.HallResponse{
		Number:      hall.Number,
		Rows:        hall.Rows,
		SeatsPerRow: hall.SeatsPerRow,
		Sessions:    sessions,
	}
}

func toTheatreSummary(theatre *domain.Theatre) api.TheatreSummary {
	halls := make([]api.HallSummary, len(theatre.Halls))

	for i, hall := range theatre.Halls {
		halls[i] = api.HallSummary{
			Number:       hall.Number,
			Rows:         hall.Rows,
			SeatsPerRow:  hall.SeatsPerRow,
			SessionCount: len(hall.Sessions),
		}
	}

	return api.TheatreSummary{
		Name:      theatre.Name,
		HallCount: len(theatre.Halls),
		Halls:     halls,
	}
}
