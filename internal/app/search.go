package app

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/selinkose/cinema-ticketing/api"
	"github.com/selinkose/cinema-ticketing/internal/domain"
)

func (app *Application) FindNearestSession(w http.ResponseWriter, r *http.Request) {
	movie := strings.TrimSpace(r.URL.Query().Get("movie"))
	if movie == "" {
		app.badRequestResponse(w, r, errors.New("movie query parameter is required"))
		return
	}

	nearest, err := app.finder.NearestSession(r.Context(), movie, app.now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoUpcomingSessions):
			app.errorResponse(w, r, http.StatusNotFound,
				fmt.Sprintf("no upcoming sessions with free seats found for %q", movie))
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	resp := api.NearestSessionResponse{
		Theatre:         nearest.Theatre,
		Hall:            nearest.HallNumber,
		SessionIndex:    nearest.SessionIndex,
		Movie:           nearest.Movie,
		StartTime:       nearest.StartTime,
		DurationMinutes: nearest.DurationMinutes,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
