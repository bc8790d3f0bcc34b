package integration_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t *testing.T, body io.Reader, expectedResponse string) {
	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	// ignore indeterministic fields while comparing
	opts := cmpopts.IgnoreMapEntries(func(k string, _ any) bool {
		return k == "timestamp" || k == "requestId" || k == "ticketId"
	})

	if diff := cmp.Diff(expected, actual, opts); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func seedRequest(t testing.TB, app *TestApp, method, path, body string, wantStatus int) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := prepareRequest(method, path, reader, nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)
	require.Equal(t, wantStatus, rec.Code)
}

func createTheatre(t testing.TB, app *TestApp, name string) {
	seedRequest(t, app, http.MethodPost, "/theatres", fmt.Sprintf(`{"name": %q}`, name), http.StatusCreated)
}

func addHall(t testing.TB, app *TestApp, theatre, body string) {
	seedRequest(t, app, http.MethodPost, "/theatres/"+theatre+"/halls", body, http.StatusCreated)
}

func addSession(t testing.TB, app *TestApp, theatre string, hall int, body string) {
	path := fmt.Sprintf("/theatres/%s/halls/%d/sessions", theatre, hall)
	seedRequest(t, app, http.MethodPost, path, body, http.StatusCreated)
}

func sellTicket(t testing.TB, app *TestApp, theatre string, hall, session int, body string) {
	path := fmt.Sprintf("/theatres/%s/halls/%d/sessions/%d/tickets", theatre, hall, session)
	seedRequest(t, app, http.MethodPost, path, body, http.StatusCreated)
}
