package userapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/usersummary/internal/domain"
	"github.com/osse101/usersummary/internal/metrics"
	"github.com/osse101/usersummary/internal/testing/leaktest"
)

const sampleUsers = `[
	{"id": 1, "name": "Ann", "username": "ann", "address": {"city": "Chicago", "geo": {"lat": "1.5", "lng": "-2"}}, "company": {"name": "Acme", "bs": "synergy"}},
	{"id": 2, "name": "Bo", "address": {"city": "Lima"}, "company": {"name": "Globex"}}
]`

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchUsers_Success(t *testing.T) {
	srv := newServer(t, http.StatusOK, sampleUsers)
	client := NewAPIClient(0)

	users, err := client.FetchUsers(context.Background(), srv.URL+"/users")

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, 1, users[0].ID)
	assert.Equal(t, "Chicago", users[0].Address.City)
	assert.Equal(t, "Acme", users[0].Company.Name)
	require.NotNil(t, users[0].Address.Geo)
	assert.Equal(t, "1.5", users[0].Address.Geo.Lat)
	assert.Equal(t, "Globex", users[1].Company.Name)
}

// Absent and null nested objects both decode to zero values.
func TestFetchUsers_NullNestedObjects(t *testing.T) {
	srv := newServer(t, http.StatusOK, `[
		{"id": 1, "name": "A", "address": null, "company": null},
		{"id": 2, "name": "B"}
	]`)

	users, err := NewAPIClient(0).FetchUsers(context.Background(), srv.URL)

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Address.City)
		assert.Empty(t, u.Company.Name)
		assert.False(t, u.CityHasPrefix("C"))
	}
}

func TestFetchUsers_StatusErrors(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusBadRequest} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := newServer(t, status, `{"error":"nope"}`)

			users, err := NewAPIClient(0).FetchUsers(context.Background(), srv.URL+"/u5ers")

			assert.Nil(t, users)
			var rf *domain.RequestFailedError
			require.True(t, errors.As(err, &rf))
			assert.Equal(t, status, rf.StatusCode)
			assert.True(t, errors.Is(err, domain.ErrRequestFailed))
		})
	}
}

func TestFetchUsers_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"truncated", `[{"id": 1, "name": "Ann"`},
		{"object instead of array", `{"id": 1, "name": "Ann"}`},
		{"missing name", `[{"id": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, http.StatusOK, tt.body)

			_, err := NewAPIClient(0).FetchUsers(context.Background(), srv.URL)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrParse), err.Error())
		})
	}
}

func TestFetchUsers_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewAPIClient(time.Second).FetchUsers(context.Background(), url)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransport), err.Error())
}

func TestFetchUsers_ContextCancelled(t *testing.T) {
	srv := newServer(t, http.StatusOK, sampleUsers)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAPIClient(0).FetchUsers(ctx, srv.URL)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrTransport))
}

// Every path must close the response body so no transport goroutines linger.
func TestFetch_NoGoroutineLeak(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users" {
			_, _ = w.Write([]byte(sampleUsers))
			return
		}
		http.NotFound(w, r)
	}))

	leaktest.CheckNoGoroutineLeak(t, func() {
		client := NewAPIClient(time.Second)
		_, err := client.FetchUsers(context.Background(), srv.URL+"/users")
		require.NoError(t, err)
		_, err = client.FetchJSON(context.Background(), srv.URL+"/u5ers")
		require.Error(t, err)

		client.Client.CloseIdleConnections()
		srv.Close()
	})
}

func TestFetchJSON(t *testing.T) {
	srv := newServer(t, http.StatusOK, `{"ok": true}`)

	data, err := NewAPIClient(0).FetchJSON(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"ok": true}, data)
}

func TestFetch_RecordsMetrics(t *testing.T) {
	srv := newServer(t, http.StatusNotFound, ``)
	endpoint := endpointLabel(srv.URL + "/metrics-probe")
	before := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(endpoint, "404"))

	_, _ = NewAPIClient(0).FetchJSON(context.Background(), srv.URL+"/metrics-probe")

	after := testutil.ToFloat64(metrics.APIRequestsTotal.WithLabelValues(endpoint, "404"))
	assert.Equal(t, before+1, after)
}

func TestEndpointLabel(t *testing.T) {
	assert.Equal(t, "jsonplaceholder.typicode.com/users", endpointLabel("https://jsonplaceholder.typicode.com/users?x=1"))
	assert.Equal(t, "invalid", endpointLabel("::nope"))
}
