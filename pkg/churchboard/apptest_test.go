package churchboard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"

	"github.com/churchhaven/churchboard/pkg/churchboard"
	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store/postgres"
)

// The handler tests run the full router over a sqlite-backed store, so the
// envelope contract, identity middleware, and SQL all get exercised together.

func newTestApp(t *testing.T) *churchboard.App {
	t.Helper()

	st, err := postgres.New(sqlite.Open(filepath.Join(t.TempDir(), "churchboard.db")))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))

	app := churchboard.NewWithStore(st, &churchboard.Config{ServerPort: "0"})
	t.Cleanup(func() { app.Close() })
	return app
}

func newTestServer(t *testing.T) (*httptest.Server, *churchboard.App) {
	t.Helper()

	app := newTestApp(t)
	srv := httptest.NewServer(app.Router())
	t.Cleanup(srv.Close)
	return srv, app
}

func seedUser(t *testing.T, app *churchboard.App, name string, churchID *int64, churchName string) *models.User {
	t.Helper()

	user := &models.User{FullName: name, ChurchID: churchID, ChurchName: churchName}
	require.NoError(t, app.Store().CreateUser(context.Background(), user))
	return user
}

// doJSON performs a request as the given user (0 for anonymous) and decodes
// the JSON body. The raw response is returned for status assertions.
func doJSON(t *testing.T, srv *httptest.Server, method, path string, userID int64, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req.Header.Set("X-User-ID", strconv.FormatInt(userID, 10))
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func dataOf(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok, "envelope has no data object: %v", envelope)
	return data
}

func itemsOf(t *testing.T, envelope map[string]any) []any {
	t.Helper()

	items, ok := envelope["data"].([]any)
	require.True(t, ok, "envelope has no data array: %v", envelope)
	return items
}

func paginationOf(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()

	p, ok := envelope["pagination"].(map[string]any)
	require.True(t, ok, "envelope has no pagination: %v", envelope)
	return p
}

func ptrInt64(v int64) *int64 {
	return &v
}
