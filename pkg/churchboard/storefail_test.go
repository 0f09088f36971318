package churchboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/churchhaven/churchboard/pkg/churchboard"
	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store"
)

// failingStore wraps a real store and forces errors on selected operations,
// so the handlers' failure envelopes can be checked over the full router.
type failingStore struct {
	store.Store
}

func (s *failingStore) ListChurchEvents(ctx context.Context, f store.ChurchEventFilter, p store.Page) ([]models.ChurchEvent, int64, error) {
	return nil, 0, errors.New("connection reset")
}

func (s *failingStore) CreateJobPost(ctx context.Context, post *models.JobPost) error {
	return errors.New("disk full")
}

func TestListFailureReturnsEmptySuccessPage(t *testing.T) {
	inner := newTestApp(t)
	user := seedUser(t, inner, "한성실", nil, "")

	app := churchboard.NewWithStore(&failingStore{inner.Store()}, &churchboard.Config{ServerPort: "0"})
	srv := httptest.NewServer(app.Router())
	t.Cleanup(srv.Close)

	resp, env := doJSON(t, srv, http.MethodGet, "/api/church-events?page=2&limit=5", user.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, env["success"])

	items, ok := env["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, items)

	pagination, ok := env["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, pagination["current_page"])
	assert.EqualValues(t, 5, pagination["per_page"])
	assert.EqualValues(t, 0, pagination["total_pages"])
	assert.EqualValues(t, 0, pagination["total_count"])
	assert.Equal(t, false, pagination["has_next"])
	assert.Equal(t, false, pagination["has_prev"])
}

func TestCreateFailureEnvelopeMessage(t *testing.T) {
	inner := newTestApp(t)
	user := seedUser(t, inner, "한성실", nil, "")

	app := churchboard.NewWithStore(&failingStore{inner.Store()}, &churchboard.Config{ServerPort: "0"})
	srv := httptest.NewServer(app.Router())
	t.Cleanup(srv.Close)

	resp, env := doJSON(t, srv, http.MethodPost, "/api/job-posting", user.ID, map[string]any{
		"title": "공고", "company": "회사", "position": "사무원",
		"employment_type": "정규직", "location": "서울",
		"description": "설명", "contact_info": "010-0000-0000",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, env["success"])
	assert.Equal(t, "구인 공고 등록 중 오류가 발생했습니다: disk full", env["message"])
}
