package churchboard_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMusicTeamSeekerCreate(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "오연주", ptrInt64(15), "기쁨교회")

	_, env := doJSON(t, srv, http.MethodPost, "/api/music-team-seekers", author.ID, map[string]any{
		"title":              "주일 반주 가능합니다",
		"instrument":         "피아노",
		"experience":         "10년",
		"preferred_location": []string{"서울", "경기"},
		"available_days":     []string{"일요일"},
		"available_time":     "오전",
		"contact_phone":      "010-7777-8888",
	})
	require.Equal(t, true, env["success"])
	assert.Equal(t, "지원서가 성공적으로 등록되었습니다", env["message"])

	data := dataOf(t, env)
	assert.Contains(t, data, "id")
	assert.Contains(t, data, "created_at")

	id := int64(data["id"].(float64))
	_, detail := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/music-team-seekers/%d", id), author.ID, nil)
	item := dataOf(t, detail)
	// Status is forced regardless of the payload, and the author's name and
	// church are denormalized onto the record.
	assert.Equal(t, "available", item["status"])
	assert.Equal(t, "오연주", item["author_name"])
	assert.Equal(t, "기쁨교회", item["church_name"])
	assert.EqualValues(t, 15, item["church_id"])
	assert.Equal(t, []any{"서울", "경기"}, item["preferred_location"])
	assert.Equal(t, []any{"일요일"}, item["available_days"])
	assert.EqualValues(t, 1, item["views"])
}

func TestMusicTeamSeekerValidation(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "오연주", nil, "")

	resp, env := doJSON(t, srv, http.MethodPost, "/api/music-team-seekers", author.ID, map[string]any{
		"title": "제목만", "contact_phone": "010-0000-0000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "instrument is required", env["message"])
}

func TestMusicTeamSeekerFilters(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "오연주", nil, "")

	for _, tc := range []struct {
		title, instrument string
		locations         []string
		days              []string
	}{
		{"피아노 반주자입니다", "피아노", []string{"서울"}, []string{"일요일", "수요일"}},
		{"드러머 구직", "드럼", []string{"부산"}, []string{"토요일"}},
	} {
		_, env := doJSON(t, srv, http.MethodPost, "/api/music-team-seekers", author.ID, map[string]any{
			"title": tc.title, "instrument": tc.instrument,
			"preferred_location": tc.locations, "available_days": tc.days,
			"contact_phone": "010-0000-0000",
		})
		require.Equal(t, true, env["success"])
	}

	_, list := doJSON(t, srv, http.MethodGet, "/api/music-team-seekers?instrument=드럼", author.ID, nil)
	assert.Len(t, itemsOf(t, list), 1)

	_, list = doJSON(t, srv, http.MethodGet, "/api/music-team-seekers?location=서울", author.ID, nil)
	assert.Len(t, itemsOf(t, list), 1)

	_, list = doJSON(t, srv, http.MethodGet, "/api/music-team-seekers?day=수요일", author.ID, nil)
	assert.Len(t, itemsOf(t, list), 1)

	_, list = doJSON(t, srv, http.MethodGet, "/api/music-team-seekers?search=드러머", author.ID, nil)
	assert.Len(t, itemsOf(t, list), 1)

	p := paginationOf(t, list)
	assert.EqualValues(t, 1, p["total_count"])
}

func TestMusicTeamSeekerUpdate(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "오연주", nil, "")
	other := seedUser(t, app, "남의손", nil, "")

	_, created := doJSON(t, srv, http.MethodPost, "/api/music-team-seekers", author.ID, map[string]any{
		"title": "수정 전 지원서", "instrument": "바이올린", "contact_phone": "010-0000-0000",
	})
	id := int64(dataOf(t, created)["id"].(float64))
	path := fmt.Sprintf("/api/music-team-seekers/%d", id)

	_, denied := doJSON(t, srv, http.MethodPut, path, other.ID, map[string]any{"title": "남의 지원서"})
	assert.Equal(t, false, denied["success"])
	assert.Equal(t, "본인이 작성한 지원서만 수정할 수 있습니다.", denied["message"])

	_, updated := doJSON(t, srv, http.MethodPut, path, author.ID, map[string]any{
		"title":  "수정 후 지원서",
		"status": "matched",
	})
	require.Equal(t, true, updated["success"])
	assert.Equal(t, "지원서가 수정되었습니다.", updated["message"])
	assert.Equal(t, "수정 후 지원서", dataOf(t, updated)["title"])

	_, detail := doJSON(t, srv, http.MethodGet, path, author.ID, nil)
	item := dataOf(t, detail)
	assert.Equal(t, "수정 후 지원서", item["title"])
	assert.Equal(t, "matched", item["status"])
	assert.Equal(t, "바이올린", item["instrument"])
}

func TestMusicTeamSeekerDelete(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "오연주", nil, "")
	other := seedUser(t, app, "남의손", nil, "")

	_, created := doJSON(t, srv, http.MethodPost, "/api/music-team-seekers", author.ID, map[string]any{
		"title": "삭제될 지원서", "instrument": "첼로", "contact_phone": "010-0000-0000",
	})
	id := int64(dataOf(t, created)["id"].(float64))
	path := fmt.Sprintf("/api/music-team-seekers/%d", id)

	_, denied := doJSON(t, srv, http.MethodDelete, path, other.ID, nil)
	assert.Equal(t, "본인이 작성한 지원서만 삭제할 수 있습니다.", denied["message"])

	_, deleted := doJSON(t, srv, http.MethodDelete, path, author.ID, nil)
	require.Equal(t, true, deleted["success"])
	assert.Equal(t, "지원서가 삭제되었습니다.", deleted["message"])

	_, gone := doJSON(t, srv, http.MethodGet, path, author.ID, nil)
	assert.Equal(t, "지원서를 찾을 수 없습니다.", gone["message"])
}
