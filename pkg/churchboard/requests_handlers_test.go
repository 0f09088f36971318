package churchboard_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommunityRequestCreate(t *testing.T) {
	srv, app := newTestServer(t)
	// No church affiliation: records land in the shared community bucket.
	user := seedUser(t, app, "정나눔", nil, "")

	_, env := doJSON(t, srv, http.MethodPost, "/api/requests", user.ID, map[string]any{
		"title":        "유모차 빌려주실 분",
		"description":  "한 달만 빌리고 싶습니다",
		"category":     "육아용품",
		"location":     "서울 강서구",
		"contact_info": "010-2222-3333",
		"images":       []string{"a.jpg", "b.jpg"},
	})
	require.Equal(t, true, env["success"])
	assert.Equal(t, "요청 게시글이 등록되었습니다.", env["message"])

	data := dataOf(t, env)
	assert.Equal(t, "유모차 빌려주실 분", data["title"])
	assert.Equal(t, "normal", data["urgency_level"])
	assert.Equal(t, "open", data["status"])
	assert.Equal(t, "정나눔", data["user_name"])
	assert.EqualValues(t, 9998, data["church_id"])
	assert.Equal(t, []any{"a.jpg", "b.jpg"}, data["images"])
}

func TestCommunityRequestCreateTitleOnly(t *testing.T) {
	srv, app := newTestServer(t)
	user := seedUser(t, app, "정나눔", nil, "")

	// Only the title is mandatory; everything else may be omitted.
	resp, env := doJSON(t, srv, http.MethodPost, "/api/requests", user.ID, map[string]any{
		"title": "제목만 있는 요청",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, true, env["success"])
	data := dataOf(t, env)
	assert.Equal(t, "제목만 있는 요청", data["title"])
	assert.Equal(t, "", data["description"])
	assert.Equal(t, "", data["category"])
	assert.Equal(t, "normal", data["urgency_level"])

	resp, env = doJSON(t, srv, http.MethodPost, "/api/requests", user.ID, map[string]any{
		"description": "제목 없음",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "title is required", env["message"])
}

func TestCommunityRequestListAliases(t *testing.T) {
	srv, app := newTestServer(t)
	user := seedUser(t, app, "정나눔", nil, "")

	_, env := doJSON(t, srv, http.MethodPost, "/api/item-requests", user.ID, map[string]any{
		"title": "책장 나눔 받습니다", "description": "상태 무관", "category": "가구",
	})
	require.Equal(t, true, env["success"])

	// The three list aliases serve the same data.
	for _, path := range []string{"/api/requests", "/api/item-request", "/api/item-requests"} {
		_, list := doJSON(t, srv, http.MethodGet, path, user.ID, nil)
		require.Equal(t, true, list["success"], "path %s", path)
		items := itemsOf(t, list)
		require.Len(t, items, 1, "path %s", path)
		assert.Equal(t, "책장 나눔 받습니다", items[0].(map[string]any)["title"])
	}
}

func TestCommunityRequestFilters(t *testing.T) {
	srv, app := newTestServer(t)
	user := seedUser(t, app, "정나눔", nil, "")

	for _, tc := range []struct{ title, urgency, location string }{
		{"급하게 찾습니다", "urgent", "서울"},
		{"천천히 구해요", "normal", "부산"},
	} {
		_, env := doJSON(t, srv, http.MethodPost, "/api/requests", user.ID, map[string]any{
			"title": tc.title, "description": "설명", "category": "생활용품",
			"urgency": tc.urgency, "location": tc.location,
		})
		require.Equal(t, true, env["success"])
	}

	_, list := doJSON(t, srv, http.MethodGet, "/api/requests?urgency=urgent", user.ID, nil)
	assert.Len(t, itemsOf(t, list), 1)

	_, list = doJSON(t, srv, http.MethodGet, "/api/requests?location=부산", user.ID, nil)
	assert.Len(t, itemsOf(t, list), 1)

	_, list = doJSON(t, srv, http.MethodGet, "/api/requests?urgency=all", user.ID, nil)
	assert.Len(t, itemsOf(t, list), 2)
}

func TestCommunityRequestStubEndpoints(t *testing.T) {
	srv, app := newTestServer(t)
	user := seedUser(t, app, "정나눔", nil, "")

	_, env := doJSON(t, srv, http.MethodGet, "/api/requests/7", user.ID, nil)
	require.Equal(t, true, env["success"])
	data := dataOf(t, env)
	assert.EqualValues(t, 7, data["id"])
	assert.Equal(t, "샘플 요청 제목", data["title"])
	assert.Equal(t, "보통", data["urgency_level"])
	assert.Equal(t, "카톡", data["contact_method"])

	_, env = doJSON(t, srv, http.MethodPut, "/api/requests/7", user.ID, map[string]any{"title": "무시됨"})
	assert.Equal(t, "요청 게시글이 수정되었습니다.", env["message"])
	assert.Equal(t, "수정된 요청 제목", dataOf(t, env)["title"])

	_, env = doJSON(t, srv, http.MethodPatch, "/api/requests/7/status", user.ID, map[string]any{"status": "closed"})
	assert.Equal(t, "요청 상태가 변경되었습니다.", env["message"])
	assert.Equal(t, "fulfilled", dataOf(t, env)["status"])

	_, env = doJSON(t, srv, http.MethodDelete, "/api/requests/7", user.ID, nil)
	assert.Equal(t, "요청 게시글이 삭제되었습니다.", env["message"])
}

func TestDebugRequestsDump(t *testing.T) {
	srv, app := newTestServer(t)
	user := seedUser(t, app, "정나눔", nil, "")

	for i := 0; i < 2; i++ {
		_, env := doJSON(t, srv, http.MethodPost, "/api/requests", user.ID, map[string]any{
			"title": fmt.Sprintf("요청 %d", i), "description": "설명", "category": "기타",
		})
		require.Equal(t, true, env["success"])
	}

	// The dump endpoint is served without identity.
	resp, env := doJSON(t, srv, http.MethodGet, "/api/debug-requests", 0, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, env["success"])
	assert.EqualValues(t, 2, env["total_count"])
	rows := itemsOf(t, env)
	require.Len(t, rows, 2)
	row := rows[0].(map[string]any)
	assert.Contains(t, row, "title")
	assert.Contains(t, row, "status")
	assert.Contains(t, row, "church_id")
}
