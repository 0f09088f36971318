package churchboard_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMusicTeamRecruitmentCreate(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "송찬양", ptrInt64(8), "빛된교회")

	_, env := doJSON(t, srv, http.MethodPost, "/api/music-team-recruitments", author.ID, map[string]any{
		"title":            "부활절 칸타타 연주자 모집",
		"church_name":      "빛된교회",
		"recruitment_type": "단기",
		"instruments":      []string{"피아노", "드럼"},
		"schedule":         "주 1회 연습",
		"contact_phone":    "010-5555-6666",
		"contact_email":    "praise@example.com",
	})
	require.Equal(t, true, env["success"])
	assert.Equal(t, "행사팀 모집이 등록되었습니다.", env["message"])

	data := dataOf(t, env)
	assert.Equal(t, "부활절 칸타타 연주자 모집", data["title"])
	assert.Equal(t, "단기", data["recruitment_type"])
	assert.Equal(t, []any{"피아노", "드럼"}, data["instruments"])
	assert.Equal(t, "010-5555-6666", data["contact_phone"])
	assert.Equal(t, "praise@example.com", data["contact_email"])
	assert.Equal(t, "open", data["status"])
	assert.EqualValues(t, 0, data["applications"])
	assert.Equal(t, "송찬양", data["user_name"])
	assert.EqualValues(t, 8, data["church_id"])
	assert.NotContains(t, data, "updated_at")
}

func TestMusicTeamRecruitmentValidation(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "송찬양", nil, "")

	resp, env := doJSON(t, srv, http.MethodPost, "/api/music-team-recruitments", author.ID, map[string]any{
		"title":            "모집",
		"church_name":      "교회",
		"recruitment_type": "단기",
		"contact_phone":    "010-0000-0000",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "instruments is required", env["message"])
}

func TestMusicTeamRecruitmentDetailAndViews(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "송찬양", nil, "")

	_, created := doJSON(t, srv, http.MethodPost, "/api/music-team-recruitments", author.ID, map[string]any{
		"title": "성가대 반주자", "church_name": "교회", "recruitment_type": "정기",
		"instruments": []string{"오르간"}, "contact_phone": "010-0000-0000",
	})
	id := int64(dataOf(t, created)["id"].(float64))
	path := fmt.Sprintf("/api/music-team-recruitments/%d", id)

	_, detail := doJSON(t, srv, http.MethodGet, path, author.ID, nil)
	data := dataOf(t, detail)
	assert.EqualValues(t, 1, data["views"])
	assert.Equal(t, "전화: 010-0000-0000", data["contact_info"])
	assert.Equal(t, "010-0000-0000", data["contact_phone"])
	assert.Equal(t, "", data["contact_email"])

	_, detail = doJSON(t, srv, http.MethodGet, path, author.ID, nil)
	assert.EqualValues(t, 2, dataOf(t, detail)["views"])

	_, missing := doJSON(t, srv, http.MethodGet, "/api/music-team-recruitments/9999", author.ID, nil)
	assert.Equal(t, false, missing["success"])
	assert.Equal(t, "행사팀 모집을 찾을 수 없습니다.", missing["message"])
}

func TestMusicTeamRecruitmentTypeFilter(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "송찬양", nil, "")

	for _, tc := range []struct{ title, recruitmentType, instrument string }{
		{"정기 모집", "정기", "피아노"},
		{"단기 모집", "단기", "드럼"},
	} {
		_, env := doJSON(t, srv, http.MethodPost, "/api/music-team-recruitments", author.ID, map[string]any{
			"title": tc.title, "church_name": "교회", "recruitment_type": tc.recruitmentType,
			"instruments": []string{tc.instrument}, "contact_phone": "010-0000-0000",
		})
		require.Equal(t, true, env["success"])
	}

	_, list := doJSON(t, srv, http.MethodGet, "/api/music-team-recruitments?recruitment_type=정기", author.ID, nil)
	assert.Len(t, itemsOf(t, list), 1)

	_, list = doJSON(t, srv, http.MethodGet, "/api/music-team-recruitments?instruments=드럼", author.ID, nil)
	require.Len(t, itemsOf(t, list), 1)
	assert.Equal(t, "단기 모집", itemsOf(t, list)[0].(map[string]any)["title"])

	// Status carries the "all" sentinel; recruitment_type does not.
	_, list = doJSON(t, srv, http.MethodGet, "/api/music-team-recruitments?status=all", author.ID, nil)
	assert.Len(t, itemsOf(t, list), 2)
}

func TestMusicTeamRecruitmentUpdateAndDelete(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "송찬양", nil, "")
	other := seedUser(t, app, "김다른", nil, "")

	_, created := doJSON(t, srv, http.MethodPost, "/api/music-team-recruitments", author.ID, map[string]any{
		"title": "수정 전 모집", "church_name": "교회", "recruitment_type": "정기",
		"instruments": []string{"기타"}, "contact_phone": "010-0000-0000",
	})
	id := int64(dataOf(t, created)["id"].(float64))
	path := fmt.Sprintf("/api/music-team-recruitments/%d", id)

	update := map[string]any{
		"title": "수정 후 모집", "church_name": "교회", "recruitment_type": "정기",
		"instruments": []string{"기타", "베이스"}, "contact_phone": "010-9999-8888",
	}
	_, denied := doJSON(t, srv, http.MethodPut, path, other.ID, update)
	assert.Equal(t, false, denied["success"])
	assert.Equal(t, "수정 권한이 없습니다.", denied["message"])

	_, updated := doJSON(t, srv, http.MethodPut, path, author.ID, update)
	require.Equal(t, true, updated["success"])
	assert.Equal(t, "행사팀 모집이 수정되었습니다.", updated["message"])

	_, detail := doJSON(t, srv, http.MethodGet, path, author.ID, nil)
	data := dataOf(t, detail)
	assert.Equal(t, "수정 후 모집", data["title"])
	assert.Equal(t, []any{"기타", "베이스"}, data["instruments"])
	assert.Equal(t, "010-9999-8888", data["contact_phone"])

	_, denied = doJSON(t, srv, http.MethodDelete, path, other.ID, nil)
	assert.Equal(t, "삭제 권한이 없습니다.", denied["message"])

	_, deleted := doJSON(t, srv, http.MethodDelete, path, author.ID, nil)
	assert.Equal(t, "행사팀 모집이 삭제되었습니다.", deleted["message"])
}

func TestMusicTeamRecruitmentApply(t *testing.T) {
	srv, app := newTestServer(t)
	author := seedUser(t, app, "송찬양", nil, "")
	applicant := seedUser(t, app, "지원자", nil, "")

	_, created := doJSON(t, srv, http.MethodPost, "/api/music-team-recruitments", author.ID, map[string]any{
		"title": "열린 모집", "church_name": "교회", "recruitment_type": "정기",
		"instruments": []string{"피아노"}, "contact_phone": "010-0000-0000",
	})
	id := int64(dataOf(t, created)["id"].(float64))

	_, applied := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/music-team-recruitments/%d/apply", id), applicant.ID, nil)
	require.Equal(t, true, applied["success"])
	assert.Equal(t, "지원이 완료되었습니다.", applied["message"])

	_, detail := doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/music-team-recruitments/%d", id), author.ID, nil)
	assert.EqualValues(t, 1, dataOf(t, detail)["applications"])

	_, created = doJSON(t, srv, http.MethodPost, "/api/music-team-recruitments", author.ID, map[string]any{
		"title": "마감된 모집", "church_name": "교회", "recruitment_type": "정기",
		"instruments": []string{"드럼"}, "contact_phone": "010-0000-0000",
		"status": "closed",
	})
	closedID := int64(dataOf(t, created)["id"].(float64))

	_, refused := doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/music-team-recruitments/%d/apply", closedID), applicant.ID, nil)
	assert.Equal(t, false, refused["success"])
	assert.Equal(t, "현재 모집이 마감되었습니다.", refused["message"])
}
