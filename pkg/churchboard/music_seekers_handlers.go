package churchboard

import (
	"net/http"
	"time"

	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store"
)

// Music team seeker handlers: musicians advertising themselves to teams.
// Author name and church are denormalized onto the record at creation so
// listings never need a join.

type musicTeamSeekerCreateRequest struct {
	Title             string   `json:"title"`
	TeamName          string   `json:"team_name"`
	Instrument        string   `json:"instrument"`
	Experience        string   `json:"experience"`
	Portfolio         string   `json:"portfolio"`
	PreferredLocation []string `json:"preferred_location"`
	AvailableDays     []string `json:"available_days"`
	AvailableTime     string   `json:"available_time"`
	ContactPhone      string   `json:"contact_phone"`
	ContactEmail      string   `json:"contact_email"`
}

type musicTeamSeekerUpdateRequest struct {
	Title             *string   `json:"title"`
	TeamName          *string   `json:"team_name"`
	Instrument        *string   `json:"instrument"`
	Experience        *string   `json:"experience"`
	Portfolio         *string   `json:"portfolio"`
	PreferredLocation *[]string `json:"preferred_location"`
	AvailableDays     *[]string `json:"available_days"`
	AvailableTime     *string   `json:"available_time"`
	ContactPhone      *string   `json:"contact_phone"`
	ContactEmail      *string   `json:"contact_email"`
	Status            *string   `json:"status"`
}

type musicTeamSeekerItem struct {
	ID                int64    `json:"id"`
	Title             string   `json:"title"`
	TeamName          string   `json:"team_name"`
	Instrument        string   `json:"instrument"`
	Experience        string   `json:"experience"`
	Portfolio         string   `json:"portfolio"`
	PreferredLocation []string `json:"preferred_location"`
	AvailableDays     []string `json:"available_days"`
	AvailableTime     string   `json:"available_time"`
	ContactPhone      string   `json:"contact_phone"`
	ContactEmail      string   `json:"contact_email"`
	Status            string   `json:"status"`
	AuthorID          int64    `json:"author_id"`
	AuthorName        string   `json:"author_name"`
	ChurchID          *int64   `json:"church_id"`
	ChurchName        string   `json:"church_name"`
	Views             int      `json:"views"`
	Likes             int      `json:"likes"`
	Matches           int      `json:"matches"`
	Applications      int      `json:"applications"`
	CreatedAt         string   `json:"created_at"`
	UpdatedAt         string   `json:"updated_at"`
}

func newMusicTeamSeekerItem(seeker models.MusicTeamSeeker) musicTeamSeekerItem {
	return musicTeamSeekerItem{
		ID:                seeker.ID,
		Title:             seeker.Title,
		TeamName:          seeker.TeamName,
		Instrument:        seeker.Instrument,
		Experience:        seeker.Experience,
		Portfolio:         seeker.Portfolio,
		PreferredLocation: append([]string{}, seeker.PreferredLocation...),
		AvailableDays:     append([]string{}, seeker.AvailableDays...),
		AvailableTime:     seeker.AvailableTime,
		ContactPhone:      seeker.ContactPhone,
		ContactEmail:      seeker.ContactEmail,
		Status:            seeker.Status,
		AuthorID:          seeker.AuthorID,
		AuthorName:        seeker.AuthorName,
		ChurchID:          seeker.ChurchID,
		ChurchName:        seeker.ChurchName,
		Views:             seeker.Views,
		Likes:             seeker.Likes,
		Matches:           seeker.Matches,
		Applications:      seeker.Applications,
		CreatedAt:         isoTime(seeker.CreatedAt),
		UpdatedAt:         isoTime(seeker.UpdatedAt),
	}
}

func (a *App) handleListMusicTeamSeekers(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	q := r.URL.Query()
	filter := store.MusicTeamSeekerFilter{
		Status:     q.Get("status"),
		Instrument: q.Get("instrument"),
		Location:   q.Get("location"),
		Day:        q.Get("day"),
		Time:       q.Get("time"),
		Search:     q.Get("search"),
	}

	seekers, total, err := a.store.ListMusicTeamSeekers(r.Context(), filter, store.Page{Number: page, Size: limit})
	if err != nil {
		a.logger.Error().Err(err).Msg("music team seeker list failed")
		respondEmptyList(w, page, limit)
		return
	}

	items := make([]musicTeamSeekerItem, 0, len(seekers))
	for _, seeker := range seekers {
		items = append(items, newMusicTeamSeekerItem(seeker))
	}
	respondList(w, items, NewPagination(page, limit, total))
}

func (a *App) handleCreateMusicTeamSeeker(w http.ResponseWriter, r *http.Request) {
	var req musicTeamSeekerCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Instrument == "" {
		respondError(w, http.StatusBadRequest, "instrument is required")
		return
	}
	if req.ContactPhone == "" {
		respondError(w, http.StatusBadRequest, "contact_phone is required")
		return
	}

	user := currentUser(r)
	seeker := models.MusicTeamSeeker{
		Title:             req.Title,
		TeamName:          req.TeamName,
		Instrument:        req.Instrument,
		Experience:        req.Experience,
		Portfolio:         req.Portfolio,
		PreferredLocation: req.PreferredLocation,
		AvailableDays:     req.AvailableDays,
		AvailableTime:     req.AvailableTime,
		ContactPhone:      req.ContactPhone,
		ContactEmail:      req.ContactEmail,
		Status:            "available",
		AuthorID:          user.ID,
		AuthorName:        user.DisplayName(),
		ChurchID:          user.ChurchID,
		ChurchName:        user.ChurchName,
	}

	if err := a.store.CreateMusicTeamSeeker(r.Context(), &seeker); err != nil {
		a.logger.Error().Err(err).Msg("music team seeker create failed")
		respondFailure(w, "지원서 등록 중 오류가 발생했습니다: "+err.Error())
		return
	}

	respondCreated(w, "지원서가 성공적으로 등록되었습니다", map[string]any{
		"id":         seeker.ID,
		"created_at": isoTime(seeker.CreatedAt),
	})
}

func (a *App) handleGetMusicTeamSeeker(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	seeker, err := a.store.GetMusicTeamSeeker(r.Context(), id)
	if err != nil {
		respondFailure(w, "지원서 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if seeker == nil {
		respondFailure(w, "지원서를 찾을 수 없습니다.")
		return
	}

	if err := a.store.IncrementMusicTeamSeekerViews(r.Context(), id); err != nil {
		respondFailure(w, "지원서 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	seeker.Views++

	respondData(w, newMusicTeamSeekerItem(*seeker))
}

func (a *App) handleUpdateMusicTeamSeeker(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}
	var req musicTeamSeekerUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	seeker, err := a.store.GetMusicTeamSeeker(r.Context(), id)
	if err != nil {
		respondFailure(w, "지원서 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if seeker == nil {
		respondFailure(w, "지원서를 찾을 수 없습니다.")
		return
	}
	if seeker.AuthorID != currentUser(r).ID {
		respondFailure(w, "본인이 작성한 지원서만 수정할 수 있습니다.")
		return
	}

	now := time.Now().UTC()
	fields := map[string]any{"updated_at": now}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.TeamName != nil {
		fields["team_name"] = *req.TeamName
	}
	if req.Instrument != nil {
		fields["instrument"] = *req.Instrument
	}
	if req.Experience != nil {
		fields["experience"] = *req.Experience
	}
	if req.Portfolio != nil {
		fields["portfolio"] = *req.Portfolio
	}
	if req.PreferredLocation != nil {
		fields["preferred_location"] = models.StringList(*req.PreferredLocation)
	}
	if req.AvailableDays != nil {
		fields["available_days"] = models.StringList(*req.AvailableDays)
	}
	if req.AvailableTime != nil {
		fields["available_time"] = *req.AvailableTime
	}
	if req.ContactPhone != nil {
		fields["contact_phone"] = *req.ContactPhone
	}
	if req.ContactEmail != nil {
		fields["contact_email"] = *req.ContactEmail
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if err := a.store.UpdateMusicTeamSeekerFields(r.Context(), id, fields); err != nil {
		respondFailure(w, "지원서 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}

	title := seeker.Title
	if req.Title != nil {
		title = *req.Title
	}
	respondCreated(w, "지원서가 수정되었습니다.", map[string]any{
		"id":         seeker.ID,
		"title":      title,
		"updated_at": isoTime(now),
	})
}

func (a *App) handleDeleteMusicTeamSeeker(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	seeker, err := a.store.GetMusicTeamSeeker(r.Context(), id)
	if err != nil {
		respondFailure(w, "지원서 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if seeker == nil {
		respondFailure(w, "지원서를 찾을 수 없습니다.")
		return
	}
	if seeker.AuthorID != currentUser(r).ID {
		respondFailure(w, "본인이 작성한 지원서만 삭제할 수 있습니다.")
		return
	}

	if err := a.store.DeleteMusicTeamSeeker(r.Context(), id); err != nil {
		respondFailure(w, "지원서 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondMessage(w, "지원서가 삭제되었습니다.")
}
