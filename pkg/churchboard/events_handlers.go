package churchboard

import (
	"net/http"
	"time"

	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store"
)

// Church event handlers. Event posts keep the frontend's historical mixed
// field naming: camelCase for the event fields, snake_case for the shared
// record metadata.

type churchEventCreateRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EventDate       string `json:"event_date"`
	Location        string `json:"location"`
	MaxParticipants *int   `json:"max_participants"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
	Status          string `json:"status"`
}

type churchEventUpdateRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	EventDate       *string `json:"event_date"`
	Location        *string `json:"location"`
	MaxParticipants *int    `json:"max_participants"`
	ContactPhone    *string `json:"contact_phone"`
	ContactEmail    *string `json:"contact_email"`
	Status          *string `json:"status"`
}

type churchEventItem struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EventDate       *string `json:"eventDate"`
	Location        string  `json:"location"`
	MaxParticipants *int    `json:"maxParticipants"`
	ContactPhone    string  `json:"contactPhone"`
	ContactEmail    string  `json:"contactEmail"`
	ContactInfo     string  `json:"contactInfo"`
	Status          string  `json:"status"`
	Views           int     `json:"views"`
	Likes           int     `json:"likes"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	AuthorID        int64   `json:"author_id"`
	UserName        string  `json:"user_name"`
	ChurchID        int64   `json:"church_id"`
}

// churchEventDetail is the slimmer detail payload; it carries no record
// metadata, matching what the detail page consumes.
type churchEventDetail struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	EventDate       *string `json:"eventDate"`
	Location        string  `json:"location"`
	MaxParticipants *int    `json:"maxParticipants"`
	ContactPhone    string  `json:"contactPhone"`
	ContactEmail    string  `json:"contactEmail"`
	ContactInfo     string  `json:"contactInfo"`
	Status          string  `json:"status"`
	Views           int     `json:"views"`
	Likes           int     `json:"likes"`
}

func newChurchEventItem(event models.ChurchEvent, userName string) churchEventItem {
	phone, email := models.SplitContactInfo(event.ContactInfo)
	return churchEventItem{
		ID:              event.ID,
		Title:           event.Title,
		Description:     event.Description,
		EventDate:       isoTimePtr(event.EventDate),
		Location:        event.Location,
		MaxParticipants: event.MaxParticipants,
		ContactPhone:    phone,
		ContactEmail:    email,
		ContactInfo:     event.ContactInfo,
		Status:          event.Status,
		Views:           event.Views,
		Likes:           event.Likes,
		CreatedAt:       isoTime(event.CreatedAt),
		UpdatedAt:       isoTime(event.UpdatedAt),
		AuthorID:        event.AuthorID,
		UserName:        userName,
		ChurchID:        event.ChurchID,
	}
}

func (a *App) handleListChurchEvents(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	q := r.URL.Query()
	// eventType and recruitmentType are accepted but never filtered on; the
	// event table has no such columns.
	filter := store.ChurchEventFilter{
		Status: q.Get("status"),
		Search: q.Get("search"),
	}

	events, total, err := a.store.ListChurchEvents(r.Context(), filter, store.Page{Number: page, Size: limit})
	if err != nil {
		a.logger.Error().Err(err).Msg("church event list failed")
		respondEmptyList(w, page, limit)
		return
	}

	ids := make([]int64, len(events))
	for i, event := range events {
		ids[i] = event.AuthorID
	}
	names, err := a.authorNames(r.Context(), ids)
	if err != nil {
		a.logger.Error().Err(err).Msg("church event author lookup failed")
		respondEmptyList(w, page, limit)
		return
	}

	items := make([]churchEventItem, 0, len(events))
	for _, event := range events {
		items = append(items, newChurchEventItem(event, displayName(names, event.AuthorID)))
	}
	respondList(w, items, NewPagination(page, limit, total))
}

func (a *App) handleCreateChurchEvent(w http.ResponseWriter, r *http.Request) {
	var req churchEventCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.ContactPhone == "" {
		respondError(w, http.StatusBadRequest, "contact_phone is required")
		return
	}

	user := currentUser(r)
	event := models.ChurchEvent{
		Title:           req.Title,
		Description:     req.Description,
		EventDate:       parseTimestamp(req.EventDate),
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
		ContactInfo:     models.CombineContactInfo(req.ContactPhone, req.ContactEmail),
		Status:          orDefault(req.Status, "upcoming"),
		AuthorID:        user.ID,
		ChurchID:        user.ChurchOrCommunity(),
	}

	if err := a.store.CreateChurchEvent(r.Context(), &event); err != nil {
		a.logger.Error().Err(err).Msg("church event create failed")
		respondFailure(w, "행사팀 모집 등록 중 오류가 발생했습니다: "+err.Error())
		return
	}

	item := newChurchEventItem(event, user.DisplayName())
	// The create response echoes the submitted contact fields verbatim.
	item.ContactPhone = req.ContactPhone
	item.ContactEmail = req.ContactEmail
	respondCreated(w, "교회 행사가 등록되었습니다.", item)
}

func (a *App) handleGetChurchEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	event, err := a.store.GetChurchEvent(r.Context(), id)
	if err != nil {
		respondFailure(w, "교회 행사 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if event == nil {
		respondFailure(w, "행사팀 모집을 찾을 수 없습니다.")
		return
	}

	phone, email := models.SplitContactInfo(event.ContactInfo)
	respondData(w, churchEventDetail{
		ID:              event.ID,
		Title:           event.Title,
		Description:     event.Description,
		EventDate:       isoTimePtr(event.EventDate),
		Location:        event.Location,
		MaxParticipants: event.MaxParticipants,
		ContactPhone:    phone,
		ContactEmail:    email,
		ContactInfo:     event.ContactInfo,
		Status:          event.Status,
		Views:           event.Views,
		Likes:           event.Likes,
	})
}

func (a *App) handleUpdateChurchEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}
	var req churchEventUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event, err := a.store.GetChurchEvent(r.Context(), id)
	if err != nil {
		respondFailure(w, "교회 행사 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if event == nil {
		respondFailure(w, "행사팀 모집을 찾을 수 없습니다.")
		return
	}
	if event.AuthorID != currentUser(r).ID {
		respondFailure(w, "수정 권한이 없습니다.")
		return
	}

	now := time.Now().UTC()
	fields := map[string]any{"updated_at": now}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.EventDate != nil {
		fields["event_date"] = parseTimestamp(*req.EventDate)
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.MaxParticipants != nil {
		fields["max_participants"] = *req.MaxParticipants
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.ContactPhone != nil || req.ContactEmail != nil {
		phone, email := models.SplitContactInfo(event.ContactInfo)
		if req.ContactPhone != nil {
			phone = *req.ContactPhone
		}
		if req.ContactEmail != nil {
			email = *req.ContactEmail
		}
		fields["contact_info"] = models.CombineContactInfo(phone, email)
	}

	if err := a.store.UpdateChurchEventFields(r.Context(), id, fields); err != nil {
		respondFailure(w, "교회 행사 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}

	title := event.Title
	if req.Title != nil {
		title = *req.Title
	}
	respondCreated(w, "교회 행사가 수정되었습니다.", map[string]any{
		"id":         event.ID,
		"title":      title,
		"updated_at": isoTime(now),
	})
}

func (a *App) handleDeleteChurchEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	event, err := a.store.GetChurchEvent(r.Context(), id)
	if err != nil {
		respondFailure(w, "교회 행사 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if event == nil {
		respondFailure(w, "행사팀 모집을 찾을 수 없습니다.")
		return
	}
	if event.AuthorID != currentUser(r).ID {
		respondFailure(w, "삭제 권한이 없습니다.")
		return
	}

	if err := a.store.DeleteChurchEvent(r.Context(), id); err != nil {
		respondFailure(w, "교회 행사 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondMessage(w, "행사팀 모집이 삭제되었습니다.")
}
