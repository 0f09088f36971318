package churchboard

import (
	"net/http"

	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store"
)

// Music team recruitment handlers. Contact details are stored combined in a
// single column and split back apart for responses; instruments are a comma
// joined list. Updates replace the whole record rather than patching fields.

type musicTeamRecruitmentRequest struct {
	Title        string   `json:"title"`
	ChurchName   string   `json:"church_name"`
	Type         string   `json:"recruitment_type"`
	Instruments  []string `json:"instruments"`
	Schedule     string   `json:"schedule"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Compensation string   `json:"compensation"`
	ContactPhone string   `json:"contact_phone"`
	ContactEmail string   `json:"contact_email"`
	Status       string   `json:"status"`
	Applications int      `json:"applications"`
}

type musicTeamRecruitmentItem struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	ChurchName   string   `json:"church_name"`
	Type         string   `json:"recruitment_type"`
	Instruments  []string `json:"instruments"`
	Schedule     string   `json:"schedule"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements string   `json:"requirements"`
	Compensation string   `json:"compensation"`
	ContactPhone string   `json:"contact_phone"`
	ContactEmail string   `json:"contact_email"`
	ContactInfo  string   `json:"contact_info"`
	Status       string   `json:"status"`
	Applications int      `json:"applications"`
	Views        int      `json:"views"`
	Likes        int      `json:"likes"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
	AuthorID     int64    `json:"author_id"`
	UserName     string   `json:"user_name"`
	ChurchID     int64    `json:"church_id"`
}

func newMusicTeamRecruitmentItem(rec models.MusicTeamRecruitment, userName string) musicTeamRecruitmentItem {
	phone, email := models.SplitContactInfo(rec.ContactInfo)
	return musicTeamRecruitmentItem{
		ID:           rec.ID,
		Title:        rec.Title,
		ChurchName:   rec.ChurchName,
		Type:         rec.Type,
		Instruments:  models.SplitList(rec.Instruments),
		Schedule:     rec.Schedule,
		Location:     rec.Location,
		Description:  rec.Description,
		Requirements: rec.Requirements,
		Compensation: rec.Compensation,
		ContactPhone: phone,
		ContactEmail: email,
		ContactInfo:  rec.ContactInfo,
		Status:       rec.Status,
		Applications: rec.Applications,
		Views:        rec.Views,
		Likes:        rec.Likes,
		CreatedAt:    isoTime(rec.CreatedAt),
		UpdatedAt:    isoTime(rec.UpdatedAt),
		AuthorID:     rec.AuthorID,
		UserName:     userName,
		ChurchID:     rec.ChurchID,
	}
}

func (a *App) handleListMusicTeamRecruitments(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	q := r.URL.Query()
	filter := store.MusicTeamRecruitmentFilter{
		Status:     q.Get("status"),
		Type:       q.Get("recruitment_type"),
		Instrument: q.Get("instruments"),
		Search:     q.Get("search"),
	}

	recs, total, err := a.store.ListMusicTeamRecruitments(r.Context(), filter, store.Page{Number: page, Size: limit})
	if err != nil {
		a.logger.Error().Err(err).Msg("music team recruitment list failed")
		respondEmptyList(w, page, limit)
		return
	}

	ids := make([]int64, len(recs))
	for i, rec := range recs {
		ids[i] = rec.AuthorID
	}
	names, err := a.authorNames(r.Context(), ids)
	if err != nil {
		a.logger.Error().Err(err).Msg("music team recruitment author lookup failed")
		respondEmptyList(w, page, limit)
		return
	}

	items := make([]musicTeamRecruitmentItem, 0, len(recs))
	for _, rec := range recs {
		items = append(items, newMusicTeamRecruitmentItem(rec, displayName(names, rec.AuthorID)))
	}
	respondList(w, items, NewPagination(page, limit, total))
}

func (a *App) handleCreateMusicTeamRecruitment(w http.ResponseWriter, r *http.Request) {
	var req musicTeamRecruitmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.ChurchName == "" {
		respondError(w, http.StatusBadRequest, "church_name is required")
		return
	}
	if req.Type == "" {
		respondError(w, http.StatusBadRequest, "recruitment_type is required")
		return
	}
	if len(req.Instruments) == 0 {
		respondError(w, http.StatusBadRequest, "instruments is required")
		return
	}
	if req.ContactPhone == "" {
		respondError(w, http.StatusBadRequest, "contact_phone is required")
		return
	}

	user := currentUser(r)
	rec := models.MusicTeamRecruitment{
		Title:        req.Title,
		ChurchName:   req.ChurchName,
		Type:         req.Type,
		Instruments:  models.JoinList(req.Instruments),
		Schedule:     req.Schedule,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Compensation: req.Compensation,
		ContactInfo:  models.CombineContactInfo(req.ContactPhone, req.ContactEmail),
		Status:       orDefault(req.Status, "open"),
		Applications: req.Applications,
		AuthorID:     user.ID,
		ChurchID:     user.ChurchOrCommunity(),
	}

	if err := a.store.CreateMusicTeamRecruitment(r.Context(), &rec); err != nil {
		a.logger.Error().Err(err).Msg("music team recruitment create failed")
		respondFailure(w, "행사팀 모집 등록 중 오류가 발생했습니다: "+err.Error())
		return
	}

	respondCreated(w, "행사팀 모집이 등록되었습니다.", map[string]any{
		"id":               rec.ID,
		"title":            rec.Title,
		"church_name":      rec.ChurchName,
		"recruitment_type": rec.Type,
		"instruments":      models.SplitList(rec.Instruments),
		"schedule":         rec.Schedule,
		"location":         rec.Location,
		"description":      rec.Description,
		"requirements":     rec.Requirements,
		"compensation":     rec.Compensation,
		"contact_phone":    req.ContactPhone,
		"contact_email":    req.ContactEmail,
		"status":           rec.Status,
		"applications":     rec.Applications,
		"views":            rec.Views,
		"likes":            rec.Likes,
		"author_id":        rec.AuthorID,
		"user_name":        user.DisplayName(),
		"church_id":        rec.ChurchID,
		"created_at":       isoTime(rec.CreatedAt),
	})
}

func (a *App) handleGetMusicTeamRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	rec, err := a.store.GetMusicTeamRecruitment(r.Context(), id)
	if err != nil {
		respondFailure(w, "행사팀 모집 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if rec == nil {
		respondFailure(w, "행사팀 모집을 찾을 수 없습니다.")
		return
	}

	if err := a.store.IncrementMusicTeamRecruitmentViews(r.Context(), id); err != nil {
		respondFailure(w, "행사팀 모집 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	rec.Views++

	names, err := a.authorNames(r.Context(), []int64{rec.AuthorID})
	if err != nil {
		respondFailure(w, "행사팀 모집 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondData(w, newMusicTeamRecruitmentItem(*rec, displayName(names, rec.AuthorID)))
}

func (a *App) handleUpdateMusicTeamRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}
	var req musicTeamRecruitmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := a.store.GetMusicTeamRecruitment(r.Context(), id)
	if err != nil {
		respondFailure(w, "행사팀 모집 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if rec == nil {
		respondFailure(w, "행사팀 모집을 찾을 수 없습니다.")
		return
	}
	if rec.AuthorID != currentUser(r).ID {
		respondFailure(w, "수정 권한이 없습니다.")
		return
	}

	rec.Title = req.Title
	rec.ChurchName = req.ChurchName
	rec.Type = req.Type
	rec.Instruments = models.JoinList(req.Instruments)
	rec.Schedule = req.Schedule
	rec.Location = req.Location
	rec.Description = req.Description
	rec.Requirements = req.Requirements
	rec.Compensation = req.Compensation
	rec.ContactInfo = models.CombineContactInfo(req.ContactPhone, req.ContactEmail)
	rec.Status = orDefault(req.Status, "open")

	if err := a.store.UpdateMusicTeamRecruitment(r.Context(), rec); err != nil {
		respondFailure(w, "행사팀 모집 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondMessage(w, "행사팀 모집이 수정되었습니다.")
}

func (a *App) handleDeleteMusicTeamRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	rec, err := a.store.GetMusicTeamRecruitment(r.Context(), id)
	if err != nil {
		respondFailure(w, "행사팀 모집 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if rec == nil {
		respondFailure(w, "행사팀 모집을 찾을 수 없습니다.")
		return
	}
	if rec.AuthorID != currentUser(r).ID {
		respondFailure(w, "삭제 권한이 없습니다.")
		return
	}

	if err := a.store.DeleteMusicTeamRecruitment(r.Context(), id); err != nil {
		respondFailure(w, "행사팀 모집 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondMessage(w, "행사팀 모집이 삭제되었습니다.")
}

func (a *App) handleApplyMusicTeamRecruitment(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	rec, err := a.store.GetMusicTeamRecruitment(r.Context(), id)
	if err != nil {
		respondFailure(w, "지원 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if rec == nil {
		respondFailure(w, "행사팀 모집을 찾을 수 없습니다.")
		return
	}
	if rec.Status != "open" {
		respondFailure(w, "현재 모집이 마감되었습니다.")
		return
	}

	if err := a.store.IncrementMusicTeamRecruitmentApplications(r.Context(), id); err != nil {
		respondFailure(w, "지원 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondMessage(w, "지원이 완료되었습니다.")
}
