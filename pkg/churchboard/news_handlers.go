package churchboard

import (
	"net/http"
	"time"

	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store"
)

// Church news handlers: announcements with the full CRUD set plus a like
// counter.

type churchNewsCreateRequest struct {
	Title                string   `json:"title"`
	Content              string   `json:"content"`
	Category             string   `json:"category"`
	Organizer            string   `json:"organizer"`
	Priority             string   `json:"priority"`
	EventDate            string   `json:"event_date"`
	EventTime            string   `json:"event_time"`
	Location             string   `json:"location"`
	TargetAudience       string   `json:"target_audience"`
	ParticipationFee     string   `json:"participation_fee"`
	RegistrationRequired bool     `json:"registration_required"`
	RegistrationDeadline string   `json:"registration_deadline"`
	ContactPerson        string   `json:"contact_person"`
	ContactPhone         string   `json:"contact_phone"`
	ContactEmail         string   `json:"contact_email"`
	Status               string   `json:"status"`
	Tags                 []string `json:"tags"`
	Images               []string `json:"images"`
}

type churchNewsUpdateRequest struct {
	Title                *string   `json:"title"`
	Content              *string   `json:"content"`
	Category             *string   `json:"category"`
	Organizer            *string   `json:"organizer"`
	Priority             *string   `json:"priority"`
	EventDate            *string   `json:"event_date"`
	EventTime            *string   `json:"event_time"`
	Location             *string   `json:"location"`
	TargetAudience       *string   `json:"target_audience"`
	ParticipationFee     *string   `json:"participation_fee"`
	RegistrationRequired *bool     `json:"registration_required"`
	RegistrationDeadline *string   `json:"registration_deadline"`
	ContactPerson        *string   `json:"contact_person"`
	ContactPhone         *string   `json:"contact_phone"`
	ContactEmail         *string   `json:"contact_email"`
	Status               *string   `json:"status"`
	Tags                 *[]string `json:"tags"`
	Images               *[]string `json:"images"`
}

type churchNewsItem struct {
	ID                   int64    `json:"id"`
	Title                string   `json:"title"`
	Content              string   `json:"content"`
	Category             string   `json:"category"`
	Priority             string   `json:"priority"`
	EventDate            *string  `json:"event_date"`
	EventTime            *string  `json:"event_time"`
	Location             string   `json:"location"`
	Organizer            string   `json:"organizer"`
	TargetAudience       string   `json:"target_audience"`
	ParticipationFee     string   `json:"participation_fee"`
	RegistrationRequired bool     `json:"registration_required"`
	RegistrationDeadline *string  `json:"registration_deadline"`
	ContactPerson        string   `json:"contact_person"`
	ContactPhone         string   `json:"contact_phone"`
	ContactEmail         string   `json:"contact_email"`
	Status               string   `json:"status"`
	ViewCount            int      `json:"view_count"`
	Likes                int      `json:"likes"`
	CommentsCount        int      `json:"comments_count"`
	Tags                 []string `json:"tags"`
	Images               []string `json:"images"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at"`
	AuthorID             int64    `json:"author_id"`
	AuthorName           string   `json:"author_name"`
	ChurchID             *int64   `json:"church_id"`
}

func newChurchNewsItem(news models.ChurchNews, authorName string) churchNewsItem {
	var eventTime *string
	if news.EventTime != "" {
		eventTime = &news.EventTime
	}
	return churchNewsItem{
		ID:                   news.ID,
		Title:                news.Title,
		Content:              news.Content,
		Category:             news.Category,
		Priority:             news.Priority,
		EventDate:            isoDatePtr(news.EventDate),
		EventTime:            eventTime,
		Location:             news.Location,
		Organizer:            news.Organizer,
		TargetAudience:       news.TargetAudience,
		ParticipationFee:     news.ParticipationFee,
		RegistrationRequired: news.RegistrationRequired,
		RegistrationDeadline: isoDatePtr(news.RegistrationDeadline),
		ContactPerson:        news.ContactPerson,
		ContactPhone:         news.ContactPhone,
		ContactEmail:         news.ContactEmail,
		Status:               news.Status,
		ViewCount:            news.ViewCount,
		Likes:                news.Likes,
		CommentsCount:        news.CommentsCount,
		Tags:                 append([]string{}, news.Tags...),
		Images:               append([]string{}, news.Images...),
		CreatedAt:            isoTime(news.CreatedAt),
		UpdatedAt:            isoTime(news.UpdatedAt),
		AuthorID:             news.AuthorID,
		AuthorName:           authorName,
		ChurchID:             news.ChurchID,
	}
}

func (a *App) handleListChurchNews(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	q := r.URL.Query()
	filter := store.ChurchNewsFilter{
		Category:      q.Get("category"),
		Priority:      q.Get("priority"),
		Status:        q.Get("status"),
		Search:        q.Get("search"),
		EventDateFrom: parseDate(q.Get("event_date_from")),
		EventDateTo:   parseDate(q.Get("event_date_to")),
	}

	newsList, total, err := a.store.ListChurchNews(r.Context(), filter, store.Page{Number: page, Size: limit})
	if err != nil {
		a.logger.Error().Err(err).Msg("church news list failed")
		respondEmptyList(w, page, limit)
		return
	}

	ids := make([]int64, len(newsList))
	for i, news := range newsList {
		ids[i] = news.AuthorID
	}
	names, err := a.authorNames(r.Context(), ids)
	if err != nil {
		a.logger.Error().Err(err).Msg("church news author lookup failed")
		respondEmptyList(w, page, limit)
		return
	}

	items := make([]churchNewsItem, 0, len(newsList))
	for _, news := range newsList {
		items = append(items, newChurchNewsItem(news, displayName(names, news.AuthorID)))
	}
	respondList(w, items, NewPagination(page, limit, total))
}

func (a *App) handleCreateChurchNews(w http.ResponseWriter, r *http.Request) {
	var req churchNewsCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Title == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}
	if req.Category == "" {
		respondError(w, http.StatusBadRequest, "category is required")
		return
	}
	if req.Organizer == "" {
		respondError(w, http.StatusBadRequest, "organizer is required")
		return
	}

	user := currentUser(r)
	news := models.ChurchNews{
		Title:                req.Title,
		Content:              req.Content,
		Category:             req.Category,
		Priority:             orDefault(req.Priority, "normal"),
		EventDate:            parseDate(req.EventDate),
		EventTime:            parseClock(req.EventTime),
		Location:             req.Location,
		Organizer:            req.Organizer,
		TargetAudience:       req.TargetAudience,
		ParticipationFee:     req.ParticipationFee,
		RegistrationRequired: req.RegistrationRequired,
		RegistrationDeadline: parseDate(req.RegistrationDeadline),
		ContactPerson:        req.ContactPerson,
		ContactPhone:         req.ContactPhone,
		ContactEmail:         req.ContactEmail,
		Status:               orDefault(req.Status, "active"),
		Tags:                 req.Tags,
		Images:               req.Images,
		AuthorID:             user.ID,
		ChurchID:             user.ChurchID,
	}

	if err := a.store.CreateChurchNews(r.Context(), &news); err != nil {
		a.logger.Error().Err(err).Msg("church news create failed")
		respondFailure(w, "교회 소식 등록 중 오류가 발생했습니다: "+err.Error())
		return
	}

	respondCreated(w, "교회 행사 소식이 등록되었습니다.", map[string]any{
		"id":         news.ID,
		"title":      news.Title,
		"category":   news.Category,
		"status":     news.Status,
		"created_at": isoTime(news.CreatedAt),
	})
}

func (a *App) handleGetChurchNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	news, err := a.store.GetChurchNews(r.Context(), id)
	if err != nil {
		respondFailure(w, "교회 소식 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if news == nil {
		respondFailure(w, "교회 소식을 찾을 수 없습니다.")
		return
	}

	if err := a.store.IncrementChurchNewsViews(r.Context(), id); err != nil {
		respondFailure(w, "교회 소식 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	news.ViewCount++

	names, err := a.authorNames(r.Context(), []int64{news.AuthorID})
	if err != nil {
		respondFailure(w, "교회 소식 상세 조회 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondData(w, newChurchNewsItem(*news, displayName(names, news.AuthorID)))
}

func (a *App) handleUpdateChurchNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}
	var req churchNewsUpdateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	news, err := a.store.GetChurchNews(r.Context(), id)
	if err != nil {
		respondFailure(w, "교회 소식 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if news == nil {
		respondFailure(w, "교회 소식을 찾을 수 없습니다.")
		return
	}
	if news.AuthorID != currentUser(r).ID {
		respondFailure(w, "본인이 작성한 소식만 수정할 수 있습니다.")
		return
	}

	now := time.Now().UTC()
	fields := map[string]any{"updated_at": now}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Content != nil {
		fields["content"] = *req.Content
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Organizer != nil {
		fields["organizer"] = *req.Organizer
	}
	if req.Priority != nil {
		fields["priority"] = *req.Priority
	}
	if req.EventDate != nil {
		fields["event_date"] = parseDate(*req.EventDate)
	}
	if req.EventTime != nil {
		fields["event_time"] = parseClock(*req.EventTime)
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.TargetAudience != nil {
		fields["target_audience"] = *req.TargetAudience
	}
	if req.ParticipationFee != nil {
		fields["participation_fee"] = *req.ParticipationFee
	}
	if req.RegistrationRequired != nil {
		fields["registration_required"] = *req.RegistrationRequired
	}
	if req.RegistrationDeadline != nil {
		fields["registration_deadline"] = parseDate(*req.RegistrationDeadline)
	}
	if req.ContactPerson != nil {
		fields["contact_person"] = *req.ContactPerson
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
	if req.Tags != nil {
		fields["tags"] = models.StringList(*req.Tags)
	}
	if req.Images != nil {
		fields["images"] = models.StringList(*req.Images)
	}

	if err := a.store.UpdateChurchNewsFields(r.Context(), id, fields); err != nil {
		respondFailure(w, "교회 소식 수정 중 오류가 발생했습니다: "+err.Error())
		return
	}

	title := news.Title
	if req.Title != nil {
		title = *req.Title
	}
	respondCreated(w, "교회 소식이 수정되었습니다.", map[string]any{
		"id":         news.ID,
		"title":      title,
		"updated_at": isoTime(now),
	})
}

func (a *App) handleDeleteChurchNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	news, err := a.store.GetChurchNews(r.Context(), id)
	if err != nil {
		respondFailure(w, "교회 소식 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if news == nil {
		respondFailure(w, "교회 소식을 찾을 수 없습니다.")
		return
	}
	if news.AuthorID != currentUser(r).ID {
		respondFailure(w, "본인이 작성한 소식만 삭제할 수 있습니다.")
		return
	}

	if err := a.store.DeleteChurchNews(r.Context(), id); err != nil {
		respondFailure(w, "교회 소식 삭제 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondMessage(w, "교회 소식이 삭제되었습니다.")
}

func (a *App) handleLikeChurchNews(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}

	news, err := a.store.GetChurchNews(r.Context(), id)
	if err != nil {
		respondFailure(w, "좋아요 처리 중 오류가 발생했습니다: "+err.Error())
		return
	}
	if news == nil {
		respondFailure(w, "교회 소식을 찾을 수 없습니다.")
		return
	}

	likes, err := a.store.LikeChurchNews(r.Context(), id)
	if err != nil {
		respondFailure(w, "좋아요 처리 중 오류가 발생했습니다: "+err.Error())
		return
	}
	respondData(w, map[string]any{
		"liked":       true,
		"likes_count": likes,
	})
}
