package churchboard

import (
	"net/http"

	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store"
)

// Job board handlers. The /job-posting listing and post creation are
// database backed; the /job-posts browsing surface and the whole job-seeker
// surface predate the schema work and still return canned payloads.

type jobPostCreateRequest struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Position       string `json:"position"`
	EmploymentType string `json:"employment_type"`
	Location       string `json:"location"`
	SalaryRange    string `json:"salary_range"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	ContactInfo    string `json:"contact_info"`
	Status         string `json:"status"`
}

type jobPostItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Company        string `json:"company"`
	Position       string `json:"position"`
	EmploymentType string `json:"employment_type"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	SalaryRange    string `json:"salary_range"`
	Description    string `json:"description"`
	Requirements   string `json:"requirements"`
	ContactInfo    string `json:"contact_info"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	ViewCount      int    `json:"view_count"`
	UserID         int64  `json:"user_id"`
	UserName       string `json:"user_name"`
	ChurchID       int64  `json:"church_id"`
}

func newJobPostItem(post models.JobPost, userName string) jobPostItem {
	return jobPostItem{
		ID:             post.ID,
		Title:          post.Title,
		Company:        post.CompanyName,
		Position:       post.JobType,
		EmploymentType: post.EmploymentType,
		Location:       post.Location,
		Status:         post.Status,
		SalaryRange:    post.SalaryRange,
		Description:    post.Description,
		Requirements:   post.Requirements,
		ContactInfo:    post.ContactInfo,
		CreatedAt:      isoTime(post.CreatedAt),
		UpdatedAt:      isoTime(post.UpdatedAt),
		ViewCount:      post.ViewCount,
		UserID:         post.UserID,
		UserName:       userName,
		ChurchID:       post.ChurchID,
	}
}

func (a *App) handleListJobPostings(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	q := r.URL.Query()
	filter := store.JobPostFilter{
		Status:         q.Get("status"),
		EmploymentType: q.Get("employment_type"),
		Location:       q.Get("location"),
		Search:         q.Get("search"),
	}

	posts, total, err := a.store.ListJobPosts(r.Context(), filter, store.Page{Number: page, Size: limit})
	if err != nil {
		a.logger.Error().Err(err).Msg("job posting list failed")
		respondEmptyList(w, page, limit)
		return
	}

	ids := make([]int64, len(posts))
	for i, post := range posts {
		ids[i] = post.UserID
	}
	names, err := a.authorNames(r.Context(), ids)
	if err != nil {
		a.logger.Error().Err(err).Msg("job posting author lookup failed")
		respondEmptyList(w, page, limit)
		return
	}

	items := make([]jobPostItem, 0, len(posts))
	for _, post := range posts {
		items = append(items, newJobPostItem(post, displayName(names, post.UserID)))
	}
	respondList(w, items, NewPagination(page, limit, total))
}

func (a *App) handleCreateJobPost(w http.ResponseWriter, r *http.Request) {
	var req jobPostCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	for _, field := range []struct{ name, value string }{
		{"title", req.Title},
		{"company", req.Company},
		{"position", req.Position},
		{"employment_type", req.EmploymentType},
		{"location", req.Location},
		{"description", req.Description},
		{"contact_info", req.ContactInfo},
	} {
		if field.value == "" {
			respondError(w, http.StatusBadRequest, field.name+" is required")
			return
		}
	}

	user := currentUser(r)
	post := models.JobPost{
		Title:          req.Title,
		CompanyName:    req.Company,
		JobType:        req.Position,
		EmploymentType: req.EmploymentType,
		Location:       req.Location,
		SalaryRange:    req.SalaryRange,
		Description:    req.Description,
		Requirements:   req.Requirements,
		ContactInfo:    req.ContactInfo,
		Status:         orDefault(req.Status, "open"),
		UserID:         user.ID,
		AuthorID:       user.ID,
		ChurchID:       user.ChurchOrCommunity(),
	}

	if err := a.store.CreateJobPost(r.Context(), &post); err != nil {
		a.logger.Error().Err(err).Msg("job post create failed")
		respondFailure(w, "구인 공고 등록 중 오류가 발생했습니다: "+err.Error())
		return
	}

	respondCreated(w, "구인 공고가 등록되었습니다.", map[string]any{
		"id":              post.ID,
		"title":           post.Title,
		"company":         post.CompanyName,
		"position":        post.JobType,
		"employment_type": post.EmploymentType,
		"location":        post.Location,
		"salary_range":    post.SalaryRange,
		"description":     post.Description,
		"requirements":    post.Requirements,
		"contact_info":    post.ContactInfo,
		"status":          post.Status,
		"user_id":         post.UserID,
		"user_name":       user.DisplayName(),
		"church_id":       post.ChurchID,
		"created_at":      isoTime(post.CreatedAt),
	})
}

// handleSampleJobPosts serves the legacy browsing surface with a single
// sample record on the first page.
func (a *App) handleSampleJobPosts(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	user := currentUser(r)

	items := []map[string]any{}
	if page == 1 {
		items = append(items, map[string]any{
			"id":              int64(1),
			"title":           "테스트 구인 공고",
			"company":         "샘플 회사",
			"position":        "개발자",
			"employment_type": "정규직",
			"location":        "서울",
			"status":          "open",
			"salary_range":    "면접 후 결정",
			"description":     "테스트용 샘플 구인공고입니다",
			"requirements":    "경력 무관",
			"benefits":        "4대보험",
			"contact_info":    "test@company.com",
			"created_at":      "2024-01-01T00:00:00",
			"updated_at":      "2024-01-01T00:00:00",
			"expires_at":      "2024-12-31T23:59:59",
			"view_count":      0,
			"user_id":         user.ID,
			"user_name":       user.DisplayName(),
			"church_id":       user.ChurchID,
		})
	}

	totalPages := 0
	if len(items) > 0 {
		totalPages = 1
	}
	respondList(w, items, Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  int64(len(items)),
		PerPage:     limit,
	})
}

func (a *App) handleGetJobPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}
	respondData(w, map[string]any{
		"id":              id,
		"title":           "샘플 구인 공고",
		"company":         "샘플 회사",
		"position":        "개발자",
		"employment_type": "정규직",
		"location":        "서울",
		"status":          "open",
		"description":     "샘플 구인공고 설명",
		"contact_method":  "이메일",
		"contact_info":    "test@company.com",
	})
}

func (a *App) handleUpdateJobPost(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}
	respondCreated(w, "구인 공고가 수정되었습니다.", map[string]any{
		"id":     id,
		"title":  "수정된 구인 공고",
		"status": "open",
	})
}

func (a *App) handleDeleteJobPost(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseRecordID(r, w); !ok {
		return
	}
	respondMessage(w, "구인 공고가 삭제되었습니다.")
}

type jobSeekerCreateRequest struct {
	Title               string `json:"title"`
	DesiredPosition     string `json:"desired_position"`
	EmploymentType      string `json:"employment_type"`
	DesiredLocation     string `json:"desired_location"`
	SalaryExpectation   string `json:"salary_expectation"`
	ExperienceSummary   string `json:"experience_summary"`
	EducationBackground string `json:"education_background"`
	Skills              string `json:"skills"`
	PortfolioURL        string `json:"portfolio_url"`
	ContactMethod       string `json:"contact_method"`
	ContactInfo         string `json:"contact_info"`
	AvailableStartDate  string `json:"available_start_date"`
	Status              string `json:"status"`
}

// handleListJobSeekers serves a single sample application on the first page.
func (a *App) handleListJobSeekers(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePageLimit(r)
	user := currentUser(r)

	items := []map[string]any{}
	if page == 1 {
		items = append(items, map[string]any{
			"id":               int64(1),
			"title":            "테스트 구직 신청",
			"desired_position": "개발자",
			"employment_type":  "정규직",
			"desired_location": "서울",
			"status":           "active",
			"desired_salary":   "면접 후 결정",
			"experience":       "3년",
			"skills":           "Python, JavaScript",
			"introduction":     "테스트용 샘플 구직신청입니다",
			"contact_method":   "이메일",
			"contact_info":     "seeker@test.com",
			"created_at":       "2024-01-01T00:00:00",
			"updated_at":       "2024-01-01T00:00:00",
			"views":            0,
			"author_id":        user.ID,
			"church_id":        user.ChurchID,
		})
	}

	totalPages := 0
	if len(items) > 0 {
		totalPages = 1
	}
	respondList(w, items, Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  int64(len(items)),
		PerPage:     limit,
	})
}

func (a *App) handleCreateJobSeeker(w http.ResponseWriter, r *http.Request) {
	var req jobSeekerCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	for _, field := range []struct{ name, value string }{
		{"title", req.Title},
		{"desired_position", req.DesiredPosition},
		{"employment_type", req.EmploymentType},
		{"desired_location", req.DesiredLocation},
		{"experience_summary", req.ExperienceSummary},
		{"contact_info", req.ContactInfo},
	} {
		if field.value == "" {
			respondError(w, http.StatusBadRequest, field.name+" is required")
			return
		}
	}

	user := currentUser(r)
	respondCreated(w, "구직 신청이 등록되었습니다.", map[string]any{
		"id":                   int64(1),
		"title":                req.Title,
		"desired_position":     req.DesiredPosition,
		"employment_type":      req.EmploymentType,
		"desired_location":     req.DesiredLocation,
		"salary_expectation":   req.SalaryExpectation,
		"experience_summary":   req.ExperienceSummary,
		"education_background": req.EducationBackground,
		"skills":               req.Skills,
		"portfolio_url":        req.PortfolioURL,
		"contact_method":       orDefault(req.ContactMethod, "기타"),
		"contact_info":         req.ContactInfo,
		"available_start_date": req.AvailableStartDate,
		"status":               orDefault(req.Status, "active"),
		"user_id":              user.ID,
		"user_name":            user.DisplayName(),
		"church_id":            user.ChurchID,
		"created_at":           "2024-01-01T00:00:00",
	})
}

func (a *App) handleGetJobSeeker(w http.ResponseWriter, r *http.Request) {
	id, ok := parseRecordID(r, w)
	if !ok {
		return
	}
	respondData(w, map[string]any{
		"id":               id,
		"title":            "샘플 구직 신청",
		"desired_position": "개발자",
		"employment_type":  "정규직",
		"desired_location": "서울",
		"status":           "active",
		"introduction":     "샘플 구직신청 자기소개",
		"contact_method":   "이메일",
		"contact_info":     "seeker@test.com",
	})
}

func (a *App) handleDeleteJobSeeker(w http.ResponseWriter, r *http.Request) {
	if _, ok := parseRecordID(r, w); !ok {
		return
	}
	respondMessage(w, "구직 신청이 삭제되었습니다.")
}
