// Package store defines the persistence interface for the churchboard API.
// The postgres subpackage provides the GORM-backed implementation used both
// in production (PostgreSQL) and in tests (sqlite).
package store

import (
	"context"
	"time"

	"github.com/churchhaven/churchboard/pkg/models"
)

// Page describes an offset/limit window over a list query. Number is
// 1-based.
type Page struct {
	Number int
	Size   int
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Equality filters treat the sentinel value "all" the same as unset, so
// frontends can always send their dropdown value verbatim.
const FilterAll = "all"

// ChurchEventFilter narrows church event lists.
type ChurchEventFilter struct {
	Status string // equality, all-sentinel
	Search string // substring over title, description
}

// ChurchNewsFilter narrows church news lists.
type ChurchNewsFilter struct {
	Category      string // equality, all-sentinel
	Priority      string // equality, all-sentinel
	Status        string // equality, all-sentinel
	Search        string // substring over title, content, organizer
	EventDateFrom *time.Time
	EventDateTo   *time.Time
}

// CommunityRequestFilter narrows community request lists.
type CommunityRequestFilter struct {
	Status   string // equality, all-sentinel
	Category string // equality, all-sentinel
	Urgency  string // equality, all-sentinel
	Location string // substring
	Search   string // substring over title, description
}

// JobPostFilter narrows job post lists.
type JobPostFilter struct {
	Status         string // equality, all-sentinel
	EmploymentType string // equality, all-sentinel
	Location       string // substring
	Search         string // substring over title, company_name, job_type
}

// MusicTeamRecruitmentFilter narrows music-team recruitment lists.
type MusicTeamRecruitmentFilter struct {
	Status     string // equality, all-sentinel
	Type       string // equality
	Instrument string // substring over the stored instruments text
	Search     string // substring over title, description, church_name
}

// MusicTeamSeekerFilter narrows music-team seeker lists.
type MusicTeamSeekerFilter struct {
	Status     string // equality
	Instrument string // equality
	Location   string // containment over preferred_location
	Day        string // containment over available_days
	Time       string // substring over available_time
	Search     string // substring over title, experience
}

// Store is the persistence boundary. Get methods return (nil, nil) when the
// record does not exist. List methods return the page of records plus the
// total count before pagination, ordered newest first.
type Store interface {
	Migrate(ctx context.Context) error
	Close() error

	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	// UserNames resolves user ids to full names for author display.
	UserNames(ctx context.Context, ids []int64) (map[int64]string, error)

	ListChurchEvents(ctx context.Context, f ChurchEventFilter, p Page) ([]models.ChurchEvent, int64, error)
	CreateChurchEvent(ctx context.Context, event *models.ChurchEvent) error
	GetChurchEvent(ctx context.Context, id int64) (*models.ChurchEvent, error)
	UpdateChurchEventFields(ctx context.Context, id int64, fields map[string]any) error
	DeleteChurchEvent(ctx context.Context, id int64) error

	ListChurchNews(ctx context.Context, f ChurchNewsFilter, p Page) ([]models.ChurchNews, int64, error)
	CreateChurchNews(ctx context.Context, news *models.ChurchNews) error
	GetChurchNews(ctx context.Context, id int64) (*models.ChurchNews, error)
	UpdateChurchNewsFields(ctx context.Context, id int64, fields map[string]any) error
	DeleteChurchNews(ctx context.Context, id int64) error
	IncrementChurchNewsViews(ctx context.Context, id int64) error
	// LikeChurchNews bumps the like counter and returns the new count.
	LikeChurchNews(ctx context.Context, id int64) (int, error)

	ListCommunityRequests(ctx context.Context, f CommunityRequestFilter, p Page) ([]models.CommunityRequest, int64, error)
	CreateCommunityRequest(ctx context.Context, request *models.CommunityRequest) error
	// AllCommunityRequests returns every request without pagination, for the
	// debug dump endpoint.
	AllCommunityRequests(ctx context.Context) ([]models.CommunityRequest, error)

	ListJobPosts(ctx context.Context, f JobPostFilter, p Page) ([]models.JobPost, int64, error)
	CreateJobPost(ctx context.Context, post *models.JobPost) error

	ListMusicTeamRecruitments(ctx context.Context, f MusicTeamRecruitmentFilter, p Page) ([]models.MusicTeamRecruitment, int64, error)
	CreateMusicTeamRecruitment(ctx context.Context, recruitment *models.MusicTeamRecruitment) error
	GetMusicTeamRecruitment(ctx context.Context, id int64) (*models.MusicTeamRecruitment, error)
	UpdateMusicTeamRecruitment(ctx context.Context, recruitment *models.MusicTeamRecruitment) error
	DeleteMusicTeamRecruitment(ctx context.Context, id int64) error
	IncrementMusicTeamRecruitmentViews(ctx context.Context, id int64) error
	IncrementMusicTeamRecruitmentApplications(ctx context.Context, id int64) error

	ListMusicTeamSeekers(ctx context.Context, f MusicTeamSeekerFilter, p Page) ([]models.MusicTeamSeeker, int64, error)
	CreateMusicTeamSeeker(ctx context.Context, seeker *models.MusicTeamSeeker) error
	GetMusicTeamSeeker(ctx context.Context, id int64) (*models.MusicTeamSeeker, error)
	UpdateMusicTeamSeekerFields(ctx context.Context, id int64, fields map[string]any) error
	DeleteMusicTeamSeeker(ctx context.Context, id int64) error
	IncrementMusicTeamSeekerViews(ctx context.Context, id int64) error
}
