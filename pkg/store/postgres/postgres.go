// Package postgres implements [store.Store] on a relational database through
// GORM. Production deployments use the PostgreSQL driver; tests run the same
// code against sqlite, so all query fragments stick to portable SQL (LIKE on
// lowered columns instead of ILIKE).
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/churchhaven/churchboard/pkg/models"
	"github.com/churchhaven/churchboard/pkg/store"
)

// PostgresStore implements the Store interface with GORM.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to PostgreSQL with the given DSN.
func NewPostgresStore(dsn string) (store.Store, error) {
	return New(postgres.Open(dsn))
}

// New opens a store on any GORM dialector. Tests use this with sqlite.
func New(dialector gorm.Dialector) (store.Store, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Migrate creates or updates the schema for all models via AutoMigrate.
// Safe to run repeatedly; it only adds missing schema elements.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.ChurchEvent{},
		&models.ChurchNews{},
		&models.CommunityRequest{},
		&models.JobPost{},
		&models.JobSeeker{},
		&models.MusicTeamRecruitment{},
		&models.MusicTeamSeeker{},
	)
}

// Close closes the underlying database connection.
func (s *PostgresStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// contains builds a case-insensitive LIKE pattern.
func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

// wantsEquality reports whether an equality filter should apply; the "all"
// sentinel means unfiltered.
func wantsEquality(value string) bool {
	return value != "" && value != store.FilterAll
}

// listPage runs the shared count-then-page tail of every list query.
func listPage[T any](q *gorm.DB, p store.Page) ([]T, int64, error) {
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var records []T
	err := q.Order("created_at DESC, id DESC").Offset(p.Offset()).Limit(p.Size).Find(&records).Error
	return records, total, err
}

// User operations

func (s *PostgresStore) CreateUser(ctx context.Context, user *models.User) error {
	return s.db.WithContext(ctx).Create(user).Error
}

func (s *PostgresStore) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *PostgresStore) UserNames(ctx context.Context, ids []int64) (map[int64]string, error) {
	names := make(map[int64]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	for _, u := range users {
		names[u.ID] = u.FullName
	}
	return names, nil
}

// Church event operations

func (s *PostgresStore) ListChurchEvents(ctx context.Context, f store.ChurchEventFilter, p store.Page) ([]models.ChurchEvent, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.ChurchEvent{})
	if wantsEquality(f.Status) {
		q = q.Where("status = ?", f.Status)
	}
	if f.Search != "" {
		like := contains(f.Search)
		q = q.Where("(lower(title) LIKE ? OR lower(description) LIKE ?)", like, like)
	}
	return listPage[models.ChurchEvent](q, p)
}

func (s *PostgresStore) CreateChurchEvent(ctx context.Context, event *models.ChurchEvent) error {
	return s.db.WithContext(ctx).Create(event).Error
}

func (s *PostgresStore) GetChurchEvent(ctx context.Context, id int64) (*models.ChurchEvent, error) {
	var event models.ChurchEvent
	err := s.db.WithContext(ctx).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (s *PostgresStore) UpdateChurchEventFields(ctx context.Context, id int64, fields map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.ChurchEvent{}).Where("id = ?", id).Updates(fields).Error
	})
}

func (s *PostgresStore) DeleteChurchEvent(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&models.ChurchEvent{}, "id = ?", id).Error
}

// Church news operations

func (s *PostgresStore) ListChurchNews(ctx context.Context, f store.ChurchNewsFilter, p store.Page) ([]models.ChurchNews, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.ChurchNews{})
	if wantsEquality(f.Category) {
		q = q.Where("category = ?", f.Category)
	}
	if wantsEquality(f.Priority) {
		q = q.Where("priority = ?", f.Priority)
	}
	if wantsEquality(f.Status) {
		q = q.Where("status = ?", f.Status)
	}
	if f.EventDateFrom != nil {
		q = q.Where("event_date >= ?", f.EventDateFrom)
	}
	if f.EventDateTo != nil {
		q = q.Where("event_date <= ?", f.EventDateTo)
	}
	if f.Search != "" {
		like := contains(f.Search)
		q = q.Where("(lower(title) LIKE ? OR lower(content) LIKE ? OR lower(organizer) LIKE ?)", like, like, like)
	}
	return listPage[models.ChurchNews](q, p)
}

func (s *PostgresStore) CreateChurchNews(ctx context.Context, news *models.ChurchNews) error {
	return s.db.WithContext(ctx).Create(news).Error
}

func (s *PostgresStore) GetChurchNews(ctx context.Context, id int64) (*models.ChurchNews, error) {
	var news models.ChurchNews
	err := s.db.WithContext(ctx).First(&news, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &news, nil
}

func (s *PostgresStore) UpdateChurchNewsFields(ctx context.Context, id int64, fields map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.ChurchNews{}).Where("id = ?", id).Updates(fields).Error
	})
}

func (s *PostgresStore) DeleteChurchNews(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&models.ChurchNews{}, "id = ?", id).Error
}

func (s *PostgresStore) IncrementChurchNewsViews(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Model(&models.ChurchNews{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
}

func (s *PostgresStore) LikeChurchNews(ctx context.Context, id int64) (int, error) {
	var likes int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ChurchNews{}).Where("id = ?", id).
			UpdateColumn("likes", gorm.Expr("likes + 1")).Error; err != nil {
			return err
		}
		return tx.Model(&models.ChurchNews{}).Select("likes").Where("id = ?", id).Scan(&likes).Error
	})
	return likes, err
}

// Community request operations

func (s *PostgresStore) ListCommunityRequests(ctx context.Context, f store.CommunityRequestFilter, p store.Page) ([]models.CommunityRequest, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.CommunityRequest{})
	if wantsEquality(f.Status) {
		q = q.Where("status = ?", f.Status)
	}
	if wantsEquality(f.Category) {
		q = q.Where("category = ?", f.Category)
	}
	if wantsEquality(f.Urgency) {
		q = q.Where("urgency = ?", f.Urgency)
	}
	if f.Location != "" {
		q = q.Where("lower(location) LIKE ?", contains(f.Location))
	}
	if f.Search != "" {
		like := contains(f.Search)
		q = q.Where("(lower(title) LIKE ? OR lower(description) LIKE ?)", like, like)
	}
	return listPage[models.CommunityRequest](q, p)
}

func (s *PostgresStore) CreateCommunityRequest(ctx context.Context, request *models.CommunityRequest) error {
	return s.db.WithContext(ctx).Create(request).Error
}

func (s *PostgresStore) AllCommunityRequests(ctx context.Context) ([]models.CommunityRequest, error) {
	var requests []models.CommunityRequest
	err := s.db.WithContext(ctx).Find(&requests).Error
	return requests, err
}

// Job post operations

func (s *PostgresStore) ListJobPosts(ctx context.Context, f store.JobPostFilter, p store.Page) ([]models.JobPost, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.JobPost{})
	if wantsEquality(f.Status) {
		q = q.Where("status = ?", f.Status)
	}
	if wantsEquality(f.EmploymentType) {
		q = q.Where("employment_type = ?", f.EmploymentType)
	}
	if f.Location != "" {
		q = q.Where("lower(location) LIKE ?", contains(f.Location))
	}
	if f.Search != "" {
		like := contains(f.Search)
		q = q.Where("(lower(title) LIKE ? OR lower(company_name) LIKE ? OR lower(job_type) LIKE ?)", like, like, like)
	}
	return listPage[models.JobPost](q, p)
}

func (s *PostgresStore) CreateJobPost(ctx context.Context, post *models.JobPost) error {
	return s.db.WithContext(ctx).Create(post).Error
}

// Music team recruitment operations

func (s *PostgresStore) ListMusicTeamRecruitments(ctx context.Context, f store.MusicTeamRecruitmentFilter, p store.Page) ([]models.MusicTeamRecruitment, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.MusicTeamRecruitment{})
	if wantsEquality(f.Status) {
		q = q.Where("status = ?", f.Status)
	}
	if f.Type != "" {
		q = q.Where("recruitment_type = ?", f.Type)
	}
	if f.Instrument != "" {
		q = q.Where("lower(instruments) LIKE ?", contains(f.Instrument))
	}
	if f.Search != "" {
		like := contains(f.Search)
		q = q.Where("(lower(title) LIKE ? OR lower(description) LIKE ? OR lower(church_name) LIKE ?)", like, like, like)
	}
	return listPage[models.MusicTeamRecruitment](q, p)
}

func (s *PostgresStore) CreateMusicTeamRecruitment(ctx context.Context, recruitment *models.MusicTeamRecruitment) error {
	return s.db.WithContext(ctx).Create(recruitment).Error
}

func (s *PostgresStore) GetMusicTeamRecruitment(ctx context.Context, id int64) (*models.MusicTeamRecruitment, error) {
	var recruitment models.MusicTeamRecruitment
	err := s.db.WithContext(ctx).First(&recruitment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recruitment, nil
}

func (s *PostgresStore) UpdateMusicTeamRecruitment(ctx context.Context, recruitment *models.MusicTeamRecruitment) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Save(recruitment).Error
	})
}

func (s *PostgresStore) DeleteMusicTeamRecruitment(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&models.MusicTeamRecruitment{}, "id = ?", id).Error
}

func (s *PostgresStore) IncrementMusicTeamRecruitmentViews(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Model(&models.MusicTeamRecruitment{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (s *PostgresStore) IncrementMusicTeamRecruitmentApplications(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Model(&models.MusicTeamRecruitment{}).Where("id = ?", id).
		UpdateColumn("applications", gorm.Expr("applications + 1")).Error
}

// Music team seeker operations

func (s *PostgresStore) ListMusicTeamSeekers(ctx context.Context, f store.MusicTeamSeekerFilter, p store.Page) ([]models.MusicTeamSeeker, int64, error) {
	q := s.db.WithContext(ctx).Model(&models.MusicTeamSeeker{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Instrument != "" {
		q = q.Where("instrument = ?", f.Instrument)
	}
	if f.Location != "" {
		q = q.Where("lower(preferred_location) LIKE ?", contains(f.Location))
	}
	if f.Day != "" {
		q = q.Where("lower(available_days) LIKE ?", contains(f.Day))
	}
	if f.Time != "" {
		q = q.Where("lower(available_time) LIKE ?", contains(f.Time))
	}
	if f.Search != "" {
		like := contains(f.Search)
		q = q.Where("(lower(title) LIKE ? OR lower(experience) LIKE ?)", like, like)
	}
	return listPage[models.MusicTeamSeeker](q, p)
}

func (s *PostgresStore) CreateMusicTeamSeeker(ctx context.Context, seeker *models.MusicTeamSeeker) error {
	return s.db.WithContext(ctx).Create(seeker).Error
}

func (s *PostgresStore) GetMusicTeamSeeker(ctx context.Context, id int64) (*models.MusicTeamSeeker, error) {
	var seeker models.MusicTeamSeeker
	err := s.db.WithContext(ctx).First(&seeker, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seeker, nil
}

func (s *PostgresStore) UpdateMusicTeamSeekerFields(ctx context.Context, id int64, fields map[string]any) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.MusicTeamSeeker{}).Where("id = ?", id).Updates(fields).Error
	})
}

func (s *PostgresStore) DeleteMusicTeamSeeker(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Delete(&models.MusicTeamSeeker{}, "id = ?", id).Error
}

func (s *PostgresStore) IncrementMusicTeamSeekerViews(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Model(&models.MusicTeamSeeker{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
