// Package models defines the persisted record types for the churchboard
// community API and their GORM mappings. All records use auto-increment
// integer IDs and carry created_at/updated_at timestamps maintained by GORM.
package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// CommunityChurchID is the shared bucket assigned to records created by
// users without a church affiliation.
const CommunityChurchID int64 = 9998

// AnonymousName is the display name used when an author cannot be resolved.
const AnonymousName = "익명"

// StringList is a []string stored as a single ", "-joined text column.
// The frontends exchange arrays; the database keeps flat text so the
// column stays readable and filterable with plain LIKE queries.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return strings.Join(l, ", "), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
	case []byte:
		*l = SplitList(string(v))
	case string:
		*l = SplitList(v)
	default:
		return fmt.Errorf("unsupported StringList source type %T", value)
	}
	return nil
}

// User is the identity record backing the X-User-ID header. Author names on
// list and detail responses come from this table.
type User struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName   string    `gorm:"column:full_name" json:"full_name"`
	ChurchID   *int64    `json:"church_id,omitempty"`
	ChurchName string    `json:"church_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// DisplayName returns the user's name with the anonymous fallback.
func (u *User) DisplayName() string {
	if u == nil || u.FullName == "" {
		return AnonymousName
	}
	return u.FullName
}

// ChurchOrCommunity returns the user's church id, or the community bucket
// when the user has none.
func (u *User) ChurchOrCommunity() int64 {
	if u == nil || u.ChurchID == nil {
		return CommunityChurchID
	}
	return *u.ChurchID
}

// ChurchEvent is a church event-team recruitment post. Contact details are
// stored combined in ContactInfo (see CombineContactInfo).
type ChurchEvent struct {
	ID              int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title           string     `gorm:"not null" json:"title"`
	Description     string     `json:"description"`
	EventDate       *time.Time `json:"event_date,omitempty"`
	Location        string     `json:"location"`
	MaxParticipants *int       `json:"max_participants,omitempty"`
	ContactInfo     string     `json:"contact_info"`
	Status          string     `json:"status"`
	Views           int        `gorm:"not null;default:0" json:"views"`
	Likes           int        `gorm:"not null;default:0" json:"likes"`
	AuthorID        int64      `gorm:"index" json:"author_id"`
	ChurchID        int64      `json:"church_id"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ChurchNews is a church announcement with optional event scheduling and
// registration metadata.
type ChurchNews struct {
	ID                   int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title                string     `gorm:"not null" json:"title"`
	Content              string     `gorm:"not null" json:"content"`
	Category             string     `gorm:"not null" json:"category"`
	Priority             string     `json:"priority"`
	EventDate            *time.Time `json:"event_date,omitempty"`
	EventTime            string     `json:"event_time"` // "HH:MM", empty when unset
	Location             string     `json:"location"`
	Organizer            string     `gorm:"not null" json:"organizer"`
	TargetAudience       string     `json:"target_audience"`
	ParticipationFee     string     `json:"participation_fee"`
	RegistrationRequired bool       `json:"registration_required"`
	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	ContactPerson        string     `json:"contact_person"`
	ContactPhone         string     `json:"contact_phone"`
	ContactEmail         string     `json:"contact_email"`
	Status               string     `json:"status"`
	ViewCount            int        `gorm:"not null;default:0" json:"view_count"`
	Likes                int        `gorm:"not null;default:0" json:"likes"`
	CommentsCount        int        `gorm:"not null;default:0" json:"comments_count"`
	Tags                 StringList `gorm:"type:text" json:"tags"`
	Images               StringList `gorm:"type:text" json:"images"`
	AuthorID             int64      `gorm:"index" json:"author_id"`
	ChurchID             *int64     `json:"church_id"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// CommunityRequest is an item request shared across all churches.
type CommunityRequest struct {
	ID           int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Description  string     `json:"description"`
	Category     string     `json:"category"`
	Urgency      string     `json:"urgency"`
	Location     string     `json:"location"`
	ContactInfo  string     `json:"contact_info"`
	RewardType   string     `json:"reward_type"`
	RewardAmount *int       `json:"reward_amount,omitempty"`
	Status       string     `json:"status"`
	Images       StringList `gorm:"type:text" json:"images"`
	ViewCount    int        `gorm:"not null;default:0" json:"view_count"`
	UserID       int64      `gorm:"index" json:"user_id"`
	ChurchID     int64      `json:"church_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// JobPost is a job opening. UserID and AuthorID are both populated with the
// creator's id; the table historically carries both columns.
type JobPost struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"not null" json:"title"`
	Description    string    `json:"description"`
	CompanyName    string    `json:"company_name"`
	JobType        string    `json:"job_type"`
	EmploymentType string    `json:"employment_type"`
	Location       string    `json:"location"`
	SalaryRange    string    `json:"salary_range"`
	Requirements   string    `json:"requirements"`
	ContactInfo    string    `json:"contact_info"`
	Status         string    `json:"status"`
	ViewCount      int       `gorm:"not null;default:0" json:"view_count"`
	UserID         int64     `gorm:"index" json:"user_id"`
	AuthorID       int64     `json:"author_id"`
	ChurchID       int64     `json:"church_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// JobSeeker is a job-seeking profile. The seeker endpoints currently serve
// canned responses, but the table is part of the schema and migrated so the
// data model matches the deployed database.
type JobSeeker struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title               string    `gorm:"not null" json:"title"`
	DesiredPosition     string    `json:"desired_position"`
	EmploymentType      string    `json:"employment_type"`
	DesiredLocation     string    `json:"desired_location"`
	SalaryExpectation   string    `json:"salary_expectation"`
	ExperienceSummary   string    `json:"experience_summary"`
	EducationBackground string    `json:"education_background"`
	Skills              string    `json:"skills"`
	PortfolioURL        string    `json:"portfolio_url"`
	ContactMethod       string    `json:"contact_method"`
	ContactInfo         string    `json:"contact_info"`
	AvailableStartDate  string    `json:"available_start_date"`
	Status              string    `json:"status"`
	UserID              int64     `gorm:"index" json:"user_id"`
	ChurchID            *int64    `json:"church_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// MusicTeamRecruitment is a post by a church looking for musicians.
// Instruments are stored as comma-joined text and contact details combined
// into ContactInfo; both are split back into structured form on the wire.
type MusicTeamRecruitment struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"not null" json:"title"`
	ChurchName   string    `gorm:"not null" json:"church_name"`
	Type         string    `gorm:"column:recruitment_type;not null" json:"recruitment_type"`
	Instruments  string    `json:"instruments"`
	Schedule     string    `json:"schedule"`
	Location     string    `json:"location"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Compensation string    `json:"compensation"`
	ContactInfo  string    `json:"contact_info"`
	Status       string    `json:"status"`
	Applications int       `gorm:"not null;default:0" json:"applications"`
	Views        int       `gorm:"not null;default:0" json:"views"`
	Likes        int       `gorm:"not null;default:0" json:"likes"`
	AuthorID     int64     `gorm:"index" json:"author_id"`
	ChurchID     int64     `json:"church_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MusicTeamSeeker is a musician or team offering to play at church events.
// Author and church names are denormalized onto the row at create time.
type MusicTeamSeeker struct {
	ID                int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title             string     `gorm:"not null" json:"title"`
	TeamName          string     `json:"team_name"`
	Instrument        string     `gorm:"not null" json:"instrument"`
	Experience        string     `json:"experience"`
	Portfolio         string     `json:"portfolio"`
	PreferredLocation StringList `gorm:"type:text" json:"preferred_location"`
	AvailableDays     StringList `gorm:"type:text" json:"available_days"`
	AvailableTime     string     `json:"available_time"`
	ContactPhone      string     `gorm:"not null" json:"contact_phone"`
	ContactEmail      string     `json:"contact_email"`
	Status            string     `json:"status"`
	AuthorID          int64      `gorm:"index" json:"author_id"`
	AuthorName        string     `json:"author_name"`
	ChurchID          *int64     `json:"church_id"`
	ChurchName        string     `json:"church_name"`
	Views             int        `gorm:"not null;default:0" json:"views"`
	Likes             int        `gorm:"not null;default:0" json:"likes"`
	Matches           int        `gorm:"not null;default:0" json:"matches"`
	Applications      int        `gorm:"not null;default:0" json:"applications"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
