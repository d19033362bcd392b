package model

import "time"

// Person categories mirror the reference catalog.
const (
	PersonRuler       = "ruler"
	PersonMilitary    = "military"
	PersonPolitical   = "political"
	PersonPhilosopher = "philosopher"
	PersonReligious   = "religious"
	PersonArtist      = "artist"
	PersonScientist   = "scientist"
	PersonOther       = "other"
)

type Person struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null"`
	NameIS         string `json:"name_is" gorm:"not null;index"`
	BirthYear      *int   `json:"birth_year,omitempty"` // negative = BCE
	DeathYear      *int   `json:"death_year,omitempty"`
	Category       string `json:"category" gorm:"size:20;index"`
	CivilizationID *uint  `json:"civilization_id,omitempty" gorm:"index"`
	PeriodID       *uint  `json:"period_id,omitempty" gorm:"index"`
	Biography      string `json:"biography" gorm:"type:text"`
	BiographyIS    string `json:"biography_is" gorm:"type:text"`
	Achievements   string `json:"achievements" gorm:"type:text"`
	AchievementsIS string `json:"achievements_is" gorm:"type:text"`
}

type Deity struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null"`
	NameIS         string `json:"name_is" gorm:"not null;index"`
	CivilizationID *uint  `json:"civilization_id,omitempty" gorm:"index"`
	Domain         string `json:"domain" gorm:"size:100"` // e.g. "God of Thunder"
	DomainIS       string `json:"domain_is" gorm:"size:100"`
	Symbols        string `json:"symbols" gorm:"size:200"`
	SymbolsIS      string `json:"symbols_is" gorm:"size:200"`
	Mythology      string `json:"mythology" gorm:"type:text"`
	MythologyIS    string `json:"mythology_is" gorm:"type:text"`
	Significance   string `json:"cultural_significance" gorm:"type:text"`
	SignificanceIS string `json:"cultural_significance_is" gorm:"type:text"`
}

type Battle struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Name           string `json:"name" gorm:"not null"`
	NameIS         string `json:"name_is" gorm:"not null;index"`
	Year           int    `json:"year"` // negative = BCE
	Location       string `json:"location" gorm:"size:100"`
	PeriodID       *uint  `json:"period_id,omitempty" gorm:"index"`
	Description    string `json:"description" gorm:"type:text"`
	DescriptionIS  string `json:"description_is" gorm:"type:text"`
	Outcome        string `json:"outcome" gorm:"type:text"`
	OutcomeIS      string `json:"outcome_is" gorm:"type:text"`
	Significance   string `json:"significance" gorm:"type:text"`
	SignificanceIS string `json:"significance_is" gorm:"type:text"`
}

// Cultural topic categories.
const (
	TopicDailyLife     = "daily_life"
	TopicSocialClasses = "social_classes"
	TopicTrade         = "trade"
	TopicArt           = "art"
	TopicLiterature    = "literature"
	TopicReligion      = "religion"
	TopicScience       = "science"
	TopicOther         = "other"
)

type CulturalTopic struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Title          string `json:"title" gorm:"not null"`
	TitleIS        string `json:"title_is" gorm:"not null;index"`
	Category       string `json:"category" gorm:"size:20;index"`
	CivilizationID *uint  `json:"civilization_id,omitempty" gorm:"index"`
	PeriodID       *uint  `json:"period_id,omitempty" gorm:"index"`
	Content        string `json:"content" gorm:"type:text"`
	ContentIS      string `json:"content_is" gorm:"type:text"`
}

// Timeline event categories.
const (
	EventPolitical  = "political"
	EventMilitary   = "military"
	EventCultural   = "cultural"
	EventReligious  = "religious"
	EventScientific = "scientific"
	EventEconomic   = "economic"
	EventOther      = "other"
)

type TimelineEvent struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Title          string    `json:"title" gorm:"not null"`
	TitleIS        string    `json:"title_is" gorm:"not null"`
	Description    string    `json:"description" gorm:"type:text"`
	DescriptionIS  string    `json:"description_is" gorm:"type:text"`
	DateStart      int       `json:"date_start" gorm:"index"` // negative = BCE
	DateEnd        *int      `json:"date_end,omitempty"`      // multi-year events
	PeriodID       *uint     `json:"period_id,omitempty" gorm:"index"`
	CivilizationID *uint     `json:"civilization_id,omitempty" gorm:"index"`
	Region         string    `json:"region" gorm:"size:100"`
	Category       string    `json:"category" gorm:"size:20;index"`
	Importance     int       `json:"importance" gorm:"default:1"` // 1-5
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
