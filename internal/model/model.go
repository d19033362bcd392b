package model

import "time"

type User struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Username          string    `json:"username" gorm:"not null;uniqueIndex"`
	Email             string    `json:"email" gorm:"not null;uniqueIndex"`
	Password          string    `json:"password,omitempty"` // bcrypt hash, excluded from responses
	PreferredLanguage string    `json:"preferred_language" gorm:"size:10;default:'is'"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HistoricalPeriod is a named era. Years can be negative, denoting BCE.
type HistoricalPeriod struct {
	ID            uint              `json:"id" gorm:"primaryKey"`
	Name          string            `json:"name" gorm:"not null"`
	NameIS        string            `json:"name_is" gorm:"not null;index"`
	StartYear     int               `json:"start_year"`
	EndYear       int               `json:"end_year"`
	Description   string            `json:"description" gorm:"type:text"`
	DescriptionIS string            `json:"description_is" gorm:"type:text"`
	ParentID      *uint             `json:"parent_id,omitempty" gorm:"index"`
	Subperiods    []HistoricalPeriod `json:"subperiods,omitempty" gorm:"foreignKey:ParentID"`
}

type Civilization struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	Name          string `json:"name" gorm:"not null"`
	NameIS        string `json:"name_is" gorm:"not null;index"`
	StartYear     int    `json:"start_year"`
	EndYear       int    `json:"end_year"`
	Region        string `json:"region" gorm:"size:100"`
	Description   string `json:"description" gorm:"type:text"`
	DescriptionIS string `json:"description_is" gorm:"type:text"`
	PeriodID      *uint  `json:"period_id,omitempty" gorm:"index"`
}

// SearchResults bundles the per-table hits of a free-text content search.
type SearchResults struct {
	People         []Person        `json:"people"`
	Deities        []Deity         `json:"deities"`
	Battles        []Battle        `json:"battles"`
	CulturalTopics []CulturalTopic `json:"cultural_topics"`
	TimelineEvents []TimelineEvent `json:"timeline_events"`
}
