package models

import (
	"time"

	"gorm.io/gorm"
)

// Podcast represents a podcast in the catalog
type Podcast struct {
	gorm.Model
	Title string `json:"title" gorm:"not null"`
	// Image holds either the relative path of an uploaded cover file
	// (/uploads/...) or an externally supplied absolute URL. Nil means
	// the podcast has no cover.
	Image    *string   `json:"image"`
	Episodes []Episode `json:"episodes,omitempty" gorm:"foreignKey:PodcastID"`
}

// Episode represents a single audio item belonging to one podcast.
// Audio is referenced by URL only, never stored.
type Episode struct {
	gorm.Model
	PodcastID       uint      `json:"podcast_id" gorm:"not null;index"`
	Title           string    `json:"title" gorm:"not null"`
	Description     string    `json:"description" gorm:"type:text;not null"`
	PublicationDate time.Time `json:"publication_date" gorm:"not null;index"`
	AudioURL        string    `json:"audio_url" gorm:"not null;column:audio_url"`

	Podcast *Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
}
