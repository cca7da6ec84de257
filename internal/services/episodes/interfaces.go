package episodes

import (
	"context"

	"github.com/castkeep/catalog-api/internal/models"
)

// ListFilter holds the optional predicates of the episode list query.
// Both are combined with logical AND when present.
type ListFilter struct {
	// Search is a case-insensitive substring matched against the
	// episode title, the episode description, and the parent podcast
	// title (OR-combined). Empty means no search predicate.
	Search string
	// PodcastID restricts the result to one podcast when non-nil.
	PodcastID *uint
}

// EpisodeRepository defines the data access interface for episodes
type EpisodeRepository interface {
	CreateEpisode(ctx context.Context, episode *models.Episode) error
	GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error)
	ListEpisodes(ctx context.Context, filter ListFilter) ([]models.Episode, error)
	UpdateEpisode(ctx context.Context, episode *models.Episode) error
	DeleteEpisode(ctx context.Context, id uint) error
}

// EpisodeService defines the business logic interface for episode
// operations. Every read path returns the projected shape with the
// owning podcast summary embedded.
type EpisodeService interface {
	Create(ctx context.Context, podcastID uint, input CreateInput) (*Projected, error)
	List(ctx context.Context, filter ListFilter) ([]Projected, error)
	GetByID(ctx context.Context, id uint) (*Projected, error)
	Update(ctx context.Context, id uint, input UpdateInput) (*Projected, error)
	Delete(ctx context.Context, id uint) error
}

// CreateInput carries the client-supplied fields of a new episode.
// All fields are required; PublicationDate is a calendar date string.
type CreateInput struct {
	Title           string
	Description     string
	PublicationDate string
	AudioURL        string
}

// UpdateInput mirrors CreateInput: updates are full-field, there is no
// partial variant and no re-parenting to another podcast.
type UpdateInput = CreateInput
