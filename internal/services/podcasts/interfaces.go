package podcasts

import (
	"context"

	"github.com/castkeep/catalog-api/internal/models"
)

// PodcastRepository defines the data access interface for podcasts
type PodcastRepository interface {
	CreatePodcast(ctx context.Context, podcast *models.Podcast) error
	GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error)
	ListPodcastsWithEpisodeCounts(ctx context.Context) ([]PodcastWithCount, error)
	UpdatePodcast(ctx context.Context, podcast *models.Podcast) error
	DeletePodcast(ctx context.Context, id uint) error
}

// PodcastService defines the business logic interface for podcast operations.
// Every read path returns the projected shape, never raw rows.
type PodcastService interface {
	Create(ctx context.Context, title string, imageRef *string) (*Summary, error)
	List(ctx context.Context) ([]ListItem, error)
	GetByID(ctx context.Context, id uint) (*Summary, error)
	Update(ctx context.Context, id uint, title string, imageRef *string) (*Summary, error)
	Delete(ctx context.Context, id uint) error
}
