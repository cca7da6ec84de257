package podcasts

import (
	"context"
	"errors"
	"fmt"

	"github.com/castkeep/catalog-api/internal/models"
	apperrors "github.com/castkeep/catalog-api/pkg/errors"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements PodcastRepository interface
var _ PodcastRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// PodcastWithCount is a podcast row annotated with its episode count
type PodcastWithCount struct {
	models.Podcast
	EpisodeCount int64
}

// CreatePodcast creates a new podcast
func (r *Repository) CreatePodcast(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

// GetPodcastByID retrieves a podcast by its database ID
func (r *Repository) GetPodcastByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("podcast", id)
		}
		return nil, fmt.Errorf("getting podcast: %w", err)
	}
	return &podcast, nil
}

// ListPodcastsWithEpisodeCounts returns every podcast ordered by
// descending ID (most recent first), each annotated with the number of
// episodes it owns. The join must skip soft-deleted episodes itself;
// GORM only scopes the primary table.
func (r *Repository) ListPodcastsWithEpisodeCounts(ctx context.Context) ([]PodcastWithCount, error) {
	var rows []PodcastWithCount

	if err := r.db.WithContext(ctx).
		Model(&models.Podcast{}).
		Select("podcasts.*, COUNT(episodes.id) AS episode_count").
		Joins("LEFT JOIN episodes ON episodes.podcast_id = podcasts.id AND episodes.deleted_at IS NULL").
		Group("podcasts.id").
		Order("podcasts.id DESC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("listing podcasts: %w", err)
	}

	return rows, nil
}

// UpdatePodcast updates an existing podcast
func (r *Repository) UpdatePodcast(ctx context.Context, podcast *models.Podcast) error {
	result := r.db.WithContext(ctx).Save(podcast)
	if result.Error != nil {
		return fmt.Errorf("updating podcast: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("podcast", podcast.ID)
	}
	return nil
}

// DeletePodcast removes a podcast and all of its episodes in one
// transaction (the delete policy is cascade).
func (r *Repository) DeletePodcast(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Podcast{}, id)
		if result.Error != nil {
			return fmt.Errorf("deleting podcast: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("podcast", id)
		}

		if err := tx.Where("podcast_id = ?", id).Delete(&models.Episode{}).Error; err != nil {
			return fmt.Errorf("deleting podcast episodes: %w", err)
		}

		return nil
	})
}
