package episodes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/castkeep/catalog-api/internal/models"
	apperrors "github.com/castkeep/catalog-api/pkg/errors"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements EpisodeRepository interface
var _ EpisodeRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateEpisode creates a new episode
func (r *Repository) CreateEpisode(ctx context.Context, episode *models.Episode) error {
	if err := r.db.WithContext(ctx).Create(episode).Error; err != nil {
		return fmt.Errorf("creating episode: %w", err)
	}
	return nil
}

// GetEpisodeByID retrieves an episode with its owning podcast preloaded
func (r *Repository) GetEpisodeByID(ctx context.Context, id uint) (*models.Episode, error) {
	var episode models.Episode
	if err := r.db.WithContext(ctx).
		Preload("Podcast").
		First(&episode, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("episode", id)
		}
		return nil, fmt.Errorf("getting episode: %w", err)
	}
	return &episode, nil
}

// ListEpisodes runs the single list/search query. The optional
// predicates are ANDed: restrict to one podcast, and a case-insensitive
// substring match across episode title, episode description and parent
// podcast title. Results are ordered by publication date descending.
// The podcast join is a LEFT JOIN so an episode with a missing owner
// still appears, with a nil Podcast.
func (r *Repository) ListEpisodes(ctx context.Context, filter ListFilter) ([]models.Episode, error) {
	query := r.db.WithContext(ctx).
		Model(&models.Episode{}).
		Joins("LEFT JOIN podcasts ON podcasts.id = episodes.podcast_id AND podcasts.deleted_at IS NULL").
		Preload("Podcast")

	if filter.PodcastID != nil {
		query = query.Where("episodes.podcast_id = ?", *filter.PodcastID)
	}

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(episodes.title) LIKE ? OR LOWER(episodes.description) LIKE ? OR LOWER(podcasts.title) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var episodes []models.Episode
	if err := query.
		Order("episodes.publication_date DESC").
		Find(&episodes).Error; err != nil {
		return nil, fmt.Errorf("listing episodes: %w", err)
	}

	return episodes, nil
}

// UpdateEpisode updates an existing episode
func (r *Repository) UpdateEpisode(ctx context.Context, episode *models.Episode) error {
	result := r.db.WithContext(ctx).Save(episode)
	if result.Error != nil {
		return fmt.Errorf("updating episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("episode", episode.ID)
	}
	return nil
}

// DeleteEpisode removes an episode if present
func (r *Repository) DeleteEpisode(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Episode{}, id)
	if result.Error != nil {
		return fmt.Errorf("deleting episode: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("episode", id)
	}
	return nil
}
