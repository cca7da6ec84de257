package podcasts

import (
	"context"
	"strings"

	"github.com/castkeep/catalog-api/internal/models"
	apperrors "github.com/castkeep/catalog-api/pkg/errors"
)

// Service implements podcast catalog operations on top of the
// repository. All required-field validation lives here, not in the
// transport layer, so it is enforceable independent of HTTP.
type Service struct {
	repository PodcastRepository
}

// Ensure Service implements PodcastService interface
var _ PodcastService = (*Service)(nil)

func NewService(repository PodcastRepository) *Service {
	return &Service{repository: repository}
}

// Create persists a new podcast and returns its projection.
// imageRef is either an uploaded-file relative path, an external URL,
// or nil for no cover.
func (s *Service) Create(ctx context.Context, title string, imageRef *string) (*Summary, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.MissingFields("title")
	}

	podcast := &models.Podcast{
		Title: title,
		Image: imageRef,
	}
	if err := s.repository.CreatePodcast(ctx, podcast); err != nil {
		return nil, err
	}

	return ToSummary(podcast), nil
}

// List returns every podcast, newest first, with episode counts
func (s *Service) List(ctx context.Context) ([]ListItem, error) {
	rows, err := s.repository.ListPodcastsWithEpisodeCounts(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]ListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, ToListItem(row))
	}
	return items, nil
}

// GetByID returns a single podcast projection
func (s *Service) GetByID(ctx context.Context, id uint) (*Summary, error) {
	podcast, err := s.repository.GetPodcastByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToSummary(podcast), nil
}

// Update applies a partial update: when imageRef is nil the existing
// image reference is left untouched, otherwise both title and image
// change.
func (s *Service) Update(ctx context.Context, id uint, title string, imageRef *string) (*Summary, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.MissingFields("title")
	}

	podcast, err := s.repository.GetPodcastByID(ctx, id)
	if err != nil {
		return nil, err
	}

	podcast.Title = title
	if imageRef != nil {
		podcast.Image = imageRef
	}

	if err := s.repository.UpdatePodcast(ctx, podcast); err != nil {
		return nil, err
	}

	return ToSummary(podcast), nil
}

// Delete removes a podcast and its episodes
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repository.DeletePodcast(ctx, id)
}
