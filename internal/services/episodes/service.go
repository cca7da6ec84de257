package episodes

import (
	"context"
	"log"
	"strings"

	"github.com/castkeep/catalog-api/internal/models"
	"github.com/castkeep/catalog-api/internal/services/podcasts"
	apperrors "github.com/castkeep/catalog-api/pkg/errors"
)

// Service implements episode catalog operations. It owns all
// required-field validation and the podcast re-fetch that feeds the
// embedded summary on create/update responses.
type Service struct {
	repository  EpisodeRepository
	podcastRepo podcasts.PodcastRepository
}

// Ensure Service implements EpisodeService interface
var _ EpisodeService = (*Service)(nil)

func NewService(repository EpisodeRepository, podcastRepo podcasts.PodcastRepository) *Service {
	return &Service{
		repository:  repository,
		podcastRepo: podcastRepo,
	}
}

// Create inserts an episode under an existing podcast and returns the
// full projection. The owning podcast must exist; episodes are never
// created dangling.
func (s *Service) Create(ctx context.Context, podcastID uint, input CreateInput) (*Projected, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	publicationDate, err := ParseDate(input.PublicationDate)
	if err != nil {
		return nil, err
	}

	owner, err := s.podcastRepo.GetPodcastByID(ctx, podcastID)
	if err != nil {
		return nil, err
	}

	episode := &models.Episode{
		PodcastID:       podcastID,
		Title:           input.Title,
		Description:     input.Description,
		PublicationDate: publicationDate,
		AudioURL:        input.AudioURL,
	}
	if err := s.repository.CreateEpisode(ctx, episode); err != nil {
		return nil, err
	}

	episode.Podcast = owner
	return ToProjected(episode), nil
}

// List returns the projected episodes matching the filter, newest
// publication date first
func (s *Service) List(ctx context.Context, filter ListFilter) ([]Projected, error) {
	rows, err := s.repository.ListEpisodes(ctx, filter)
	if err != nil {
		return nil, err
	}

	projected := make([]Projected, 0, len(rows))
	for i := range rows {
		projected = append(projected, *ToProjected(&rows[i]))
	}
	return projected, nil
}

// GetByID returns a single projected episode
func (s *Service) GetByID(ctx context.Context, id uint) (*Projected, error) {
	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProjected(episode), nil
}

// Update applies a full-field update (the owning podcast never
// changes), then re-fetches the owner for the response projection. A
// failed re-fetch is not fatal: the projection carries a null podcast.
func (s *Service) Update(ctx context.Context, id uint, input UpdateInput) (*Projected, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	publicationDate, err := ParseDate(input.PublicationDate)
	if err != nil {
		return nil, err
	}

	episode, err := s.repository.GetEpisodeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	episode.Title = input.Title
	episode.Description = input.Description
	episode.PublicationDate = publicationDate
	episode.AudioURL = input.AudioURL
	episode.Podcast = nil

	if err := s.repository.UpdateEpisode(ctx, episode); err != nil {
		return nil, err
	}

	owner, err := s.podcastRepo.GetPodcastByID(ctx, episode.PodcastID)
	if err != nil {
		log.Printf("[WARN] owning podcast %d missing for episode %d: %v", episode.PodcastID, id, err)
	} else {
		episode.Podcast = owner
	}

	return ToProjected(episode), nil
}

// Delete removes an episode independently of its podcast
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repository.DeleteEpisode(ctx, id)
}

// validateInput reports every missing required field in one error
func validateInput(input CreateInput) error {
	var missing []string
	if strings.TrimSpace(input.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(input.Description) == "" {
		missing = append(missing, "description")
	}
	if strings.TrimSpace(input.PublicationDate) == "" {
		missing = append(missing, "publicationDate")
	}
	if strings.TrimSpace(input.AudioURL) == "" {
		missing = append(missing, "audioUrl")
	}
	if len(missing) > 0 {
		return apperrors.MissingFields(missing...)
	}
	return nil
}
