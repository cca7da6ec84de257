package episodes

import (
	"time"

	"github.com/castkeep/catalog-api/internal/models"
	"github.com/castkeep/catalog-api/internal/services/podcasts"
	apperrors "github.com/castkeep/catalog-api/pkg/errors"
)

// DateLayout is the external representation of publication dates.
// Dates are calendar days; no time zone semantics are attached.
const DateLayout = "2006-01-02"

// Projected is the external projection of an episode: renamed fields
// plus the owning podcast summary embedded so callers never need a
// second request to resolve the relationship. Podcast is null only
// when the owning row is gone.
type Projected struct {
	ID              uint              `json:"id"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	PublicationDate string            `json:"publicationDate"`
	AudioURL        string            `json:"audioUrl"`
	Podcast         *podcasts.Summary `json:"podcast"`
}

// ToProjected projects an episode row into its external shape, using
// whatever podcast row is attached (possibly nil).
func ToProjected(episode *models.Episode) *Projected {
	if episode == nil {
		return nil
	}
	return &Projected{
		ID:              episode.ID,
		Title:           episode.Title,
		Description:     episode.Description,
		PublicationDate: episode.PublicationDate.Format(DateLayout),
		AudioURL:        episode.AudioURL,
		Podcast:         podcasts.ToSummary(episode.Podcast),
	}
}

// ParseDate parses a client-supplied publication date. Plain calendar
// dates are the contract; RFC 3339 timestamps are accepted for
// convenience and truncated to their date.
func ParseDate(value string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Truncate(24 * time.Hour), nil
	}
	return time.Time{}, apperrors.ValidationError("publicationDate",
		"must be a calendar date in YYYY-MM-DD form")
}
