package types

import (
	"github.com/castkeep/catalog-api/internal/database"
	"github.com/castkeep/catalog-api/internal/services/episodes"
	"github.com/castkeep/catalog-api/internal/services/podcasts"
	"github.com/castkeep/catalog-api/internal/services/uploads"
)

// Dependencies holds all the dependencies needed by handlers. There is
// no process-wide state; everything is constructed at startup and
// passed down.
type Dependencies struct {
	DB             *database.DB
	PodcastService podcasts.PodcastService
	EpisodeService episodes.EpisodeService
	Uploads        *uploads.Service
}
