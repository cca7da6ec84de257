package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
	"github.com/castkeep/catalog-api/internal/services/episodes"
)

// PostEpisode creates an episode under an existing podcast
// @Summary      Create an episode
// @Description  Create an episode in the context of an existing podcast.
// @Description  All fields are required; the response embeds the owning
// @Description  podcast summary.
// @Tags         episodes
// @Accept       json
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Param        episode body types.CreateEpisodeRequest true "Episode fields"
// @Success      201 {object} episodes.Projected "Created episode"
// @Failure      400 {object} types.ErrorResponse "Missing required fields"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/podcasts/{id}/episodes [post]
func PostEpisode(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.CreateEpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		episode, err := deps.EpisodeService.Create(c.Request.Context(), podcastID, episodes.CreateInput{
			Title:           req.Title,
			Description:     req.Description,
			PublicationDate: req.PublicationDate,
			AudioURL:        req.AudioURL,
		})
		if err != nil {
			types.RespondError(c, err, "Failed to create episode")
			return
		}

		c.JSON(http.StatusCreated, episode)
	}
}
