package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
	"github.com/castkeep/catalog-api/internal/services/episodes"
)

// GetEpisodes lists the episodes of one podcast, newest first
// @Summary      List a podcast's episodes
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {array} episodes.Projected "Episodes, publication date descending"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      500 {object} types.ErrorResponse "Storage failure"
// @Router       /api/podcasts/{id}/episodes [get]
func GetEpisodes(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcastID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		results, err := deps.EpisodeService.List(c.Request.Context(), episodes.ListFilter{
			PodcastID: &podcastID,
		})
		if err != nil {
			types.RespondError(c, err, "Failed to list episodes")
			return
		}

		c.JSON(http.StatusOK, results)
	}
}
