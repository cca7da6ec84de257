package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// GetPodcast returns one podcast by ID
// @Summary      Get a podcast
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} podcasts.Summary "Podcast"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/podcasts/{id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		podcast, err := deps.PodcastService.GetByID(c.Request.Context(), id)
		if err != nil {
			types.RespondError(c, err, "Failed to get podcast")
			return
		}

		c.JSON(http.StatusOK, podcast)
	}
}
