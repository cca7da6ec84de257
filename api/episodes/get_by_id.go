package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// GetByID returns one episode with its podcast summary embedded
// @Summary      Get an episode
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} episodes.Projected "Episode"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		episode, err := deps.EpisodeService.GetByID(c.Request.Context(), id)
		if err != nil {
			types.RespondError(c, err, "Failed to get episode")
			return
		}

		c.JSON(http.StatusOK, episode)
	}
}
