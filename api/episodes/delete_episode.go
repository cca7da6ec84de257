package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// Delete removes an episode independently of its podcast
// @Summary      Delete an episode
// @Tags         episodes
// @Produce      json
// @Param        id path int true "Episode ID"
// @Success      200 {object} types.MessageResponse "Deletion confirmation"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.EpisodeService.Delete(c.Request.Context(), id); err != nil {
			types.RespondError(c, err, "Failed to delete episode")
			return
		}

		c.JSON(http.StatusOK, types.MessageResponse{Message: "Episode deleted successfully"})
	}
}
