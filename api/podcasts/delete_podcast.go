package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// DeletePodcast removes a podcast and all of its episodes
// @Summary      Delete a podcast
// @Description  Delete a podcast. Its episodes are removed with it.
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.MessageResponse "Deletion confirmation"
// @Failure      400 {object} types.ErrorResponse "Invalid ID"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/podcasts/{id} [delete]
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		if err := deps.PodcastService.Delete(c.Request.Context(), id); err != nil {
			types.RespondError(c, err, "Failed to delete podcast")
			return
		}

		c.JSON(http.StatusOK, types.MessageResponse{Message: "Podcast deleted successfully"})
	}
}
