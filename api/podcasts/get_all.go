package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// GetPodcasts lists every podcast, newest first
// @Summary      List podcasts
// @Description  Retrieve all podcasts ordered by descending identifier,
// @Description  each annotated with its episode count. No pagination.
// @Tags         podcasts
// @Produce      json
// @Success      200 {array} podcasts.ListItem "All podcasts"
// @Failure      500 {object} types.ErrorResponse "Storage failure"
// @Router       /api/podcasts [get]
func GetPodcasts(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcasts, err := deps.PodcastService.List(c.Request.Context())
		if err != nil {
			types.RespondError(c, err, "Failed to list podcasts")
			return
		}

		c.JSON(http.StatusOK, podcasts)
	}
}
