package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
	"github.com/castkeep/catalog-api/internal/services/episodes"
)

// GetAll lists episodes across every podcast, optionally filtered by a
// free-text search
// @Summary      List or search episodes
// @Description  List all episodes ordered by publication date descending.
// @Description  When `search` is given, keep only episodes whose title,
// @Description  description or podcast title contains it (case-insensitive
// @Description  substring match).
// @Tags         episodes
// @Produce      json
// @Param        search query string false "Free-text filter"
// @Success      200 {array} episodes.Projected "Matching episodes"
// @Failure      500 {object} types.ErrorResponse "Storage failure"
// @Router       /api/episodes [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		results, err := deps.EpisodeService.List(c.Request.Context(), episodes.ListFilter{
			Search: c.Query("search"),
		})
		if err != nil {
			types.RespondError(c, err, "Failed to list episodes")
			return
		}

		c.JSON(http.StatusOK, results)
	}
}
