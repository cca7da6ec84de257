package episodes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
	"github.com/castkeep/catalog-api/internal/services/episodes"
)

// Put applies a full-field episode update
// @Summary      Update an episode
// @Description  Replace every client-editable field. The owning podcast
// @Description  cannot change.
// @Tags         episodes
// @Accept       json
// @Produce      json
// @Param        id path int true "Episode ID"
// @Param        episode body types.CreateEpisodeRequest true "Episode fields"
// @Success      200 {object} episodes.Projected "Updated episode"
// @Failure      400 {object} types.ErrorResponse "Missing required fields"
// @Failure      404 {object} types.ErrorResponse "Episode not found"
// @Router       /api/episodes/{id} [put]
func Put(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		var req types.CreateEpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		episode, err := deps.EpisodeService.Update(c.Request.Context(), id, episodes.UpdateInput{
			Title:           req.Title,
			Description:     req.Description,
			PublicationDate: req.PublicationDate,
			AudioURL:        req.AudioURL,
		})
		if err != nil {
			types.RespondError(c, err, "Failed to update episode")
			return
		}

		c.JSON(http.StatusOK, episode)
	}
}
