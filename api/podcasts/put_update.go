package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// PutPodcast updates a podcast's title and, optionally, its cover
// @Summary      Update a podcast
// @Description  Update the title. When an `image` file or `image_url`
// @Description  field is present the cover changes too; otherwise the
// @Description  existing cover reference is left untouched.
// @Tags         podcasts
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Param        title formData string true "Podcast title"
// @Param        image formData file false "Replacement cover image"
// @Param        image_url formData string false "Replacement external cover URL"
// @Success      200 {object} podcasts.Summary "Updated podcast"
// @Failure      400 {object} types.ErrorResponse "Missing title or rejected image"
// @Failure      404 {object} types.ErrorResponse "Podcast not found"
// @Router       /api/podcasts/{id} [put]
func PutPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		title := c.PostForm("title")

		imageRef, err := resolveImageRef(c, deps)
		if err != nil {
			types.RespondError(c, err, "Failed to store cover image")
			return
		}

		podcast, err := deps.PodcastService.Update(c.Request.Context(), id, title, imageRef)
		if err != nil {
			types.RespondError(c, err, "Failed to update podcast")
			return
		}

		c.JSON(http.StatusOK, podcast)
	}
}
