package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// resolveImageRef extracts the cover reference from a multipart
// request. An uploaded `image` file takes precedence over the
// `image_url` form field; both absent means no cover change.
func resolveImageRef(c *gin.Context, deps *types.Dependencies) (*string, error) {
	if file, err := c.FormFile("image"); err == nil && file != nil {
		stored, err := deps.Uploads.Save("image", file)
		if err != nil {
			return nil, err
		}
		return &stored, nil
	}

	if imageURL := c.PostForm("image_url"); imageURL != "" {
		return &imageURL, nil
	}

	return nil, nil
}

// PostPodcast creates a podcast from a multipart form
// @Summary      Create a podcast
// @Description  Create a podcast with a title and an optional cover image.
// @Description  The cover is either an uploaded file (field `image`) or an
// @Description  external URL (field `image_url`); the file takes precedence.
// @Tags         podcasts
// @Accept       multipart/form-data
// @Produce      json
// @Param        title formData string true "Podcast title"
// @Param        image formData file false "Cover image (jpeg, jpg, png, gif, webp; max 5 MiB)"
// @Param        image_url formData string false "External cover image URL"
// @Success      201 {object} podcasts.Summary "Created podcast"
// @Failure      400 {object} types.ErrorResponse "Missing title or rejected image"
// @Failure      500 {object} types.ErrorResponse "Storage failure"
// @Router       /api/podcasts [post]
func PostPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")

		imageRef, err := resolveImageRef(c, deps)
		if err != nil {
			types.RespondError(c, err, "Failed to store cover image")
			return
		}

		podcast, err := deps.PodcastService.Create(c.Request.Context(), title, imageRef)
		if err != nil {
			types.RespondError(c, err, "Failed to create podcast")
			return
		}

		c.JSON(http.StatusCreated, podcast)
	}
}
