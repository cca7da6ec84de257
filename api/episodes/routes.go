package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// RegisterRoutes registers the global episode routes. Creation lives
// under /api/podcasts/:id/episodes since an episode always belongs to
// a podcast.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", GetAll(deps))
	router.GET("/:id", GetByID(deps))
	router.PUT("/:id", Put(deps))
	router.DELETE("/:id", Delete(deps))
}
