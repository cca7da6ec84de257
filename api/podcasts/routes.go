package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/castkeep/catalog-api/api/types"
)

// RegisterRoutes registers podcast routes, including the nested
// episode creation/listing routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", PostPodcast(deps))
	router.GET("", GetPodcasts(deps))
	router.GET("/:id", GetPodcast(deps))
	router.PUT("/:id", PutPodcast(deps))
	router.DELETE("/:id", DeletePodcast(deps))

	// Episodes nested under their podcast
	router.POST("/:id/episodes", PostEpisode(deps))
	router.GET("/:id/episodes", GetEpisodes(deps))
}
