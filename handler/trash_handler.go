package handler

import (
	"github.com/gin-gonic/gin"

	"main/usecase"
	"main/utils"
)

// TrashStatsHandler reports store-wide trash counts.
func TrashStatsHandler(c *gin.Context, retention *usecase.RetentionService) {
	stats, err := retention.Stats(c)
	if err != nil {
		utils.InternalError(c, "Failed to compute trash stats")
		return
	}

	utils.Success(c, stats)
}

// TrashCleanupHandler is the manual trigger for the retention purge.
func TrashCleanupHandler(c *gin.Context, retention *usecase.RetentionService) {
	result, err := retention.RunCleanup(c)
	if err != nil {
		utils.InternalError(c, "Failed to run trash cleanup")
		return
	}

	utils.Success(c, result)
}
