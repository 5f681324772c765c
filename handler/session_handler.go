package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/repository"
	"main/utils"
)

func GetActiveSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")
	currentID := c.GetString("session_id")

	sessions, err := sessionRepo.GetActiveSessions(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	views := make([]dto.SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		views = append(views, dto.ToSessionResponse(s, currentID))
	}

	utils.Success(c, views)
}

func LogoutAllSessionsHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID := c.GetString("user_id")

	ended, err := sessionRepo.EndAllSessions(c, userID)
	if err != nil {
		utils.InternalError(c, "Failed to end sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"sessions_ended": ended})
}
