package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

func LogoutHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	var req struct {
		Refresh string `json:"refresh"`
	}
	// Body is optional; without it only the access token is revoked
	c.ShouldBindJSON(&req)

	accessToken := c.GetString("access_token")
	if err := services.BlacklistTokens(accessToken, req.Refresh); err != nil {
		log.Printf("Failed to blacklist tokens: %v", err)
	}

	if session, exists := c.Get("session"); exists {
		s := session.(*model.Session)
		s.IsActive = false
		if err := sessionRepo.UpdateSession(c, s); err != nil {
			log.Printf("Failed to end session %s: %v", s.SessionID, err)
		}
		if services.GlobalSessionCache != nil {
			services.GlobalSessionCache.InvalidateSession(s.SessionID)
		}
	}
	c.SetCookie("session_id", "", -1, "/", "", true, true)

	utils.Success(c, gin.H{"message": "Logged out successfully"})
}
