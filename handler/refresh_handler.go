package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/services"
	"main/utils"
)

// RefreshTokenHandler exchanges a valid refresh token for a new token pair.
// The used refresh token is blacklisted so it cannot be replayed.
func RefreshTokenHandler(c *gin.Context) {
	var req struct {
		Refresh string `json:"refresh" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	if services.IsTokenBlacklisted(req.Refresh) {
		utils.Unauthorized(c, "Token has been invalidated")
		return
	}

	userID, tokenType, err := services.ValidateToken(req.Refresh)
	if err != nil || tokenType != "refresh" {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	token, err := services.GenerateToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	if err := services.BlacklistTokens(req.Refresh, ""); err != nil {
		log.Printf("Failed to blacklist used refresh token: %v", err)
	}

	utils.Success(c, gin.H{
		"token":   token,
		"refresh": refreshToken,
	})
}
