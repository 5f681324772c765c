package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"main/dto"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"
)

func LoginHandler(c *gin.Context, userService *usecase.UserService, sessionRepo *repository.SessionRepo) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := userService.Login(c, req.Email, req.Password, req.TwoFactorCode)
	if err != nil {
		respondError(c, err)
		return
	}

	if _, err := middleware.CreateSession(c, user.UserID, sessionRepo); err != nil {
		// A session is a convenience, not a login requirement
		log.Printf("Failed to create session for %s: %v", user.UserID, err)
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.Success(c, dto.AuthResponse{
		Token:   token,
		Refresh: refreshToken,
		User:    dto.ToUserProfileResponse(user),
	})
}
