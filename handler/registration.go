package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/services"
	"main/usecase"
	"main/utils"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	user, err := userService.Register(c, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
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

	utils.Created(c, dto.AuthResponse{
		Token:   token,
		Refresh: refreshToken,
		User:    dto.ToUserProfileResponse(user),
	})
}
