package handler

import (
	"github.com/gin-gonic/gin"

	"main/dto"
	"main/usecase"
	"main/utils"
)

func GetUserProfileHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.GetProfile(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.Success(c, dto.ToUserProfileResponse(user))
}
