package handler

import (
	"github.com/gin-gonic/gin"

	"main/services"
	"main/usecase"
	"main/utils"
)

// Setup2FAHandler generates a fresh TOTP secret. Nothing is persisted until
// the user confirms a working code via Enable2FAHandler.
func Setup2FAHandler(c *gin.Context, userService *usecase.UserService) {
	user, err := userService.GetProfile(c, c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor is already enabled")
		return
	}

	key, err := services.GenerateTwoFactorSecret(user.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate two-factor secret")
		return
	}

	utils.Success(c, gin.H{
		"secret":      key.Secret(),
		"otpauth_url": key.URL(),
	})
}

func Enable2FAHandler(c *gin.Context, userService *usecase.UserService) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	user, err := userService.GetProfile(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor is already enabled")
		return
	}

	if !services.ValidateTwoFactorCode(req.Code, req.Secret) {
		utils.BadRequest(c, "Invalid two-factor code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}

	err = userService.UsersRepo.SetTwoFactor(c, userID, req.Secret, true,
		utils.HashRecoveryCodes(recoveryCodes))
	if err != nil {
		utils.InternalError(c, "Failed to enable two-factor")
		return
	}

	utils.Success(c, gin.H{
		"message":        "Two-factor enabled successfully",
		"recovery_codes": recoveryCodes,
		"warning":        "Save these recovery codes securely. They will not be shown again.",
	})
}

func Disable2FAHandler(c *gin.Context, userService *usecase.UserService) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	userID := c.GetString("user_id")
	user, err := userService.GetProfile(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "Two-factor is not enabled")
		return
	}

	if !services.ValidateTwoFactorCode(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid two-factor code")
		return
	}

	if err := userService.UsersRepo.SetTwoFactor(c, userID, "", false, []string{}); err != nil {
		utils.InternalError(c, "Failed to disable two-factor")
		return
	}

	utils.Success(c, gin.H{"message": "Two-factor disabled successfully"})
}
