package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"main/utils"
)

const TokenIssuer = "notekeep"

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
)

// GenerateToken issues a short-lived access token for userID.
func GenerateToken(userID string) (string, error) {
	return generateToken(userID, "access",
		time.Duration(utils.JWTExpirationTime)*time.Second)
}

// GenerateRefreshToken issues a long-lived refresh token for userID.
func GenerateRefreshToken(userID string) (string, error) {
	return generateToken(userID, "refresh",
		time.Duration(utils.RefreshTokenExpirationTime)*time.Second)
}

func generateToken(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"type":    tokenType,
		"iss":     TokenIssuer,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(utils.JWTSecretKey))
}

// ValidateToken parses tokenString, checks signature, issuer and expiry, and
// returns the user ID and token type.
func ValidateToken(tokenString string) (userID, tokenType string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrTokenExpired
		}
		return "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidToken
	}

	if iss, _ := claims["iss"].(string); iss != TokenIssuer {
		return "", "", ErrInvalidToken
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", ErrInvalidToken
	}

	tokenType, _ = claims["type"].(string)
	return userID, tokenType, nil
}
