package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

const (
	sessionDuration   = 24 * time.Hour
	inactivityTimeout = 48 * time.Hour
)

// SessionMiddleware resolves the session cookie, refreshes its activity
// timestamp and stores the session in the request context. Requests without
// a valid cookie pass through; bearer auth is enforced separately.
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie("session_id")
		if err != nil {
			c.Next()
			return
		}

		session := lookupSession(c, sessionRepo, sessionID)
		if session == nil || !session.IsActive {
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > inactivityTimeout {
			session.IsActive = false
			sessionRepo.UpdateSession(c, session)
			c.SetCookie("session_id", "", -1, "/", "", true, true)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(c, session)
		if services.GlobalSessionCache != nil {
			services.GlobalSessionCache.SetSession(session)
		}

		c.Set("session", session)
		c.Set("session_id", session.SessionID)
		c.Next()
	}
}

func lookupSession(c *gin.Context, sessionRepo *repository.SessionRepo, sessionID string) *model.Session {
	if services.GlobalSessionCache != nil {
		if cached, err := services.GlobalSessionCache.GetSession(sessionID); err == nil && cached != nil {
			return cached
		}
	}

	session, err := sessionRepo.GetSession(c, sessionID)
	if err != nil {
		return nil
	}
	return session
}

// CreateSession records a new login session and sets the session cookie.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) (*model.Session, error) {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	now := time.Now()
	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     browser + " on " + os + " (" + device + ")",
		IPAddress:      c.ClientIP(),
		CreatedAt:      now,
		ExpiresAt:      now.Add(sessionDuration),
		LastActivityAt: now,
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(c, session); err != nil {
		return nil, err
	}

	if services.GlobalSessionCache != nil {
		services.GlobalSessionCache.SetSession(session)
	}

	c.SetCookie(
		"session_id",
		session.SessionID,
		int(sessionDuration.Seconds()),
		"/",
		"",
		true,
		true,
	)

	return session, nil
}
