package dto

import (
	"main/model"
	"time"
)

type SessionResponse struct {
	SessionID      string    `json:"session_id"`
	DisplayName    string    `json:"display_name"`
	DeviceInfo     string    `json:"device_info"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	Current        bool      `json:"current"`
}

func ToSessionResponse(s *model.Session, currentID string) SessionResponse {
	return SessionResponse{
		SessionID:      s.SessionID,
		DisplayName:    s.DisplayName,
		DeviceInfo:     s.DeviceInfo,
		IPAddress:      s.IPAddress,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.LastActivityAt,
		Current:        s.SessionID == currentID,
	}
}
