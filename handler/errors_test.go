package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"main/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", model.NewValidationError("empty title"), http.StatusBadRequest},
		{"note not found", model.ErrNoteNotFound, http.StatusNotFound},
		{"user not found", model.ErrUserNotFound, http.StatusNotFound},
		{"email exists", model.ErrEmailExists, http.StatusConflict},
		{"bad credentials", model.ErrInvalidCredentials, http.StatusUnauthorized},
		{"two-factor required", model.ErrTwoFactorRequired, http.StatusUnauthorized},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondError(c, tt.err)

			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
