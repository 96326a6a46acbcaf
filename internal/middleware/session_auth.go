package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionValidator adalah interface lokal.
// auth.Service yang implement; middleware tidak perlu tahu detail Redis
// atau aturan expiry di dalamnya.
type SessionValidator interface {
	// Validate mengembalikan employee ID pemilik session kalau session
	// masih hidup, dan mencatat aktivitas terakhir.
	Validate(ctx context.Context, sessionID string, now time.Time) (string, error)
}

func SessionAuth(sessions SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token claims", nil)
			c.Abort()
			return
		}

		sessionID, ok := claims["session_id"].(string)
		if !ok || sessionID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "Session ID not found in token", nil)
			c.Abort()
			return
		}

		// Token valid saja belum cukup: session di server bisa sudah
		// di-logout atau lewat jendela 8 jam sejak login.
		employeeID, err := sessions.Validate(c.Request.Context(), sessionID, time.Now())
		if err != nil {
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session validation failed", nil)
			}
			c.Abort()
			return
		}

		c.Set("employee_id", employeeID)
		c.Set("session_id", sessionID)

		c.Next()
	}
}
