package auth

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session tokens identify an anonymous browsing session and its cart. They
// carry no user identity; login/signup are presentation shells only.

const sessionTTL = 30 * 24 * time.Hour

// POST /session
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "sess_" + generateRandomString(16)
		expiresAt := time.Now().Add(sessionTTL)

		token, err := issueSessionToken(sessionID, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func generateRandomString(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		return "rand_sess"
	}
	return hex.EncodeToString(bytes)
}

func issueSessionToken(sessionID string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
