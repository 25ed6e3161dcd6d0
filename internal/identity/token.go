package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/spa-booking/internal/config"
	"github.com/BruksfildServices01/spa-booking/internal/models"
)

// IssueToken emite o JWT de sessão do usuário.
func IssueToken(cfg *config.Config, user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":    float64(user.ID),
		"uuid":   user.UUID,
		"mobile": user.Mobile,
		"email":  user.Email,
		"exp":    time.Now().Add(30 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}
