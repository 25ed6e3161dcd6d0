package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/spa-booking/internal/config"
	"github.com/BruksfildServices01/spa-booking/internal/identity"
)

const ContextIdentity = "identity"

// GuestTokenHeader carrega o token de visitante gerado no cliente.
const GuestTokenHeader = "X-Guest-Token"

func parseToken(cfg *config.Config, tokenString string) (identity.Identity, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return identity.Identity{}, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity.Identity{}, false
	}

	userID, ok := claims["sub"].(float64)
	if !ok {
		return identity.Identity{}, false
	}

	userUUID, _ := claims["uuid"].(string)
	mobile, _ := claims["mobile"].(string)
	email, _ := claims["email"].(string)

	return identity.Identity{
		Authenticated: true,
		UserID:        uint(userID),
		UserUUID:      userUUID,
		Mobile:        mobile,
		Email:         email,
	}, true
}

// Session resolve a identidade da requisição sem exigir login:
// JWT válido → usuário; senão token de guest do header.
func Session(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				if id, ok := parseToken(cfg, parts[1]); ok {
					c.Set(ContextIdentity, id)
					c.Next()
					return
				}
			}
		}

		guestID := c.GetHeader(GuestTokenHeader)
		if guestID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing_identity"})
			return
		}

		c.Set(ContextIdentity, identity.Guest(guestID))
		c.Next()
	}
}

// RequireAuth exige sessão de usuário autenticado.
func RequireAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		id, ok := parseToken(cfg, parts[1])
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set(ContextIdentity, id)
		c.Next()
	}
}

// IdentityFrom recupera a identidade resolvida pelos middlewares.
func IdentityFrom(c *gin.Context) identity.Identity {
	if v, ok := c.Get(ContextIdentity); ok {
		if id, ok := v.(identity.Identity); ok {
			return id
		}
	}
	return identity.Identity{}
}
