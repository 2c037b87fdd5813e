package tokens

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/webfolio/portfolio-api/internal/config"
	"github.com/webfolio/portfolio-api/internal/models"
)

// GenerateAccessToken creates a signed JWT access token carrying the account's
// email and role claims
func GenerateAccessToken(cfg *config.Config, a *models.Account, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"email": a.Email,
		"role":  a.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(ttl).Unix(),
	}
	jt := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return jt.SignedString([]byte(cfg.JWT.Secret))
}
