package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(userName string, externalID string, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["name"] = userName
	claims["externalID"] = externalID
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

// ExtractTokenUser reads the verified JWT placed on the context by the auth
// middleware. The boolean reports whether an authenticated session is active.
func ExtractTokenUser(c echo.Context) (name string, externalID string, authenticated bool) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok || !user.Valid {
		return "", "", false
	}

	claims := user.Claims.(jwt.MapClaims)
	name, _ = claims["name"].(string)
	externalID, _ = claims["externalID"].(string)
	return name, externalID, true
}
