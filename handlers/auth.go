package handlers

import (
	"net/http"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/Aryanboii/Muzic/models"
)

type authCallbackRequest struct {
	Token string `form:"token" json:"token" binding:"required"`
}

// authCallback consumes the identity provider's signed token, creates the
// local user lazily and opens the session. The sign-in flow itself lives
// with the provider; only its result is handled here.
func (env *Env) authCallback(c *gin.Context) *apiError {
	var req authCallbackRequest
	if err := c.ShouldBind(&req); err != nil {
		return refusedError(err, "Unauthenticated")
	}

	email, err := emailFromToken(req.Token)
	if err != nil {
		return refusedError(err, "Unauthenticated")
	}

	user, err := models.GetOrCreateUser(env.DB, email, "Google")
	if err != nil {
		return refusedError(err, "Unauthenticated")
	}

	session := sessions.Default(c)
	session.Set(sessionEmailKey, user.Email)
	if err := session.Save(); err != nil {
		return refusedError(err, "Unauthenticated")
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed in"})
	return nil
}

// authSession reports the signed-in user, 403 otherwise.
func (env *Env) authSession(c *gin.Context) *apiError {
	user, err := env.currentUser(c)
	if err != nil {
		return refusedError(err, "Unauthenticated")
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
	return nil
}

func (env *Env) authSignout(c *gin.Context) *apiError {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		return refusedError(err, "Unauthenticated")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
	return nil
}

// emailFromToken verifies the provider-signed token against the shared
// secret and extracts the email claim.
func emailFromToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(viper.GetString("auth.secret")), nil
	})
	if err != nil {
		return "", errors.Wrap(err, "token verification failed")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token claims")
	}
	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("token has no email claim")
	}
	return email, nil
}
