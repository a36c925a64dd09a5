package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/Aryanboii/Muzic/models"
)

const sessionEmailKey = "email"

var errUnauthenticated = errors.New("no session or unknown user")

// currentUser resolves the caller's identity: session email looked up
// against the local user table. Mutating operations call this before
// touching anything.
func (env *Env) currentUser(c *gin.Context) (*models.User, error) {
	session := sessions.Default(c)
	email, _ := session.Get(sessionEmailKey).(string)
	if email == "" {
		return nil, errUnauthenticated
	}

	user, err := models.UserByEmail(env.DB, email)
	if err != nil {
		return nil, errors.Wrap(errUnauthenticated, err.Error())
	}
	return user, nil
}
