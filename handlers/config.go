package handlers

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/Aryanboii/Muzic/queue"
	"github.com/Aryanboii/Muzic/yt"
)

// Env carries the collaborators the handlers operate on.
type Env struct {
	DB        *gorm.DB
	Manager   yt.MetadataSource
	Queue     *queue.Queue
	Store     *queue.Store
	Previewer *yt.Previewer
}

// RegisterRoutes installs the session middleware and all API routes.
func RegisterRoutes(r *gin.Engine, env *Env) {
	store := cookie.NewStore([]byte(viper.GetString("session.secret")))
	r.Use(sessions.Sessions("muzic_session", store))

	r.POST("/streams", wrap(env.createStream))
	r.GET("/streams", wrap(env.listStreams))
	r.GET("/streams/my", wrap(env.myStreams))
	r.POST("/streams/upvote", wrap(env.upvoteStream))

	r.GET("/api/auth/callback", wrap(env.authCallback))
	r.POST("/api/auth/callback", wrap(env.authCallback))
	r.GET("/api/auth/session", wrap(env.authSession))
	r.POST("/api/auth/signout", wrap(env.authSignout))

	r.GET("/queue", wrap(env.getQueue))
	r.POST("/queue", wrap(env.addToQueue))
	r.POST("/queue/preview", wrap(env.previewQueue))
	r.POST("/queue/vote", wrap(env.voteQueue))
	r.POST("/queue/next", wrap(env.playNext))
	r.POST("/queue/play", wrap(env.playSpecific))
	r.POST("/queue/username", wrap(env.setUserName))
	r.DELETE("/queue/:id", wrap(env.removeFromQueue))
	r.DELETE("/queue", wrap(env.clearQueue))
}
