package config

import (
	"os"

	"github.com/spf13/viper"
)

func initDefaults() {
	viper.SetDefault("server.addr", ":3000")
	viper.SetDefault("db.url", os.Getenv("db_url"))
	viper.SetDefault("redis.address", os.Getenv("redis_address"))
	viper.SetDefault("session.secret", os.Getenv("session_secret"))
	viper.SetDefault("auth.secret", os.Getenv("auth_secret"))
	viper.SetDefault("cache.youtube", 3600)
	viper.SetDefault("preview.debounce.ms", 500)
}
