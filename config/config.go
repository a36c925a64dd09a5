package config

import (
	"strings"

	"github.com/Strum355/log"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// InitConfig loads an optional .env file and wires viper so that every
// dotted key can be overridden by its SCREAMING_SNAKE environment variable.
func InitConfig() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading config from the environment.")
	}

	initDefaults()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}
