package db_client

import (
	"net/url"
	"strings"
	"time"

	"github.com/Strum355/log"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Aryanboii/Muzic/models"
)

var (
	DB *gorm.DB
)

// Init connects to the database named by db.url and migrates the schema.
// A postgres:// URL selects the postgres driver, anything else is treated
// as a sqlite file path.
func Init() error {
	dsn := viper.GetString("db.url")

	dial := sqlite.Open("muzic.db")
	if u, err := url.Parse(dsn); err == nil {
		switch u.Scheme {
		case "postgres":
			dial = postgres.Open(dsn)
		case "sqlite":
			dial = sqlite.Open(strings.TrimPrefix(dsn, "sqlite://"))
		default:
			if dsn != "" {
				dial = sqlite.Open(dsn)
			}
		}
	}

	var err error
	for range 10 {
		DB, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			sqlDB, _ := DB.DB()
			if pingErr := sqlDB.Ping(); pingErr == nil {
				break
			}
		}
		log.Info("Waiting for database to be ready...")
		time.Sleep(time.Second)
	}
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}

	if err := models.Migrate(DB); err != nil {
		return errors.Wrap(err, "unable to migrate schema")
	}

	return nil
}
