package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Strum355/log"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/Aryanboii/Muzic/config"
	"github.com/Aryanboii/Muzic/db_client"
	"github.com/Aryanboii/Muzic/handlers"
	"github.com/Aryanboii/Muzic/queue"
	"github.com/Aryanboii/Muzic/redis_client"
	"github.com/Aryanboii/Muzic/yt"
)

var production *bool

func main() {
	// Sets Flag to Debug Mode
	production = flag.Bool("p", false, "enables production with json logging")
	flag.Parse()
	if *production {
		log.InitJSONLogger(&log.Config{Output: os.Stdout})
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.InitSimpleLogger(&log.Config{Output: os.Stdout})
	}

	// Sets up Configurations for Viper
	config.InitConfig()

	if err := db_client.Init(); err != nil {
		log.WithError(err).Error("Database init failed")
		return
	}

	redis_client.Init()

	manager := yt.NewManager(redis_client.RDB)
	previewer := yt.NewPreviewer(manager)

	// Queue state is loaded once at startup and saved after every mutation.
	store := queue.NewStore(queue.NewRedisKV(redis_client.RDB))
	q := store.Load()

	r := gin.Default()
	handlers.RegisterRoutes(r, &handlers.Env{
		DB:        db_client.DB,
		Manager:   manager,
		Queue:     q,
		Store:     store,
		Previewer: previewer,
	})

	srv := &http.Server{
		Addr:    viper.GetString("server.addr"),
		Handler: r,
	}

	go func() {
		log.WithFields(log.Fields{"addr": srv.Addr}).Info("Server is initialising")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc
	gracefulShutdown(srv, store, q)
}

// gracefulShutdown drains the server and persists the queue state.
func gracefulShutdown(srv *http.Server, store *queue.Store, q *queue.Queue) {
	log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}

	store.Save(q)

	if db_client.DB != nil {
		if sqlDB, err := db_client.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if redis_client.RDB != nil {
		redis_client.RDB.Close()
	}

	log.Info("Cleanly exiting")
}
