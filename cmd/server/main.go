// cmd/server/main.go
package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"hrms_backend/internal/config"
	"hrms_backend/internal/routes"
	"hrms_backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := cfg.Logger()

	gin.SetMode(cfg.GinMode)

	db, err := storage.Open(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	r := routes.NewRouter(db, log, cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.WithField("addr", addr).Info("hrms backend listening")
	if err := r.Run(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
