package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/spa-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/spa-booking/internal/db"
	"github.com/BruksfildServices01/spa-booking/internal/kv"
	"github.com/BruksfildServices01/spa-booking/internal/logger"
	"github.com/BruksfildServices01/spa-booking/internal/routes"
)

func main() {

	cfg := config.Load()

	l := logger.Init(cfg.Env)
	defer l.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := kv.NewRedis(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	zap.L().Info("Server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
