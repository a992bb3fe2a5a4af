package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tallerapp/workshop-manager/internal/config"
	dbpkg "github.com/tallerapp/workshop-manager/internal/db"
	"github.com/tallerapp/workshop-manager/internal/logger"
	"github.com/tallerapp/workshop-manager/internal/middleware"
	"github.com/tallerapp/workshop-manager/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, zlog)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
