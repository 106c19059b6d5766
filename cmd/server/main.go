package main

import (
	"flag"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"rota-reader/internal/config"
	"rota-reader/internal/handler"
	"rota-reader/internal/logger"
	"rota-reader/internal/middleware"
	"rota-reader/internal/service"
	"rota-reader/internal/store"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	uploads := store.NewUploads(cfg.UploadTTL())
	rosters := service.NewRosterService()
	exports := service.NewExportService(rosters, cfg.Calendar)

	uploadH := handler.NewUploadHandler(rosters, uploads, cfg.Upload)
	employeeH := handler.NewEmployeeHandler(rosters, uploads)
	downloadH := handler.NewDownloadHandler(exports, uploads)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLog())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	api := r.Group("/api")
	api.POST("/upload", uploadH.Upload)
	api.POST("/selectEmployee", employeeH.Select)
	api.POST("/downloadShifts", downloadH.Download)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}
