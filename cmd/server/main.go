package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SlpAus/carbon-footprint-backend/api"
	"github.com/SlpAus/carbon-footprint-backend/internal/platform/config"
	"github.com/SlpAus/carbon-footprint-backend/internal/platform/database"
	"github.com/SlpAus/carbon-footprint-backend/internal/platform/health"
	"github.com/SlpAus/carbon-footprint-backend/internal/platform/shutdown"
	"github.com/SlpAus/carbon-footprint-backend/internal/platform/startup"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(fmt.Sprintf("无法加载配置: %v", err))
	}

	database.InitDB(cfg.Database)
	database.InitRedis(cfg.Database.Redis)

	// 阻塞式获取初始Run ID，用于之后识别Redis重启
	health.InitializeRunID()

	// 执行应用首次启动初始化流程
	if err := startup.InitializeApplication(); err != nil {
		panic(fmt.Sprintf("应用初始化失败，无法启动: %v", err))
	}

	// 阻塞式执行一次启动后健康检查
	fmt.Println("正在执行启动后健康检查...")
	health.PerformCheck()

	// 异步启动后台的持续健康检查器
	go health.StartRedisHealthCheck()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.Cors.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api.SetupRoutes(r)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic("Failed to start server: " + err.Error())
		}
	}()

	fmt.Printf("服务器已准备就绪，开始监听 %s\n", cfg.Server.Address)
	shutdown.ListenForSignalsAndShutdown(server)
}
