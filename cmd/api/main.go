package main

import (
	"log"

	"agro-catalog/internal/config"
	"agro-catalog/internal/database"
	"agro-catalog/internal/middleware"
	"agro-catalog/internal/routes"
	"agro-catalog/internal/scheduler"
	"agro-catalog/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()

	client := database.Connect(cfg.MongoURI)
	defer database.Disconnect(client)
	db := client.Database(cfg.MongoDB)

	media, err := storage.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("❌ Cloudinary configuration error:", err)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))
	router.Use(secure.New(secure.Config{
		ContentTypeNosniff: true,
		FrameDeny:          true,
		BrowserXssFilter:   true,
	}))

	routes.RegisterRoutes(router, db, media)

	sched := scheduler.New()
	if err := sched.AddHeartbeat(cfg.HeartbeatSpec, client); err != nil {
		log.Println("⚠️ Could not register heartbeat job:", err)
	}
	sched.Start()
	defer sched.Stop()

	log.Println("🚀 Server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Server error:", err)
	}
}
