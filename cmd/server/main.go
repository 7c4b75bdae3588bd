package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/kimdaehee-sian/msa-back-User-Service/internal/config"
	"github.com/kimdaehee-sian/msa-back-User-Service/internal/database"
	"github.com/kimdaehee-sian/msa-back-User-Service/internal/middleware"
	"github.com/kimdaehee-sian/msa-back-User-Service/internal/user"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadConfigOrPanic()

	db, err := database.Connect(cfg.DBConfig.DSN())
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}

	repo := user.NewRepository(db)
	service := user.NewService(repo)
	handler := user.NewHandler(service)

	r := gin.Default()
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(r)

	if err := r.Run(fmt.Sprintf(":%d", cfg.AppConfig.Port)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
