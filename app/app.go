package app

import (
	"context"
	"log"
	"time"

	"library_management_api/config"
	"library_management_api/db"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Aliases so handlers read a little shorter.
type Ctx = gin.Context
type H = gin.H

// App aggregates the shared dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Config config.Config
}

func MustNew() *App {
	cfg := config.Load()

	dbConn := db.ConnectDB()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{Router: r, DB: dbConn, RDB: rdb, Config: cfg}
}

func (a *App) Close() { _ = a.RDB.Close() }
