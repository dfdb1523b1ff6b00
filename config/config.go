package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment. Services and repos never
// read env vars directly; the DB connection reads its own DB_* vars in db.ConnectDB.
type Config struct {
	RedisAddr string
	RedisPwd  string
	WebOrigin string
	CacheTTL  time.Duration
}

// LoadEnv loads a local .env file if present. Missing file is fine in
// production where real env vars are set.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}

func Load() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttl := 30 * time.Second
	if d, err := time.ParseDuration(get("CACHE_TTL_SECONDS", "30") + "s"); err == nil {
		ttl = d
	}

	return Config{
		RedisAddr: get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:  os.Getenv("REDIS_PASSWORD"),
		WebOrigin: get("WEB_ORIGIN", "http://localhost:3000"),
		CacheTTL:  ttl,
	}
}
