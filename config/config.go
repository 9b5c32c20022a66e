// file: config/config.go
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenAddr    string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
}

var C Config

// Load 读取 .env 文件与环境变量，缺省值保持本地开发可直接启动
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables and defaults")
	}

	C = Config{
		ListenAddr:    getEnv("PORTAL_LISTEN_ADDR", ":8080"),
		MySQLDSN:      getEnv("PORTAL_MYSQL_DSN", "root:123456@tcp(localhost:3306)/ctf_portal?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:     getEnv("PORTAL_REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("PORTAL_REDIS_PASSWORD", ""),
		JWTSecret:     getEnv("PORTAL_JWT_SECRET", "a-very-secure-secret-that-should-be-in-env"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
