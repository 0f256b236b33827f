package config

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DBUrl             string
	JWTSecret         string
	ServerPort        string
	Timezone          string
	AdminPasswordHash string
	BlockedSlotLabel  string
}

func Load() *Config {
	cfg := &Config{
		DBUrl:            getEnv("DATABASE_URL", "file:barbershop.db"),
		JWTSecret:        getEnv("JWT_SECRET", "changeme"),
		ServerPort:       getEnv("SERVER_PORT", "8000"),
		Timezone:         getEnv("SHOP_TIMEZONE", "America/Edmonton"),
		BlockedSlotLabel: getEnv("BLOCKED_SLOT_LABEL", "Unavailable"),
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(getEnv("ADMIN_PASSWORD", "123456")),
		bcrypt.DefaultCost,
	)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}
	cfg.AdminPasswordHash = string(hash)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
