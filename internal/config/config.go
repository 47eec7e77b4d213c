package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port                string
	AllowedOrigins      []string
	FrontendURL         string
	SearchDepth         int
	MaxSearchDepth      int
	SearchStrategy      string
	SearchExpansion     string
	FlipLeafPerspective bool
	SearchTimeout       time.Duration
	BotDifficulty       string
	RedisURL            string
	RedisPassword       string
	MoveCacheTTL        time.Duration
	LogSearch           bool
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	// Search
	maxDepth := GetEnvAsInt("MAX_SEARCH_DEPTH", 6)
	depth := GetEnvAsInt("SEARCH_DEPTH", 4)
	if depth > maxDepth {
		log.Printf("[CONFIG] SEARCH_DEPTH %d exceeds MAX_SEARCH_DEPTH %d, clamping", depth, maxDepth)
		depth = maxDepth
	}

	AppConfig = &Config{
		Port:                port,
		AllowedOrigins:      allowedOrigins,
		FrontendURL:         frontendURL,
		SearchDepth:         depth,
		MaxSearchDepth:      maxDepth,
		SearchStrategy:      GetEnv("SEARCH_STRATEGY", "alphabeta"),
		SearchExpansion:     GetEnv("SEARCH_EXPANSION", "eager"),
		FlipLeafPerspective: GetEnvAsBool("FLIP_LEAF_PERSPECTIVE", false),
		SearchTimeout:       time.Duration(GetEnvAsInt("SEARCH_TIMEOUT_MS", 0)) * time.Millisecond,
		BotDifficulty:       GetEnv("BOT_DIFFICULTY", "medium"),
		RedisURL:            GetEnv("REDIS_URL", ""),
		RedisPassword:       GetEnv("REDIS_PASSWORD", ""),
		MoveCacheTTL:        time.Duration(GetEnvAsInt("MOVE_CACHE_TTL_MINUTES", 1440)) * time.Minute,
		LogSearch:           GetEnvAsBool("LOG_SEARCH", false),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
