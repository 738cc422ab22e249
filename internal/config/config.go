package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	BotDifficulty   string
	BotDelay        time.Duration
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	Autoplay        bool
	NoColor         bool
}

func LoadConfig() *Config {
	botDifficulty := GetEnv("BOT_DIFFICULTY", "heuristic")
	botDelayMs := GetEnvAsInt("BOT_DELAY_MS", 400)
	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 60)
	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 10)

	return &Config{
		BotDifficulty:   botDifficulty,
		BotDelay:        time.Duration(botDelayMs) * time.Millisecond,
		SessionTTL:      time.Duration(sessionTTLMin) * time.Minute,
		CleanupInterval: time.Duration(cleanupIntervalMin) * time.Minute,
		Autoplay:        GetEnvAsBool("AUTOPLAY", false),
		NoColor:         GetEnvAsBool("NO_COLOR", false),
	}
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
		log.Printf("Invalid boolean value for %s: %s, using default: %v", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
