package app

import (
	"log/slog"
	"os"
	"strconv"
)

// Config carries everything the server binary reads from the environment.
type Config struct {
	Port     int
	HttpAddr string // empty disables the watch feed
	DbPath   string // empty disables match archiving
	Team     string
	Renju    bool
}

func LoadConfig() Config {
	return Config{
		Port:     GetEnvAsInt("PORT", DefaultPort),
		HttpAddr: GetEnv("HTTP_ADDR", ""),
		DbPath:   GetEnv("DB_PATH", ""),
		Team:     GetEnv("TEAM_NAME", "gomokud"),
		Renju:    GetEnvAsBool("RENJU", false),
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
		slog.Warn("invalid integer in environment, using default", "key", key, "value", valueStr, "default", defaultValue)
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
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", valueStr, "default", defaultValue)
		return defaultValue
	}
	return value
}
