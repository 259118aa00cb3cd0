package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr  string
	GatewayURL  string // social platform DM gateway
	GeminiKey   string
	GeminiModel string
	AMQPURL     string // empty = in-process queue fallback
	SendDelay   time.Duration
}

func Load() *Config {
	return &Config{
		ListenAddr:  envOr("LISTEN_ADDR", ":8080"),
		GatewayURL:  envOr("GATEWAY_URL", "http://localhost:5000"),
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: envOr("GEMINI_MODEL", "gemini-2.0-flash"),
		AMQPURL:     os.Getenv("AMQP_URL"),
		SendDelay:   time.Duration(envIntOr("SEND_DELAY_MS", 2000)) * time.Millisecond,
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
