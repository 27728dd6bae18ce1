package config

import (
	"os"
	"strconv"
)

type ServerConfig struct {
	Port int
	// Origin frontend untuk CORS, kosong berarti semua origin
	CORSOrigins string
}

func LoadServerConfig() ServerConfig {
	port, err := strconv.Atoi(os.Getenv("APP_PORT"))
	if err != nil || port <= 0 {
		port = 8080
	}

	return ServerConfig{
		Port:        port,
		CORSOrigins: os.Getenv("CORS_ORIGINS"),
	}
}
