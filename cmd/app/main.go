package main

import (
	"backlog/config"
	"backlog/di"
	"backlog/shared/logger"
)

// @title Backlog API
// @version 1.0
// @description In-memory todo management service.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
