package main

import (
	"oberoy/config"
	"oberoy/di"
	"oberoy/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
