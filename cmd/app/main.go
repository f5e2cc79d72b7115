package main

import (
	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/di"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
