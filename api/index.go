package handler

import (
	"net/http"
	"github.com/TomaszChromy/vehicle-rental-platform/config"
	"github.com/TomaszChromy/vehicle-rental-platform/di"
	"github.com/TomaszChromy/vehicle-rental-platform/shared/logger"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
