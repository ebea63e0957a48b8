package main

import (
	"github.com/reeltaste/core/internal/app"
	"github.com/reeltaste/core/internal/config"
)

// @title ReelTaste API
// @version 1.0
// @description Session-backed API for rating movies and shows, comparing taste with friends and picking what to watch next.
// @BasePath /api/v1
// @securityDefinitions.apikey SessionToken
// @in header
// @name X-session-token
func main() {
	app.Go(config.Load())
}
