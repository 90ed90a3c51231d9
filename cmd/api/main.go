package main

import (
	"context"
	"net/http"
	"os"

	"github.com/rs/cors"

	"la-blog/api/router"
	"la-blog/auth"
	"la-blog/config"
	"la-blog/db"
	"la-blog/internal/logger"
)

// @title           Lovely Associates Blog API
// @version         1.0
// @description     Blog backend for the Lovely Associates real-estate site
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	// Mongo being down must not take the process with it; the static and
	// marketing surface stays up and blog routes answer 500s meanwhile.
	if err := db.Init(context.Background()); err != nil {
		logger.Log.Warnf("mongodb init failed, serving degraded: %v", err)
	}

	jwtMgr, err := auth.NewJWTManagerFromConfig(cfg.Auth)
	if err != nil {
		logger.Log.Errorf("auth config invalid: %v", err)
		os.Exit(1)
	}
	creds, err := auth.NewCredentialsFromConfig(cfg.Auth)
	if err != nil {
		logger.Log.Errorf("auth config invalid: %v", err)
		os.Exit(1)
	}

	r := router.New(jwtMgr, creds)

	handler := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
	}).Handler(r)

	port := cfg.Server.Port
	if port == "" {
		port = "3001"
	}
	addr := ":" + port

	logger.Log.Infof("server listening on %s (env=%s)", addr, cfg.Environment)
	if err := http.ListenAndServe(addr, handler); err != nil && err != http.ErrServerClosed {
		logger.Log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}
