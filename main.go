package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"topsisform/config"
	"topsisform/router"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to JSON configuration file")
	flag.Parse()

	cfg := config.Get(*configPath)
	setupLog(cfg.LogPath)

	r := gin.New()
	router.Initialize(r, cfg)

	log.Printf("TOPSIS frontdesk listening on :%s", cfg.ApiPort)
	log.Fatal(r.Run(":" + cfg.ApiPort))
}

// setupLog mirrors log lines into the configured file when possible;
// a bad path is not fatal, stderr still gets everything.
func setupLog(path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Printf("log dir: %v", err)
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Printf("log file: %v", err)
		return
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
}
