package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
)

type Configuration struct {
	ApiPort string `json:"api_port" env:"PORT"`
	LogPath string `json:"log_path" env:"LOG_PATH"`

	// ScoringURL is the TOPSIS backend endpoint submissions are
	// forwarded to. Fixed per deployment; there is no runtime switch.
	ScoringURL string `json:"scoring_url" env:"SCORING_URL"`
}

// Get loads configuration from an optional JSON file, then lets
// environment variables override it. Missing values fall back to
// local-dev defaults.
func Get(path string) Configuration {
	var c Configuration

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := json.Unmarshal(b, &c); err != nil {
			log.Fatal(err)
		}
	}

	if err := env.Parse(&c); err != nil {
		log.Fatal(err)
	}

	if c.ApiPort == "" {
		c.ApiPort = "8080"
	}
	if c.LogPath == "" {
		c.LogPath = "logs/server.log"
	}
	if c.ScoringURL == "" {
		c.ScoringURL = "http://localhost:5000/topsis"
	}

	return c
}
