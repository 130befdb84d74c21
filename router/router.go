package router

import (
	"log"

	"topsisform/config"
	"topsisform/controllers"
	"topsisform/middleware"
	"topsisform/scoring"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: the rendered form page,
// its JSON twin, and a liveness probe.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(scoring.SetClientToContext(scoring.NewClient(cfg.ScoringURL)))

	r.SetHTMLTemplate(controllers.PageTemplate())

	r.GET("/health", controllers.Health)

	// Browser flow
	r.GET("/", Logger(), controllers.FormPage)
	r.POST("/", Logger(), controllers.SubmitForm)

	// Programmatic flow (same contract the scoring backend exposes)
	api := r.Group("/api")
	api.POST("/topsis", Logger(), controllers.SubmitTopsis)

	log.Printf("Routes initialized (scoring backend: %s)", cfg.ScoringURL)
}
