package controllers

import (
	"net/http"

	"topsisform/form"
	"topsisform/models"
	"topsisform/scoring"

	"github.com/gin-gonic/gin"
)

// GET /
func FormPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", NewFormView())
}

// POST /
// Server-side rendition of the submit flow: parse the multipart form,
// drive the controller, re-render the page with whatever the surface
// collected. Entered values are retained except after acceptance,
// where the controller resets them.
func SubmitForm(c *gin.Context) {
	client := scoring.ClientInstance(c)
	if client == nil {
		RespondError(c, "scoring client not configured", http.StatusInternalServerError)
		return
	}

	view := NewFormView()
	view.Weights = c.PostForm("weights")
	view.Impacts = c.PostForm("impacts")
	view.Email = c.PostForm("email")

	sub := models.Submission{
		Weights: view.Weights,
		Impacts: view.Impacts,
		Email:   view.Email,
	}

	ctrl := form.New(&webSurface{view: view}, client)

	if header, err := c.FormFile("file"); err == nil {
		f, err := header.Open()
		if err != nil {
			RespondError(c, "could not read uploaded file", http.StatusBadRequest)
			return
		}
		defer f.Close()
		sub.File = f
		sub.FileName = header.Filename
		ctrl.FileChanged(header.Filename)
	}

	res := ctrl.Submit(c.Request.Context(), sub)
	c.HTML(pageStatus(res), "index.tmpl", view)
}

func pageStatus(res models.SubmitResult) int {
	switch res.Outcome {
	case models.OutcomeInvalid:
		return http.StatusBadRequest
	case models.OutcomeAccepted:
		return http.StatusOK
	case models.OutcomeRejected:
		if res.StatusCode >= 400 {
			return res.StatusCode
		}
		return http.StatusBadGateway
	default:
		return http.StatusBadGateway
	}
}
