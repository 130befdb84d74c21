package controllers

import (
	"net/http"

	"topsisform/form"
	"topsisform/models"
	"topsisform/scoring"

	"github.com/gin-gonic/gin"
)

// POST /api/topsis
// JSON twin of the page flow for programmatic clients. Same multipart
// body the scoring backend takes; same validation; the upstream
// verdict is relayed instead of rendered.
func SubmitTopsis(c *gin.Context) {
	client := scoring.ClientInstance(c)
	if client == nil {
		RespondError(c, "scoring client not configured", http.StatusInternalServerError)
		return
	}

	sub := models.Submission{
		Weights: c.PostForm("weights"),
		Impacts: c.PostForm("impacts"),
		Email:   c.PostForm("email"),
	}

	view := NewFormView()
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

	switch res.Outcome {
	case models.OutcomeAccepted:
		RespondSuccess(c, gin.H{"message": view.Status})
	case models.OutcomeRejected:
		code := res.StatusCode
		if code < 400 {
			code = http.StatusBadGateway
		}
		RespondError(c, view.Status, code)
	case models.OutcomeUnreachable:
		RespondError(c, view.Status, http.StatusBadGateway)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  view.Status,
			"fields": view.Errors,
		})
	}
}
