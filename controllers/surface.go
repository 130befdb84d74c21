package controllers

import (
	"topsisform/form"
	"topsisform/models"
)

// FormView is everything the page template (or the JSON encoder) needs
// to draw the form after one interaction: retained values, per-field
// verdicts, the status line, and the affordance flags.
type FormView struct {
	Status     string
	Submitting bool
	Errors     models.FieldErrors
	FileLabel  string
	HasFile    bool
	Weights    string
	Impacts    string
	Email      string
}

func NewFormView() *FormView {
	return &FormView{FileLabel: form.NoFileLabel}
}

// webSurface adapts a FormView to the controller's Surface. Each
// request gets its own, so nothing is shared between submissions.
type webSurface struct {
	view *FormView
}

func (s *webSurface) ShowStatus(text string) { s.view.Status = text }

func (s *webSurface) ClearStatus() { s.view.Status = "" }

func (s *webSurface) FieldError(f form.Field, msg string) {
	switch f {
	case form.FieldFile:
		s.view.Errors.File = msg
	case form.FieldWeights:
		s.view.Errors.Weights = msg
	case form.FieldImpacts:
		s.view.Errors.Impacts = msg
	case form.FieldEmail:
		s.view.Errors.Email = msg
	}
}

func (s *webSurface) SetSubmitting(active bool) { s.view.Submitting = active }

func (s *webSurface) ShowFile(name string, chosen bool) {
	s.view.FileLabel = name
	s.view.HasFile = chosen
}

func (s *webSurface) Reset() {
	s.view.Weights = ""
	s.view.Impacts = ""
	s.view.Email = ""
	s.view.FileLabel = form.NoFileLabel
	s.view.HasFile = false
	s.view.Errors = models.FieldErrors{}
}
