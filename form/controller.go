package form

import (
	"context"
	"log"
	"strings"

	"topsisform/models"
	"topsisform/tools"
)

// Field names one input slot on the surface.
type Field int

const (
	FieldFile Field = iota
	FieldWeights
	FieldImpacts
	FieldEmail
)

// Surface is the UI the controller drives: a rendered page, a
// terminal, or a test fake. Methods only reflect state; they must not
// call back into the controller.
type Surface interface {
	ShowStatus(text string)
	ClearStatus()
	// FieldError writes a verdict into a field slot; empty clears it.
	FieldError(f Field, msg string)
	SetSubmitting(active bool)
	// ShowFile updates the filename display and the has-file flag.
	ShowFile(name string, chosen bool)
	// Reset returns every field and the file display to the initial
	// empty state.
	Reset()
}

// Submitter performs the one outbound request of a submission attempt.
type Submitter interface {
	Submit(ctx context.Context, sub models.Submission) models.SubmitResult
}

// Controller owns the submission lifecycle of a single form: Idle
// until a valid submit, Submitting for the duration of the request,
// then Idle again whatever the outcome. The disabled affordance during
// Submitting is the only guard against duplicate in-flight requests;
// a re-entrant caller can bypass it.
type Controller struct {
	state     models.SubmissionState
	surface   Surface
	submitter Submitter
}

func New(surface Surface, submitter Submitter) *Controller {
	return &Controller{state: models.StateIdle, surface: surface, submitter: submitter}
}

func (c *Controller) State() models.SubmissionState {
	return c.state
}

// Check runs all four validators plus the file-presence check and
// returns every verdict. The impacts slot carries the format error
// when present, otherwise the count mismatch.
func Check(sub models.Submission) models.FieldErrors {
	errs := models.FieldErrors{
		Weights: tools.CheckWeights(sub.Weights),
		Email:   tools.CheckEmail(sub.Email),
	}

	impacts := tools.CheckImpacts(sub.Impacts)
	if impacts == "" {
		impacts = tools.CheckCount(sub.Weights, sub.Impacts)
	}
	errs.Impacts = impacts

	if sub.File == nil || strings.TrimSpace(sub.FileName) == "" {
		errs.File = MsgFileRequired
	}
	return errs
}

// Submit is the submit-button contract: clear the old status, surface
// every validation verdict at once, and only when everything passes
// make the one outbound request. Fields are reset only on acceptance;
// on rejection or transport failure they stay put for correction.
func (c *Controller) Submit(ctx context.Context, sub models.Submission) models.SubmitResult {
	c.surface.ClearStatus()

	errs := Check(sub)
	c.surface.FieldError(FieldWeights, errs.Weights)
	c.surface.FieldError(FieldImpacts, errs.Impacts)
	c.surface.FieldError(FieldEmail, errs.Email)
	c.surface.FieldError(FieldFile, errs.File)

	if errs.Any() {
		c.surface.ShowStatus(MsgFixFields)
		return models.SubmitResult{Outcome: models.OutcomeInvalid}
	}

	c.state = models.StateSubmitting
	c.surface.SetSubmitting(true)
	c.surface.ShowStatus(MsgUploading)

	// The release must run even when the server says no.
	defer func() {
		c.state = models.StateIdle
		c.surface.SetSubmitting(false)
	}()

	res := c.submitter.Submit(ctx, sub)

	switch res.Outcome {
	case models.OutcomeAccepted:
		msg := res.Message
		if msg == "" {
			msg = MsgDefaultSuccess
		}
		c.surface.ShowStatus(msg)
		c.surface.Reset()
	case models.OutcomeRejected:
		msg := res.Message
		if msg == "" {
			msg = MsgDefaultFailure
		}
		c.surface.ShowStatus(msg)
	default:
		log.Printf("scoring service unreachable (status=%d)", res.StatusCode)
		c.surface.ShowStatus(MsgConnectionError)
	}

	return res
}

// FileChanged mirrors the file input into the filename display.
func (c *Controller) FileChanged(name string) {
	if strings.TrimSpace(name) == "" {
		c.surface.ShowFile(NoFileLabel, false)
		return
	}
	c.surface.ShowFile(name, true)
}

// Blur handlers re-validate a single field as soon as the user leaves
// it. Impacts additionally re-checks the count match once weights has
// a value.

func (c *Controller) WeightsBlurred(weights string) {
	c.surface.FieldError(FieldWeights, tools.CheckWeights(weights))
}

func (c *Controller) ImpactsBlurred(weights, impacts string) {
	msg := tools.CheckImpacts(impacts)
	if msg == "" && strings.TrimSpace(weights) != "" {
		msg = tools.CheckCount(weights, impacts)
	}
	c.surface.FieldError(FieldImpacts, msg)
}

func (c *Controller) EmailBlurred(email string) {
	c.surface.FieldError(FieldEmail, tools.CheckEmail(email))
}
