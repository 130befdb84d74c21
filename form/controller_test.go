package form

import (
	"context"
	"strings"
	"testing"

	"topsisform/models"

	"github.com/google/go-cmp/cmp"
)

type fakeSurface struct {
	status      string
	statusLog   []string
	cleared     int
	fieldErrors map[Field]string
	submitting  []bool
	fileLabel   string
	hasFile     bool
	resets      int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{fieldErrors: map[Field]string{}}
}

func (s *fakeSurface) ShowStatus(text string) {
	s.status = text
	s.statusLog = append(s.statusLog, text)
}

func (s *fakeSurface) ClearStatus() {
	s.status = ""
	s.cleared++
}

func (s *fakeSurface) FieldError(f Field, msg string) { s.fieldErrors[f] = msg }

func (s *fakeSurface) SetSubmitting(active bool) { s.submitting = append(s.submitting, active) }

func (s *fakeSurface) ShowFile(name string, chosen bool) {
	s.fileLabel = name
	s.hasFile = chosen
}

func (s *fakeSurface) Reset() { s.resets++ }

type fakeSubmitter struct {
	result models.SubmitResult
	calls  int
	got    models.Submission
}

func (f *fakeSubmitter) Submit(ctx context.Context, sub models.Submission) models.SubmitResult {
	f.calls++
	f.got = sub
	return f.result
}

func validSubmission() models.Submission {
	return models.Submission{
		FileName: "matrix.csv",
		File:     strings.NewReader("a,b,c\n1,2,3\n"),
		Weights:  "1,1,1",
		Impacts:  "+,-,+",
		Email:    "x@y.com",
	}
}

func TestSubmitAcceptedResetsAndShowsServerMessage(t *testing.T) {
	surface := newFakeSurface()
	submitter := &fakeSubmitter{result: models.SubmitResult{
		Outcome: models.OutcomeAccepted, StatusCode: 200, Message: "ok",
	}}
	ctrl := New(surface, submitter)

	res := ctrl.Submit(context.Background(), validSubmission())

	if res.Outcome != models.OutcomeAccepted {
		t.Fatalf("outcome = %v, want accepted", res.Outcome)
	}
	if submitter.calls != 1 {
		t.Fatalf("submitter called %d times, want 1", submitter.calls)
	}
	if surface.status != "ok" {
		t.Errorf("status = %q, want server message", surface.status)
	}
	if surface.resets != 1 {
		t.Errorf("resets = %d, want 1", surface.resets)
	}
	if diff := cmp.Diff([]bool{true, false}, surface.submitting); diff != "" {
		t.Errorf("submit affordance toggles (-want +got):\n%s", diff)
	}
	if ctrl.State() != models.StateIdle {
		t.Errorf("state = %v, want idle", ctrl.State())
	}
}

func TestSubmitAcceptedWithoutMessageUsesDefault(t *testing.T) {
	surface := newFakeSurface()
	ctrl := New(surface, &fakeSubmitter{result: models.SubmitResult{
		Outcome: models.OutcomeAccepted, StatusCode: 200,
	}})

	ctrl.Submit(context.Background(), validSubmission())

	if surface.status != MsgDefaultSuccess {
		t.Errorf("status = %q, want default success message", surface.status)
	}
}

func TestSubmitRejectedKeepsFieldsAndReleasesAffordance(t *testing.T) {
	surface := newFakeSurface()
	ctrl := New(surface, &fakeSubmitter{result: models.SubmitResult{
		Outcome: models.OutcomeRejected, StatusCode: 500, Message: "failed",
	}})

	ctrl.Submit(context.Background(), validSubmission())

	if surface.status != "failed" {
		t.Errorf("status = %q, want server message", surface.status)
	}
	if surface.resets != 0 {
		t.Errorf("fields were reset on rejection")
	}
	if diff := cmp.Diff([]bool{true, false}, surface.submitting); diff != "" {
		t.Errorf("affordance must be released even on rejection (-want +got):\n%s", diff)
	}
	if ctrl.State() != models.StateIdle {
		t.Errorf("state = %v, want idle", ctrl.State())
	}
}

func TestSubmitUnreachableShowsFixedMessage(t *testing.T) {
	surface := newFakeSurface()
	ctrl := New(surface, &fakeSubmitter{result: models.SubmitResult{
		Outcome: models.OutcomeUnreachable,
	}})

	ctrl.Submit(context.Background(), validSubmission())

	if surface.status != MsgConnectionError {
		t.Errorf("status = %q, want %q", surface.status, MsgConnectionError)
	}
	if surface.resets != 0 {
		t.Errorf("fields were reset on transport failure")
	}
	if diff := cmp.Diff([]bool{true, false}, surface.submitting); diff != "" {
		t.Errorf("affordance toggles (-want +got):\n%s", diff)
	}
}

func TestSubmitInvalidShowsEveryVerdictAndSkipsNetwork(t *testing.T) {
	surface := newFakeSurface()
	submitter := &fakeSubmitter{}
	ctrl := New(surface, submitter)

	res := ctrl.Submit(context.Background(), models.Submission{
		Weights: "1,,3",
		Impacts: "+,x",
		Email:   "a@b",
	})

	if res.Outcome != models.OutcomeInvalid {
		t.Fatalf("outcome = %v, want invalid", res.Outcome)
	}
	if submitter.calls != 0 {
		t.Fatalf("no network call may happen on invalid input")
	}
	for _, f := range []Field{FieldFile, FieldWeights, FieldImpacts, FieldEmail} {
		if surface.fieldErrors[f] == "" {
			t.Errorf("field %v has no verdict, want one for every failing field", f)
		}
	}
	if surface.status != MsgFixFields {
		t.Errorf("status = %q, want aggregate message", surface.status)
	}
	if len(surface.submitting) != 0 {
		t.Errorf("affordance must not toggle when staying idle")
	}
}

func TestSubmitMissingFileOnlyStillBlocks(t *testing.T) {
	surface := newFakeSurface()
	submitter := &fakeSubmitter{}
	ctrl := New(surface, submitter)

	sub := validSubmission()
	sub.File = nil
	sub.FileName = ""

	res := ctrl.Submit(context.Background(), sub)

	if res.Outcome != models.OutcomeInvalid {
		t.Fatalf("outcome = %v, want invalid", res.Outcome)
	}
	if submitter.calls != 0 {
		t.Fatal("no network call may happen without a file")
	}
	if surface.fieldErrors[FieldFile] != MsgFileRequired {
		t.Errorf("file verdict = %q, want %q", surface.fieldErrors[FieldFile], MsgFileRequired)
	}
	if surface.fieldErrors[FieldWeights] != "" {
		t.Errorf("weights verdict = %q, want clear", surface.fieldErrors[FieldWeights])
	}
}

func TestImpactsSlotPrefersFormatErrorOverCount(t *testing.T) {
	errs := Check(models.Submission{
		FileName: "m.csv",
		File:     strings.NewReader("x"),
		Weights:  "1,2",
		Impacts:  "+,x,+",
		Email:    "a@b.com",
	})
	if !strings.Contains(errs.Impacts, "+ or -") {
		t.Errorf("impacts slot = %q, want the format error to win", errs.Impacts)
	}

	errs = Check(models.Submission{
		FileName: "m.csv",
		File:     strings.NewReader("x"),
		Weights:  "1,2",
		Impacts:  "+,-,+",
		Email:    "a@b.com",
	})
	if !strings.Contains(errs.Impacts, "2") || !strings.Contains(errs.Impacts, "3") {
		t.Errorf("impacts slot = %q, want the count mismatch with both counts", errs.Impacts)
	}
}

func TestFileChanged(t *testing.T) {
	surface := newFakeSurface()
	ctrl := New(surface, &fakeSubmitter{})

	ctrl.FileChanged("data.csv")
	if surface.fileLabel != "data.csv" || !surface.hasFile {
		t.Errorf("label = %q hasFile = %v, want chosen file reflected", surface.fileLabel, surface.hasFile)
	}

	ctrl.FileChanged("")
	if surface.fileLabel != NoFileLabel || surface.hasFile {
		t.Errorf("label = %q hasFile = %v, want placeholder", surface.fileLabel, surface.hasFile)
	}
}

func TestBlurHandlers(t *testing.T) {
	surface := newFakeSurface()
	ctrl := New(surface, &fakeSubmitter{})

	ctrl.WeightsBlurred("1,a")
	if surface.fieldErrors[FieldWeights] == "" {
		t.Error("weights blur should surface the format error")
	}
	ctrl.WeightsBlurred("1,2")
	if surface.fieldErrors[FieldWeights] != "" {
		t.Error("weights blur should clear the verdict on valid input")
	}

	// Count re-check only kicks in once weights has a value.
	ctrl.ImpactsBlurred("", "+,-")
	if surface.fieldErrors[FieldImpacts] != "" {
		t.Error("impacts blur must not cross-check against empty weights")
	}
	ctrl.ImpactsBlurred("1,2,3", "+,-")
	if surface.fieldErrors[FieldImpacts] == "" {
		t.Error("impacts blur should surface the count mismatch")
	}

	ctrl.EmailBlurred("a@b")
	if surface.fieldErrors[FieldEmail] == "" {
		t.Error("email blur should surface the format error")
	}
	ctrl.EmailBlurred("a@b.com")
	if surface.fieldErrors[FieldEmail] != "" {
		t.Error("email blur should clear the verdict on valid input")
	}
}
