package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"topsisform/config"
	"topsisform/form"
	"topsisform/models"
	"topsisform/scoring"
	"topsisform/tools"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Terminal rendition of the submission form: the same controller and
// validators as the web page, with survey prompts as the surface input
// side. Invalid answers re-prompt instead of failing the run.

func main() {
	filePath := flag.String("file", "", "path to the decision-matrix CSV (required)")
	weights := flag.String("weights", "", "comma-separated weights; prompted for when empty")
	impacts := flag.String("impacts", "", "comma-separated + / - impacts; prompted for when empty")
	email := flag.String("email", "", "address the result is sent to; prompted for when empty")
	url := flag.String("url", "", "scoring endpoint; defaults to SCORING_URL or local dev")
	flag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "usage: topsis-cli -file matrix.csv [-weights 1,1,2] [-impacts +,-,+] [-email you@example.com]")
		os.Exit(2)
	}

	endpoint := *url
	if endpoint == "" {
		endpoint = config.Get("").ScoringURL
	}

	f, err := os.Open(*filePath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sub := models.Submission{
		FileName: filepath.Base(*filePath),
		File:     f,
		Weights:  strings.TrimSpace(*weights),
		Impacts:  strings.TrimSpace(*impacts),
		Email:    strings.TrimSpace(*email),
	}

	if sub.Weights == "" {
		sub.Weights = ask("Weights (comma-separated, e.g. 1,1,2):", tools.CheckWeights)
	}
	if sub.Impacts == "" {
		sub.Impacts = ask("Impacts (comma-separated + or -, e.g. +,-,+):", func(s string) string {
			if msg := tools.CheckImpacts(s); msg != "" {
				return msg
			}
			return tools.CheckCount(sub.Weights, s)
		})
	}
	if sub.Email == "" {
		sub.Email = ask("Email for the result:", tools.CheckEmail)
	}

	ctrl := form.New(&termSurface{}, scoring.NewClient(endpoint))
	ctrl.FileChanged(sub.FileName)

	res := ctrl.Submit(context.Background(), sub)
	if res.Outcome != models.OutcomeAccepted {
		os.Exit(1)
	}
}

// ask prompts until the check passes. Ctrl-C aborts the whole run.
func ask(message string, check func(string) string) string {
	var out string
	prompt := &survey.Input{Message: message}
	validator := func(ans interface{}) error {
		s, _ := ans.(string)
		if msg := check(s); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
	if err := survey.AskOne(prompt, &out, survey.WithValidator(validator)); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			fmt.Fprintln(os.Stderr, "aborted")
			os.Exit(130)
		}
		log.Fatal(err)
	}
	return out
}

// termSurface prints what the web page would render.
type termSurface struct{}

func (termSurface) ShowStatus(text string) { fmt.Println(text) }

func (termSurface) ClearStatus() {}

func (termSurface) FieldError(f form.Field, msg string) {
	if msg == "" {
		return
	}
	names := map[form.Field]string{
		form.FieldFile:    "file",
		form.FieldWeights: "weights",
		form.FieldImpacts: "impacts",
		form.FieldEmail:   "email",
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", names[f], msg)
}

func (termSurface) SetSubmitting(active bool) {}

func (termSurface) ShowFile(name string, chosen bool) {
	if chosen {
		fmt.Printf("File: %s\n", name)
	}
}

func (termSurface) Reset() {}
