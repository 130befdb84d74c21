package tools

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Deliberately permissive: one @, at least one dot after it, no spaces.
// Matches what the submission form always accepted; do not tighten.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validators return a human-readable message, empty string when the
// field passes. They are pure; callers decide where the message goes.

func CheckWeights(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Weights are required."
	}
	for _, tok := range strings.Split(text, ",") {
		if _, err := strconv.ParseFloat(strings.TrimSpace(tok), 64); err != nil {
			return "Weights must be comma-separated numbers (e.g. 1,1,2)."
		}
	}
	return ""
}

func CheckImpacts(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Impacts are required."
	}
	for _, tok := range strings.Split(text, ",") {
		if t := strings.TrimSpace(tok); t != "+" && t != "-" {
			return "Impacts must be comma-separated + or - signs (e.g. +,-,+)."
		}
	}
	return ""
}

func CheckCount(weights, impacts string) string {
	nw := len(strings.Split(weights, ","))
	ni := len(strings.Split(impacts, ","))
	if nw != ni {
		return fmt.Sprintf("Number of weights (%d) and impacts (%d) must be equal.", nw, ni)
	}
	return ""
}

func CheckEmail(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Email is required."
	}
	if !emailRe.MatchString(text) {
		return "Enter a valid email address."
	}
	return ""
}
