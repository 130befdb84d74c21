package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"topsisform/models"
	"topsisform/tools"
)

// Client forwards submissions to the TOPSIS scoring backend as
// multipart form data and classifies what comes back. The backend can
// take a long while on big files, so the client carries no timeout;
// the caller waits for resolution or a transport failure.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{url: url, http: &http.Client{}}
}

// Submit issues one request. It never returns an error value; every
// outcome, including transport failure, is folded into the result so
// callers branch in exactly one place.
func (cl *Client) Submit(ctx context.Context, sub models.Submission) models.SubmitResult {
	body, contentType, err := encodeMultipart(sub)
	if err != nil {
		return models.SubmitResult{Outcome: models.OutcomeUnreachable}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.url, body)
	if err != nil {
		return models.SubmitResult{Outcome: models.OutcomeUnreachable}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := cl.http.Do(req)
	if err != nil {
		return models.SubmitResult{Outcome: models.OutcomeUnreachable}
	}
	defer resp.Body.Close()

	var parsed struct {
		Message string `json:"message"`
	}
	parseErr := json.NewDecoder(resp.Body).Decode(&parsed)
	msg := tools.SanitizeMessage(parsed.Message)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if parseErr != nil {
			// A success status with a body we cannot read is
			// indistinguishable from a broken connection.
			return models.SubmitResult{Outcome: models.OutcomeUnreachable, StatusCode: resp.StatusCode}
		}
		return models.SubmitResult{Outcome: models.OutcomeAccepted, StatusCode: resp.StatusCode, Message: msg}
	}

	return models.SubmitResult{Outcome: models.OutcomeRejected, StatusCode: resp.StatusCode, Message: msg}
}

// encodeMultipart lays out the body the backend's Flask handler reads:
// one file part named "file" keeping the original filename, plus
// weights, impacts and email as plain text parts.
func encodeMultipart(sub models.Submission) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", sub.FileName)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, sub.File); err != nil {
		return nil, "", err
	}

	fields := map[string]string{
		"weights": sub.Weights,
		"impacts": sub.Impacts,
		"email":   sub.Email,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
