package studyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// ChunkSummary is the backend's summary of one slice of the document.
type ChunkSummary struct {
	ChunkID      int    `json:"chunk_id"`
	OriginalText string `json:"original_text"`
	Summary      string `json:"summary"`
	Length       int    `json:"length"`
	Success      bool   `json:"success"`
}

// Summary is the /summarize response.
type Summary struct {
	Filename        string         `json:"filename"`
	TotalChunks     int            `json:"total_chunks"`
	TotalCharacters int            `json:"total_characters"`
	Summaries       []ChunkSummary `json:"summaries"`
	Success         bool           `json:"success"`
	ProcessingTime  float64        `json:"processing_time"`
	Error           string         `json:"error,omitempty"`
}

// FailedChunks counts chunks the backend could not summarize.
func (s Summary) FailedChunks() int {
	n := 0
	for _, chunk := range s.Summaries {
		if !chunk.Success {
			n++
		}
	}
	return n
}

// Summarize uploads a PDF as multipart field "file" to /summarize.
func (c *Client) Summarize(ctx context.Context, filename string, data []byte) (Summary, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return Summary{}, err
	}
	if _, err := part.Write(data); err != nil {
		return Summary{}, err
	}
	if err := writer.Close(); err != nil {
		return Summary{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/summarize", &body)
	if err != nil {
		return Summary{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	raw, err := c.do(req)
	if err != nil {
		return Summary{}, err
	}
	var summary Summary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return Summary{}, &DecodeError{Endpoint: "/summarize", Err: err}
	}
	if !summary.Success {
		msg := summary.Error
		if msg == "" {
			msg = "backend reported failure"
		}
		return summary, fmt.Errorf("summarize %s: %s", summary.Filename, msg)
	}
	return summary, nil
}
