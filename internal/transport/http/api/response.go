package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hrdesk/internal/domain/employee"
)

// SaveResponse answers POST /employee/add.
type SaveResponse struct {
	OK      bool   `json:"ok"`
	EmpCode string `json:"emp_code,omitempty"`
	Created bool   `json:"created,omitempty"`
	Updated bool   `json:"updated,omitempty"`
	Error   string `json:"error,omitempty"`
}

// SearchResponse answers GET /employee/search.
type SearchResponse struct {
	Found bool               `json:"found"`
	Emp   *employee.Employee `json:"emp,omitempty"`
}

// Result is the bare {ok, error} answer of delete and payroll save.
type Result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type StatusResponse struct {
	OK      bool   `json:"ok"`
	Version string `json:"version"`
}

// DecodeJSON reads a JSON body regardless of status code; the backend
// reports application failures as JSON on 4xx/5xx too.
func DecodeJSON(resp *http.Response, out any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response (status %d): %w", contentType(resp), resp.StatusCode, err)
	}
	return nil
}

func contentType(resp *http.Response) string {
	ct := resp.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	if ct == "" {
		return "untyped"
	}
	return ct
}

// ErrorOrUnknown is the message shown for a failed call.
func ErrorOrUnknown(message string) string {
	if strings.TrimSpace(message) == "" {
		return "unknown"
	}
	return message
}
