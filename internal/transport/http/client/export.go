package client

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"hrdesk/internal/domain/employee"
)

type Export string

const (
	ExportEmployees Export = "employees"
	ExportPayrolls  Export = "payrolls"
)

func (e Export) Valid() bool {
	return e == ExportEmployees || e == ExportPayrolls
}

// DownloadExport streams the CSV export to w and returns the bytes written.
func (c *Client) DownloadExport(ctx context.Context, export Export, w io.Writer) (int64, error) {
	resp, cancel, err := c.openExport(ctx, export)
	if err != nil {
		return 0, err
	}
	defer cancel()
	defer resp.Body.Close()

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("%s: read %s export: %w", EndpointExport, export, err)
	}
	return n, nil
}

// ListEmployees reads the employee export as table rows.
func (c *Client) ListEmployees(ctx context.Context) ([]employee.Summary, error) {
	resp, cancel, err := c.openExport(ctx, ExportEmployees)
	if err != nil {
		return nil, err
	}
	defer cancel()
	defer resp.Body.Close()

	rows, err := ParseEmployeeCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", EndpointExport, err)
	}
	return rows, nil
}

func (c *Client) openExport(ctx context.Context, export Export) (*http.Response, context.CancelFunc, error) {
	if !export.Valid() {
		return nil, nil, fmt.Errorf("%s: unknown export %q", EndpointExport, export)
	}
	resp, cancel, err := c.do(ctx, EndpointExport, http.MethodGet, c.endpointURL("/export/"+string(export), nil), nil, "")
	if err != nil {
		return nil, nil, err
	}
	if redirectsToLogin(resp) {
		resp.Body.Close()
		cancel()
		return nil, nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		cancel()
		return nil, nil, &AppError{Op: EndpointExport, Status: resp.StatusCode, Message: strings.ToLower(http.StatusText(resp.StatusCode))}
	}
	return resp, cancel, nil
}

// ParseEmployeeCSV reads the employee export. Columns are matched by header
// name; unknown columns are ignored and emp_code is required.
func ParseEmployeeCSV(r io.Reader) ([]employee.Summary, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := map[string]int{}
	for i, name := range header {
		index[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	if _, ok := index["emp_code"]; !ok {
		return nil, fmt.Errorf("employee export has no emp_code column")
	}

	rows := []employee.Summary{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row: %w", err)
		}
		cell := func(name string) string {
			if i, ok := index[name]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}
		rows = append(rows, employee.Summary{
			ID:          cell("id"),
			Code:        cell("emp_code"),
			FirstName:   cell("first_name"),
			LastName:    cell("last_name"),
			Department:  cell("department"),
			Role:        cell("role"),
			BasicSalary: cell("basic_salary"),
			Contact:     cell("contact"),
			Email:       cell("email"),
		})
	}
}
