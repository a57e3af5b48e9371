package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/transport/http/api"
)

// SaveEmployee creates or updates the employee keyed by form.Code. All text
// fields are sent as multipart form data, the photo as a file part.
func (c *Client) SaveEmployee(ctx context.Context, form employee.Form) (api.SaveResponse, error) {
	body, contentType, err := encodeEmployeeForm(form)
	if err != nil {
		return api.SaveResponse{}, fmt.Errorf("%s: %w", EndpointEmployeeAdd, err)
	}

	resp, cancel, err := c.do(ctx, EndpointEmployeeAdd, http.MethodPost, c.endpointURL("/employee/add", nil), body, contentType)
	if err != nil {
		return api.SaveResponse{}, err
	}
	defer cancel()
	defer resp.Body.Close()

	var out api.SaveResponse
	if err := decode(EndpointEmployeeAdd, resp, &out); err != nil {
		return api.SaveResponse{}, err
	}
	if !out.OK {
		return out, &AppError{Op: EndpointEmployeeAdd, Status: resp.StatusCode, Message: out.Error}
	}
	return out, nil
}

func encodeEmployeeForm(form employee.Form) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, field := range form.Fields() {
		if err := writer.WriteField(field.Name, field.Value); err != nil {
			return nil, "", err
		}
	}

	if form.PhotoPath != "" {
		photo, err := os.Open(form.PhotoPath)
		if err != nil {
			return nil, "", fmt.Errorf("open photo: %w", err)
		}
		defer photo.Close()

		part, err := writer.CreateFormFile(employee.FieldPhoto, filepath.Base(form.PhotoPath))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, photo); err != nil {
			return nil, "", fmt.Errorf("read photo: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return &buf, writer.FormDataContentType(), nil
}

// SearchEmployee looks an employee up by code. A blank code fails with
// employee.ErrEmptyCode before any request is made; an unknown code fails
// with employee.ErrNotFound.
func (c *Client) SearchEmployee(ctx context.Context, code string) (employee.Employee, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return employee.Employee{}, employee.ErrEmptyCode
	}

	target := c.endpointURL("/employee/search", url.Values{"code": {code}})
	resp, cancel, err := c.do(ctx, EndpointEmployeeSearch, http.MethodGet, target, nil, "")
	if err != nil {
		return employee.Employee{}, err
	}
	defer cancel()
	defer resp.Body.Close()

	var out api.SearchResponse
	if err := decode(EndpointEmployeeSearch, resp, &out); err != nil {
		return employee.Employee{}, err
	}
	if !out.Found || out.Emp == nil {
		return employee.Employee{}, employee.ErrNotFound
	}
	return *out.Emp, nil
}

// DeleteEmployee removes the employee with the given backend id together
// with its payrolls, attendance and photo.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%s: employee id required", EndpointEmployeeDelete)
	}

	target := c.endpointURL("/employee/"+url.PathEscape(id)+"/delete", nil)
	resp, cancel, err := c.do(ctx, EndpointEmployeeDelete, http.MethodPost, target, http.NoBody, "application/json")
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	var out api.Result
	if err := decode(EndpointEmployeeDelete, resp, &out); err != nil {
		return err
	}
	if !out.OK {
		return &AppError{Op: EndpointEmployeeDelete, Status: resp.StatusCode, Message: out.Error}
	}
	return nil
}
