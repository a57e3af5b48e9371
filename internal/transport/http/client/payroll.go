package client

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/payroll"
	"hrdesk/internal/transport/http/api"
)

// SavePayroll records a payroll entry. The backend redirects to its index on
// success and answers JSON on failure.
func (c *Client) SavePayroll(ctx context.Context, record payroll.Record) error {
	form := url.Values{
		employee.FieldCode:     {strings.TrimSpace(record.EmployeeCode)},
		payroll.FieldMonth:     {record.Month},
		payroll.FieldYear:      {record.Year},
		payroll.FieldNetSalary: {record.NetSalary},
	}
	resp, cancel, err := c.do(ctx, EndpointPayrollCreate, http.MethodPost, c.endpointURL("/payroll/create", nil),
		strings.NewReader(form.Encode()), "application/x-www-form-urlencoded")
	if err != nil {
		return err
	}
	defer cancel()
	defer resp.Body.Close()

	if isRedirect(resp) && !redirectsToLogin(resp) {
		return nil
	}

	var out api.Result
	if err := decode(EndpointPayrollCreate, resp, &out); err != nil {
		return err
	}
	if !out.OK {
		return &AppError{Op: EndpointPayrollCreate, Status: resp.StatusCode, Message: out.Error}
	}
	return nil
}
