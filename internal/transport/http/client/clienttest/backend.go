// Package clienttest runs an in-memory HR backend for tests.
package clienttest

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"hrdesk/internal/domain/employee"
	"hrdesk/internal/domain/payroll"
)

const (
	Username      = "admin"
	Password      = "admin"
	sessionCookie = "session"
	sessionValue  = "hrdesk-test-session"
)

type Request struct {
	Method      string
	Path        string
	Query       string
	ContentType string
	RequestID   string
	BodyLen     int
}

type Backend struct {
	URL string

	mu           sync.Mutex
	requireLogin bool
	nextID       int64
	employees    map[string]employee.Employee
	photos       map[string][]byte
	payrolls     []payroll.Record
	requests     []Request
}

// New starts a backend that is closed when the test ends. With requireLogin
// every route except /login and /status needs the session cookie.
func New(t *testing.T, requireLogin bool) *Backend {
	t.Helper()
	b := &Backend{
		requireLogin: requireLogin,
		employees:    map[string]employee.Employee{},
		photos:       map[string][]byte{},
	}
	ts := httptest.NewServer(b.router())
	t.Cleanup(ts.Close)
	b.URL = ts.URL
	return b
}

func (b *Backend) router() http.Handler {
	r := chi.NewRouter()
	r.Use(b.record)
	r.Post("/login", b.handleLogin)
	r.Get("/status", b.handleStatus)
	r.Group(func(r chi.Router) {
		r.Use(b.loginRequired)
		r.Post("/employee/add", b.handleAdd)
		r.Get("/employee/search", b.handleSearch)
		r.Post("/employee/{empID}/delete", b.handleDelete)
		r.Post("/payroll/create", b.handleCreatePayroll)
		r.Get("/export/employees", b.handleExportEmployees)
		r.Get("/export/payrolls", b.handleExportPayrolls)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html>index</html>"))
		})
	})
	return r
}

// Seed adds an employee and returns it with its assigned id.
func (b *Backend) Seed(emp employee.Employee) employee.Employee {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	emp.ID = b.nextID
	b.employees[emp.Code] = emp
	return emp
}

func (b *Backend) Employee(code string) (employee.Employee, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	emp, ok := b.employees[code]
	return emp, ok
}

func (b *Backend) Photo(code string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.photos[code]
}

func (b *Backend) Payrolls() []payroll.Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]payroll.Record(nil), b.payrolls...)
}

func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request(nil), b.requests...)
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(strings.NewReader(string(body)))
		b.mu.Lock()
		b.requests = append(b.requests, Request{
			Method:      r.Method,
			Path:        r.URL.Path,
			Query:       r.URL.RawQuery,
			ContentType: r.Header.Get("Content-Type"),
			RequestID:   r.Header.Get("X-Request-ID"),
			BodyLen:     len(body),
		})
		b.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (b *Backend) loginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.requireLogin {
			cookie, err := r.Cookie(sessionCookie)
			if err != nil || cookie.Value != sessionValue {
				http.Redirect(w, r, "/login?next="+r.URL.Path, http.StatusFound)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.FormValue("username") == Username && r.FormValue("password") == Password {
		http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: sessionValue, Path: "/"})
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	w.Header().Set("Content-Type", "text/html")
	_, _ = w.Write([]byte("<html>Invalid credentials</html>"))
}

func (b *Backend) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "version": "hr-1.0"})
}

func (b *Backend) handleAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(4 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid form"})
		return
	}
	code := strings.TrimSpace(r.FormValue("emp_code"))
	if code == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "emp_code required"})
		return
	}

	var photo []byte
	if file, _, err := r.FormFile("photo"); err == nil {
		photo, _ = io.ReadAll(file)
		file.Close()
	}

	salary, _ := strconv.ParseFloat(r.FormValue("basic_salary"), 64)

	b.mu.Lock()
	defer b.mu.Unlock()
	emp, exists := b.employees[code]
	if !exists {
		b.nextID++
		emp = employee.Employee{ID: b.nextID, Code: code}
	}
	emp.FirstName = r.FormValue("first_name")
	emp.LastName = r.FormValue("last_name")
	emp.Contact = r.FormValue("contact")
	emp.Email = r.FormValue("email")
	emp.Address = r.FormValue("address")
	emp.BasicSalary = salary
	if photo != nil {
		b.photos[code] = photo
		emp.Photo = code + "_photo"
	}
	b.employees[code] = emp

	if exists {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "updated": true, "emp_code": code})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "created": true, "emp_code": code})
}

func (b *Backend) handleSearch(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.URL.Query().Get("code"))
	b.mu.Lock()
	emp, ok := b.employees[code]
	if !ok {
		if id, err := strconv.ParseInt(code, 10, 64); err == nil {
			emp, ok = b.byIDLocked(id)
		}
	}
	b.mu.Unlock()

	if code == "" || !ok {
		writeJSON(w, http.StatusOK, map[string]any{"found": false})
		return
	}
	// the real backend sends every column, nulls included
	writeJSON(w, http.StatusOK, map[string]any{"found": true, "emp": map[string]any{
		"id":            emp.ID,
		"emp_code":      emp.Code,
		"first_name":    nullable(emp.FirstName),
		"last_name":     nullable(emp.LastName),
		"department_id": emp.DepartmentID,
		"role_id":       emp.RoleID,
		"basic_salary":  emp.BasicSalary,
		"contact":       nullable(emp.Contact),
		"email":         nullable(emp.Email),
		"address":       nullable(emp.Address),
		"photo":         nullable(emp.Photo),
	}})
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func (b *Backend) byIDLocked(id int64) (employee.Employee, bool) {
	for _, emp := range b.employees {
		if emp.ID == id {
			return emp, true
		}
	}
	return employee.Employee{}, false
}

func (b *Backend) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "empID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	emp, ok := b.byIDLocked(id)
	if !ok {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("<html>404 Not Found</html>"))
		return
	}
	delete(b.employees, emp.Code)
	delete(b.photos, emp.Code)
	kept := b.payrolls[:0]
	for _, p := range b.payrolls {
		if p.EmployeeCode != emp.Code {
			kept = append(kept, p)
		}
	}
	b.payrolls = kept
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

func (b *Backend) handleCreatePayroll(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.FormValue("emp_code"))
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.employees[code]; !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "employee not found"})
		return
	}
	if year := strings.TrimSpace(r.FormValue("year")); year != "" {
		if _, err := strconv.Atoi(year); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid data"})
			return
		}
	}
	b.payrolls = append(b.payrolls, payroll.Record{
		EmployeeCode: code,
		Month:        r.FormValue("month"),
		Year:         r.FormValue("year"),
		NetSalary:    r.FormValue("net_salary"),
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (b *Backend) handleExportEmployees(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	emps := make([]employee.Employee, 0, len(b.employees))
	for _, emp := range b.employees {
		emps = append(emps, emp)
	}
	b.mu.Unlock()
	sort.Slice(emps, func(i, j int) bool { return emps[i].ID < emps[j].ID })

	w.Header().Set("Content-Type", "text/csv")
	out := csv.NewWriter(w)
	_ = out.Write([]string{"id", "emp_code", "first_name", "last_name", "department", "role", "basic_salary", "contact", "email"})
	for _, emp := range emps {
		_ = out.Write([]string{
			strconv.FormatInt(emp.ID, 10), emp.Code, emp.FirstName, emp.LastName, "", "",
			fmt.Sprint(emp.BasicSalary), emp.Contact, emp.Email,
		})
	}
	out.Flush()
}

func (b *Backend) handleExportPayrolls(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	records := append([]payroll.Record(nil), b.payrolls...)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv")
	out := csv.NewWriter(w)
	_ = out.Write([]string{"id", "employee", "month", "year", "net"})
	for i, p := range records {
		_ = out.Write([]string{strconv.Itoa(i + 1), p.EmployeeCode, p.Month, p.Year, p.NetSalary})
	}
	out.Flush()
}
