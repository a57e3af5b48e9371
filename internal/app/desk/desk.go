package desk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"hrdesk/internal/console"
	"hrdesk/internal/platform/config"
	"hrdesk/internal/platform/metrics"
	"hrdesk/internal/platform/printer"
	"hrdesk/internal/transport/http/client"
	"hrdesk/internal/ui"
)

const Version = "0.3.0"

type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Metrics *metrics.Collector
	Client  *client.Client
	Printer *printer.Printer
}

// New validates cfg and wires the backend client. Logs go to logOut as JSON.
func New(cfg config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	c, err := client.New(client.Options{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: "hrdesk/" + Version,
		Logger:    logger,
		Metrics:   collector,
	})
	if err != nil {
		return nil, err
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: collector,
		Client:  c,
		Printer: printer.New(cfg.PrintDir),
	}, nil
}

// Start opens a backend session when credentials are configured.
func (a *App) Start(ctx context.Context) error {
	if a.Config.Username == "" {
		return nil
	}
	if err := a.Client.Login(ctx, a.Config.Username, a.Config.Password); err != nil {
		return fmt.Errorf("login as %s: %w", a.Config.Username, err)
	}
	a.Logger.Info("backend session opened", "baseURL", a.Client.BaseURL(), "user", a.Config.Username)
	return nil
}

func (a *App) Binder(page ui.Page, scheduler ui.Scheduler) *ui.Binder {
	return &ui.Binder{
		Page:        page,
		Backend:     a.Client,
		Scheduler:   scheduler,
		Printer:     a.Printer,
		Logger:      a.Logger,
		ReloadDelay: a.Config.ReloadDelay,
	}
}

// Console returns the interactive page reading commands from in.
func (a *App) Console(in io.Reader, out io.Writer) *console.Console {
	con := console.New(in, out, a.Config.AssumeYes)
	con.Binder = a.Binder(con.Page, con)
	if a.Metrics != nil {
		con.Metrics = a.Metrics.Snapshot
	}
	return con
}

// Export downloads a backend CSV export into ExportDir and returns its path.
func (a *App) Export(ctx context.Context, export client.Export) (string, error) {
	if !export.Valid() {
		return "", fmt.Errorf("unknown export %q", export)
	}
	if err := os.MkdirAll(a.Config.ExportDir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	name := fmt.Sprintf("%s_%s.csv", export, time.Now().Format("20060102T150405"))
	path := filepath.Join(a.Config.ExportDir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	written, err := a.Client.DownloadExport(ctx, export, file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", err
	}

	a.Logger.Info("export saved", "export", string(export), "path", path, "bytes", written)
	return path, nil
}
