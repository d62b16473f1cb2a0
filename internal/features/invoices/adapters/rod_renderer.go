package adapters

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"courier-billing/internal/core/apperr"
	"courier-billing/internal/core/logger"
	"courier-billing/internal/features/invoices/domain"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
	"go.uber.org/zap"
)

//go:embed templates/invoice.html
var templates embed.FS

const renderFailed = "Error al generar PDF"

// RodRenderer prints invoices to PDF with a headless Chromium driven by rod.
// Each render launches its own browser.
type RodRenderer struct {
	bin     string
	timeout time.Duration
	tmpl    *template.Template
	logger  *zap.Logger
}

// NewRodRenderer creates a new RodRenderer. bin may be empty to let rod
// locate or download a browser.
func NewRodRenderer(bin string, timeout time.Duration) (*RodRenderer, error) {
	tmpl, err := template.ParseFS(templates, "templates/invoice.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse invoice template: %w", err)
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &RodRenderer{
		bin:     bin,
		timeout: timeout,
		tmpl:    tmpl,
		logger:  logger.Named("renderer"),
	}, nil
}

// HTML renders the invoice document.
func (r *RodRenderer) HTML(view domain.View) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, apperr.Render(renderFailed, fmt.Errorf("execute invoice template: %w", err))
	}
	return buf.Bytes(), nil
}

// Render implements ports.Renderer.
func (r *RodRenderer) Render(ctx context.Context, view domain.View, opts domain.PageOptions) ([]byte, error) {
	html, err := r.HTML(view)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	r.logger.Debug("Launching browser...", zap.String("bin", r.bin), zap.String("invoice", view.Number))

	l := launcher.New().
		Context(ctx).
		Headless(true).
		NoSandbox(true)
	if r.bin != "" {
		l = l.Bin(r.bin)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, apperr.Render(renderFailed, fmt.Errorf("failed to launch browser: %w", err))
	}
	defer l.Cleanup()

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, apperr.Render(renderFailed, fmt.Errorf("failed to connect to browser: %w", err))
	}
	defer browser.Close()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, apperr.Render(renderFailed, fmt.Errorf("failed to open page: %w", err))
	}

	if err := page.SetDocumentContent(string(html)); err != nil {
		return nil, apperr.Render(renderFailed, fmt.Errorf("failed to load invoice document: %w", err))
	}

	stream, err := page.PDF(printRequest(opts))
	if err != nil {
		return nil, apperr.Render(renderFailed, fmt.Errorf("failed to print pdf: %w", err))
	}
	defer stream.Close()

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, apperr.Render(renderFailed, fmt.Errorf("failed to read pdf stream: %w", err))
	}
	return pdf, nil
}

func printRequest(opts domain.PageOptions) *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      gson.Num(opts.Width),
		PaperHeight:     gson.Num(opts.Height),
		MarginTop:       gson.Num(opts.MarginInches),
		MarginBottom:    gson.Num(opts.MarginInches),
		MarginLeft:      gson.Num(opts.MarginInches),
		MarginRight:     gson.Num(opts.MarginInches),
	}
}
