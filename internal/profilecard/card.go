// Package profilecard renders a candidate profile as a printable card.
package profilecard

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/khrees2412/talentdesk/pkg/models"
)

//go:embed templates/card.html
var templates embed.FS

var cardTmpl = template.Must(template.ParseFS(templates, "templates/card.html"))

const printTimeout = 30 * time.Second

var bandColors = map[models.ScoreBand]string{
	models.BandGood: "#22c55e",
	models.BandFair: "#f59e0b",
	models.BandPoor: "#ef4444",
}

// Card is the data shown on a profile card.
type Card struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	JobRole    string
	Score      int
	BandColor  template.CSS
	Years      int
	Bio        string
	Education  string
	Experience []string
}

// NewCard builds a card from a joined profile.
func NewCard(up models.UserProfile) Card {
	score := up.Profile.Score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return Card{
		Name:       up.Account.FullName(),
		Email:      up.Account.Email,
		Phone:      up.Account.Phone,
		Role:       up.Account.Role,
		JobRole:    up.Profile.JobRole,
		Score:      score,
		BandColor:  template.CSS(bandColors[models.BandFor(score)]),
		Years:      models.LongevityYears(up.Profile.LongevityDays),
		Bio:        strings.TrimSpace(up.Profile.Bio),
		Education:  strings.TrimSpace(up.Profile.Education),
		Experience: models.Bullets(up.Profile.Experience),
	}
}

// RenderHTML writes the card as a standalone HTML page.
func RenderHTML(w io.Writer, c Card) error {
	if err := cardTmpl.Execute(w, c); err != nil {
		return fmt.Errorf("render card: %w", err)
	}
	return nil
}

// Printer turns card HTML into PDF with headless Chrome.
type Printer struct {
	execPath string
	log      *slog.Logger
}

// NewPrinter uses the Chrome binary at execPath, or the one on PATH when empty.
func NewPrinter(execPath string, logger *slog.Logger) *Printer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Printer{execPath: execPath, log: logger}
}

// PDF renders c and prints it to an A4 PDF.
func (p *Printer) PDF(ctx context.Context, c Card) ([]byte, error) {
	var html bytes.Buffer
	if err := RenderHTML(&html, c); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, printTimeout)
	defer cancel()
	browserCtx, closeBrowser := p.browserContext(ctx)
	defer closeBrowser()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return fmt.Errorf("get frame tree: %w", err)
			}
			return page.SetDocumentContent(tree.Frame.ID, html.String()).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			if err != nil {
				return fmt.Errorf("print to pdf: %w", err)
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("run headless chrome: %w", err)
	}
	return pdf, nil
}

// browserContext starts a headless Chrome and returns a tab context.
func (p *Printer) browserContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
	)
	if p.execPath != "" {
		opts = append(opts, chromedp.ExecPath(p.execPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel2 := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...interface{}) {
		msg := fmt.Sprintf(format, v...)
		if strings.Contains(msg, "could not unmarshal event") {
			return
		}
		p.log.Debug("chrome", "message", msg)
	}))

	return ctx, func() {
		cancel2()
		cancel()
	}
}
