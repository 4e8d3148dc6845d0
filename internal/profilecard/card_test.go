package profilecard

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/khrees2412/talentdesk/pkg/models"
)

func sampleProfile() models.UserProfile {
	return models.UserProfile{
		Account: models.Account{ID: "a1", FirstName: "Ada", LastName: "Obi", Email: "ada@example.com", Phone: "+234801", Role: "user"},
		Profile: models.Profile{
			AuthID:        "a1",
			Score:         91,
			JobRole:       "Backend Engineer",
			LongevityDays: 1460,
			Bio:           "Builds <payment> systems.",
			Education:     "BSc Computer Science",
			Experience:    "Paystack\n\nFlutterwave\n",
		},
	}
}

func TestNewCard(t *testing.T) {
	c := NewCard(sampleProfile())
	if c.Name != "Ada Obi" || c.Years != 4 || c.BandColor != "#22c55e" {
		t.Errorf("unexpected card: %+v", c)
	}
	if len(c.Experience) != 2 || c.Experience[1] != "Flutterwave" {
		t.Errorf("experience = %q", c.Experience)
	}

	over := sampleProfile()
	over.Profile.Score = 140
	if got := NewCard(over).Score; got != 100 {
		t.Errorf("score should clamp to 100, got %d", got)
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, NewCard(sampleProfile())); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	html := buf.String()
	for _, want := range []string{"Ada Obi", "Backend Engineer", "4 years", "<li>Paystack</li>", "width: 91%"} {
		if !strings.Contains(html, want) {
			t.Errorf("card is missing %q", want)
		}
	}
	if strings.Contains(html, "<payment>") {
		t.Error("bio must be escaped")
	}
}

func TestRenderHTMLEmptyProfile(t *testing.T) {
	var buf bytes.Buffer
	up := models.UserProfile{Account: models.Account{FirstName: "New"}}
	if err := RenderHTML(&buf, NewCard(up)); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if !strings.Contains(buf.String(), "Not stated") {
		t.Error("missing longevity should read Not stated")
	}
}

func TestPrinterPDF(t *testing.T) {
	chrome := os.Getenv("TALENTDESK_CHROME_PATH")
	if chrome == "" {
		for _, name := range []string{"google-chrome", "chromium", "chromium-browser"} {
			if p, err := exec.LookPath(name); err == nil {
				chrome = p
				break
			}
		}
	}
	if chrome == "" {
		t.Skip("no chrome binary available")
	}
	pdf, err := NewPrinter(chrome, nil).PDF(context.Background(), NewCard(sampleProfile()))
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF: %q", pdf[:8])
	}
}
