package printer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/jung-kurt/gofpdf"

	"hrdesk/internal/domain/payroll"
)

// Printer renders receipts as printable A4 documents under Dir.
type Printer struct {
	Dir string
	Now func() time.Time
}

func New(dir string) *Printer {
	return &Printer{Dir: dir, Now: time.Now}
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// Print writes the receipt and returns the document path.
func (p *Printer) Print(receipt payroll.Receipt) (string, error) {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create print dir: %w", err)
	}

	now := p.Now()
	code := unsafeName.ReplaceAllString(receipt.EmployeeCode, "_")
	if code == "" || code == "_" {
		code = "receipt"
	}
	filePath := filepath.Join(p.Dir, fmt.Sprintf("receipt_%s_%s.pdf", code, now.Format("20060102T150405")))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary Receipt", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Receipt")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range receipt.Lines() {
		pdf.Cell(0, 8, line)
		pdf.Ln(7)
	}
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Printed "+now.Format("2006-01-02 15:04"))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("write receipt: %w", err)
	}
	return filePath, nil
}
