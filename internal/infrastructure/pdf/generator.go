package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/billfold/backend/internal/domain/invoicing"
	"github.com/billfold/backend/internal/domain/shared"
	"github.com/billfold/backend/internal/domain/shared/valueobject"
	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"
)

// Page geometry. US Letter in points with equal margins on all sides.
const (
	pageWidth    = 612.0
	marginSize   = 50.0
	contentWidth = pageWidth - 2*marginSize
	logoBoxSize  = 80.0
	logoTextGap  = 12.0
)

// Column widths as fractions of the content width.
const (
	itemColFrac  = 0.40
	qtyColFrac   = 0.15
	priceColFrac = 0.20
	totalColFrac = 0.25
)

const fontFamily = "Helvetica"

// Generator renders invoices to single-page PDF documents on disk.
type Generator struct {
	outputDir string
	logger    *zap.Logger
}

// NewGenerator creates a Generator writing into outputDir
func NewGenerator(outputDir string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{outputDir: outputDir, logger: logger}
}

// FileName returns the output file name for an invoice number, with
// spaces replaced by underscores
func FileName(number string) string {
	return "Invoice_" + strings.ReplaceAll(number, " ", "_") + ".pdf"
}

// Generate renders the invoice with the given template and writes it to
// the output directory, replacing any prior file of the same name. It
// returns the written file path. The file is verified to exist and be
// non-empty before the call reports success.
func (g *Generator) Generate(inv *invoicing.Invoice, template invoicing.Template) (string, error) {
	var buf bytes.Buffer
	if err := g.render(&buf, inv, template.Config()); err != nil {
		g.logger.Error("invoice render failed",
			zap.String("invoice_number", inv.Number),
			zap.Error(err))
		return "", shared.ErrPDFWriteFailed
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", shared.ErrPDFWriteFailed
	}

	path := filepath.Join(g.outputDir, FileName(inv.Number))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return "", shared.ErrPDFWriteFailed
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		g.logger.Error("invoice write failed",
			zap.String("path", path),
			zap.Error(err))
		return "", shared.ErrPDFWriteFailed
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", shared.ErrPDFWriteFailed
	}
	if info.Size() == 0 {
		return "", shared.ErrPDFEmptyOutput
	}

	g.logger.Info("invoice generated",
		zap.String("invoice_number", inv.Number),
		zap.String("path", path),
		zap.Int64("bytes", info.Size()))
	return path, nil
}

// render lays the invoice out top to bottom with a running Y cursor.
func (g *Generator) render(w *bytes.Buffer, inv *invoicing.Invoice, cfg invoicing.TemplateConfig) error {
	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(marginSize, marginSize, marginSize)
	doc.SetAutoPageBreak(false, marginSize)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	lineHeight := cfg.BodyFontSize + 4
	y := marginSize

	// Title, right-aligned at the top margin.
	doc.SetFont(fontFamily, "B", cfg.TitleFontSize)
	doc.SetXY(marginSize, y)
	doc.CellFormat(contentWidth, cfg.TitleFontSize, "INVOICE", "", 0, "RM", false, 0, "")
	y += cfg.TitleFontSize + cfg.Spacing

	y = g.drawHeader(doc, tr, inv, cfg, y, lineHeight)
	y = drawMetadata(doc, tr, inv, cfg, y, lineHeight)
	y = drawBillTo(doc, tr, inv, cfg, y, lineHeight)
	y = drawItemTable(doc, tr, inv, cfg, y, lineHeight)
	y = drawTotals(doc, tr, inv, cfg, y, lineHeight)

	doc.SetFont(fontFamily, "", cfg.BodyFontSize)
	doc.SetXY(marginSize, y)
	doc.CellFormat(contentWidth, lineHeight, "Status: "+inv.StatusText(), "", 0, "LM", false, 0, "")

	return doc.Output(w)
}

// drawHeader draws the optional logo and the business snapshot block
// and returns the next Y position. An empty snapshot draws nothing.
func (g *Generator) drawHeader(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicing.Invoice, cfg invoicing.TemplateConfig, y, lineHeight float64) float64 {
	if inv.Business.IsEmpty() {
		return y
	}

	textX := marginSize
	logoHeight := 0.0
	if len(inv.Business.Logo) > 0 {
		if h, ok := g.drawLogo(doc, inv.Business.Logo, marginSize, y); ok {
			logoHeight = h
			textX = marginSize + logoBoxSize + logoTextGap
		}
	}

	// Non-empty fields stack contiguously; a running line counter
	// leaves no gap for omitted fields.
	line := 0
	doc.SetFont(fontFamily, "B", cfg.HeaderFontSize)
	doc.SetXY(textX, y)
	doc.CellFormat(contentWidth-(textX-marginSize), cfg.HeaderFontSize+4, tr(inv.Business.Name), "", 0, "LM", false, 0, "")
	textTop := y + cfg.HeaderFontSize + 4

	doc.SetFont(fontFamily, "", cfg.BodyFontSize)
	for _, field := range []string{
		inv.Business.Address,
		inv.Business.Phone,
		inv.Business.Email,
		inv.Business.TaxID,
	} {
		if field == "" {
			continue
		}
		doc.SetXY(textX, textTop+float64(line)*lineHeight)
		doc.CellFormat(contentWidth-(textX-marginSize), lineHeight, tr(field), "", 0, "LM", false, 0, "")
		line++
	}

	textHeight := cfg.HeaderFontSize + 4 + float64(line)*lineHeight
	blockHeight := textHeight
	if logoHeight > blockHeight {
		blockHeight = logoHeight
	}
	return y + blockHeight + cfg.Spacing
}

// drawLogo decodes and places the logo scaled into an 80 pt box,
// preserving aspect ratio. Malformed image bytes omit the logo rather
// than failing the document.
func (g *Generator) drawLogo(doc *gofpdf.Fpdf, logo []byte, x, y float64) (height float64, ok bool) {
	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(logo))
	if err != nil || imgCfg.Width == 0 || imgCfg.Height == 0 {
		g.logger.Warn("logo decode failed, omitting logo", zap.Error(err))
		return 0, false
	}

	var width float64
	aspect := float64(imgCfg.Width) / float64(imgCfg.Height)
	if aspect > 1 {
		width = logoBoxSize
		height = logoBoxSize / aspect
	} else {
		height = logoBoxSize
		width = logoBoxSize * aspect
	}

	opts := gofpdf.ImageOptions{ImageType: format, ReadDpi: false}
	doc.RegisterImageOptionsReader("logo", opts, bytes.NewReader(logo))
	if doc.Err() {
		g.logger.Warn("logo registration failed, omitting logo", zap.Error(doc.Error()))
		doc.ClearError()
		return 0, false
	}
	doc.ImageOptions("logo", x, y, width, height, false, opts, 0, "")
	return height, true
}

// drawMetadata draws the invoice number, dates and optional period
func drawMetadata(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicing.Invoice, cfg invoicing.TemplateConfig, y, lineHeight float64) float64 {
	lines := []string{
		"Invoice Number: " + inv.Number,
		"Issue Date: " + inv.IssueDate.Format("Jan 2, 2006"),
		"Due Date: " + inv.DueDate.Format("Jan 2, 2006"),
	}
	if inv.HasPeriod() {
		lines = append(lines, fmt.Sprintf("Period: %s – %s",
			inv.PeriodStart.Format("02 Jan 2006"),
			inv.PeriodEnd.Format("02 Jan 2006")))
	}

	doc.SetFont(fontFamily, "", cfg.BodyFontSize)
	for _, text := range lines {
		doc.SetXY(marginSize, y)
		doc.CellFormat(contentWidth, lineHeight, tr(text), "", 0, "LM", false, 0, "")
		y += lineHeight
	}
	return y + cfg.Spacing
}

// drawBillTo draws the client block. An empty snapshot is omitted.
func drawBillTo(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicing.Invoice, cfg invoicing.TemplateConfig, y, lineHeight float64) float64 {
	if inv.Client.IsEmpty() {
		return y
	}

	doc.SetFont(fontFamily, "B", cfg.BodyFontSize)
	doc.SetXY(marginSize, y)
	doc.CellFormat(contentWidth, lineHeight, "Bill To", "", 0, "LM", false, 0, "")
	y += lineHeight

	doc.SetFont(fontFamily, "", cfg.BodyFontSize)
	doc.SetXY(marginSize, y)
	doc.CellFormat(contentWidth, lineHeight, tr(inv.Client.Name), "", 0, "LM", false, 0, "")
	return y + lineHeight + cfg.Spacing
}

// drawItemTable draws the column headers, rule and one row per item.
// Text is clipped per column; overflow of long titles is accepted.
func drawItemTable(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicing.Invoice, cfg invoicing.TemplateConfig, y, lineHeight float64) float64 {
	itemW := contentWidth * itemColFrac
	qtyW := contentWidth * qtyColFrac
	priceW := contentWidth * priceColFrac
	totalW := contentWidth * totalColFrac
	currency := inv.DisplayCurrency()

	doc.SetFont(fontFamily, "B", cfg.BodyFontSize)
	doc.SetXY(marginSize, y)
	doc.CellFormat(itemW, lineHeight, "Item", "", 0, "LM", false, 0, "")
	doc.CellFormat(qtyW, lineHeight, "Qty", "", 0, "RM", false, 0, "")
	doc.CellFormat(priceW, lineHeight, "Price", "", 0, "RM", false, 0, "")
	doc.CellFormat(totalW, lineHeight, "Total", "", 0, "RM", false, 0, "")
	y += lineHeight

	doc.SetLineWidth(0.5)
	doc.Line(marginSize, y, marginSize+contentWidth, y)
	y += 4

	doc.SetFont(fontFamily, "", cfg.BodyFontSize)
	for _, item := range inv.Items {
		doc.SetXY(marginSize, y)
		doc.CellFormat(itemW, lineHeight, tr(item.Title), "", 0, "LM", false, 0, "")
		doc.CellFormat(qtyW, lineHeight, fmt.Sprintf("%d", item.Quantity), "", 0, "RM", false, 0, "")
		doc.CellFormat(priceW, lineHeight, tr(valueobject.FormatAmount(item.UnitPrice, currency)), "", 0, "RM", false, 0, "")
		doc.CellFormat(totalW, lineHeight, tr(valueobject.FormatAmount(item.Total(), currency)), "", 0, "RM", false, 0, "")
		y += lineHeight
	}
	return y + cfg.Spacing
}

// drawTotals draws the right-aligned totals block under the Price and
// Total columns
func drawTotals(doc *gofpdf.Fpdf, tr func(string) string, inv *invoicing.Invoice, cfg invoicing.TemplateConfig, y, lineHeight float64) float64 {
	blockWidth := contentWidth * 0.45
	blockX := marginSize + contentWidth - blockWidth
	labelW := blockWidth * 0.6
	valueW := blockWidth * 0.4

	rows := []struct {
		label string
		value string
		bold  bool
	}{
		{"Subtotal", inv.SubtotalMoney().Format(), false},
		{fmt.Sprintf("Tax (%s%%)", inv.TaxPercent.StringFixed(1)), inv.TaxMoney().Format(), false},
		{"Total", inv.TotalMoney().Format(), true},
	}

	for _, row := range rows {
		style := ""
		if row.bold {
			style = "B"
		}
		doc.SetFont(fontFamily, style, cfg.BodyFontSize)
		doc.SetXY(blockX, y)
		doc.CellFormat(labelW, lineHeight, row.label, "", 0, "LM", false, 0, "")
		doc.CellFormat(valueW, lineHeight, tr(row.value), "", 0, "RM", false, 0, "")
		y += lineHeight
	}
	return y + cfg.Spacing
}
