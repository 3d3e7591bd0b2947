package export

import (
	"bytes"
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"
	"github.com/skip2/go-qrcode"
	"github.com/xelth-com/manualsgo/internal/doctree"
	"github.com/xelth-com/manualsgo/internal/models"
	"github.com/xelth-com/manualsgo/internal/modules"
)

// Input carries the pre-fetched snapshot the renderer works on. The
// renderer performs no I/O: translations and components are resolved by
// the caller.
type Input struct {
	Document         models.Document
	Nodes            []doctree.Node
	ModulesBySection map[string][]models.ContentModule

	// Translation overlays; nil maps render the source language
	SectionTranslations map[string]*models.SectionTranslation
	ModuleTranslations  map[string]*models.ContentModuleTranslation

	ComponentsByID map[string]models.Component
	PublicBaseURL  string
}

var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11}

// GeneratePDF renders a manual to PDF: cover page with a QR code linking
// to the hosted document, then the linearized section tree with heading
// levels capped at the deepest supported style.
func GeneratePDF(in Input) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)

	renderCover(pdf, tr, in)

	for _, node := range in.Nodes {
		section := node.Section
		renderSectionHeading(pdf, tr, in, section, node.Depth)

		for _, m := range in.ModulesBySection[section.ID] {
			renderModule(pdf, tr, in, m)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func renderCover(pdf *gofpdf.Fpdf, tr func(string) string, in Input) {
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 26)
	pdf.Ln(40)
	pdf.MultiCell(0, 12, tr(in.Document.Title), "", "C", false)

	pdf.SetFont("Arial", "", 12)
	pdf.Ln(4)
	pdf.MultiCell(0, 7, tr(in.Document.Description), "", "C", false)
	pdf.Ln(2)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("Version %s", in.Document.Version)), "", 1, "C", false, 0, "")

	// QR code linking to the hosted manual
	url := fmt.Sprintf("%s/documents/%s", in.PublicBaseURL, in.Document.ID)
	qrPng, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		log.Printf("⚠️ Export: QR generation failed: %v", err)
		return
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("cover-qr", opts, bytes.NewReader(qrPng))
	pageW, _ := pdf.GetPageSize()
	pdf.ImageOptions("cover-qr", (pageW-30)/2, 200, 30, 30, false, opts, 0, "")
}

func renderSectionHeading(pdf *gofpdf.Fpdf, tr func(string) string, in Input, section models.Section, depth int) {
	title := section.Title
	if st := in.SectionTranslations[section.ID]; st != nil && st.Title != "" {
		title = st.Title
	}
	// Per-document overrides are data supplied by the document record,
	// applied last so they win over translations
	if override := modules.Str(in.Document.ExportOverrides, section.ID); override != "" {
		title = override
	}

	level := doctree.HeadingLevel(depth)
	if level == 1 {
		pdf.AddPage()
	}
	pdf.SetFont("Arial", "B", headingSizes[level])
	pdf.MultiCell(0, 9, tr(title), "", "L", false)

	description := section.Description
	if st := in.SectionTranslations[section.ID]; st != nil && st.Description != "" {
		description = st.Description
	}
	if description != "" {
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 5, tr(description), "", "L", false)
	}
	pdf.Ln(2)
}

// renderModule switches exhaustively over the module type tag. Unknown
// types render a placeholder line instead of failing the export.
func renderModule(pdf *gofpdf.Fpdf, tr func(string) string, in Input, m models.ContentModule) {
	content := modules.Normalize(m.Content)
	if t := in.ModuleTranslations[m.ID]; t != nil {
		content = overlay(content, modules.Normalize(t.Content))
	}

	switch m.Type {
	case modules.TypeText, modules.TypeTestp:
		pdf.SetFont("Arial", "", 11)
		pdf.MultiCell(0, 6, tr(modules.Str(content, "text")), "", "L", false)

	case modules.TypeImage, modules.TypeVideo:
		caption := firstNonEmpty(modules.Str(content, "title"), modules.Str(content, "caption"), modules.Str(content, "alt"))
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("[%s: %s]", m.Type, caption)), "", "L", false)

	case modules.TypeTable:
		renderTable(pdf, tr, content)

	case modules.TypeWarning, modules.TypeDanger, modules.TypeWarningAlert,
		modules.TypeCaution, modules.TypeNote, modules.TypeSafetyInstructions:
		bodyField, _ := modules.AlertBodyField(m.Type)
		renderAlert(pdf, tr, modules.Str(content, "title"), modules.Str(content, bodyField))

	case modules.TypeChecklist:
		pdf.SetFont("Arial", "", 11)
		for _, item := range modules.ChecklistItems(content) {
			box := "[ ]"
			if item.Checked {
				box = "[x]"
			}
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s %s", box, item.Text)), "", "L", false)
		}

	case modules.TypeLink:
		pdf.SetFont("Arial", "U", 11)
		label := firstNonEmpty(modules.Str(content, "text"), modules.Str(content, "url"))
		pdf.MultiCell(0, 6, tr(label), "", "L", false)

	case modules.TypeFile, modules.TypePdf, modules.Type3DModel:
		pdf.SetFont("Arial", "I", 10)
		name := firstNonEmpty(modules.Str(content, "title"), modules.Str(content, "filename"), modules.Str(content, "src"))
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("[attachment: %s]", name)), "", "L", false)

	case modules.TypeComponent:
		renderComponent(pdf, tr, in, content)

	case modules.TypeBom:
		renderBom(pdf, tr, content)

	default:
		pdf.SetFont("Arial", "I", 10)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("[unsupported module type: %s]", m.Type)), "", "L", false)
	}
	pdf.Ln(2)
}

func renderTable(pdf *gofpdf.Fpdf, tr func(string) string, content models.JSONB) {
	headers := modules.StrSlice(content, "headers")
	rows := modules.StrMatrix(content, "rows")

	cols := len(headers)
	for _, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if cols == 0 {
		return
	}

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	cellW := (pageW - left - right) / float64(cols)

	if len(headers) > 0 {
		pdf.SetFont("Arial", "B", 10)
		for _, h := range headers {
			pdf.CellFormat(cellW, 7, tr(h), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(cellW, 7, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if caption := modules.Str(content, "caption"); caption != "" {
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, tr(caption), "", "L", false)
	}
}

func renderAlert(pdf *gofpdf.Fpdf, tr func(string) string, title, body string) {
	pdf.SetFont("Arial", "B", 11)
	pdf.MultiCell(0, 6, tr(title), "LTR", "L", false)
	pdf.SetFont("Arial", "", 10)
	pdf.MultiCell(0, 6, tr(body), "LBR", "L", false)
}

func renderComponent(pdf *gofpdf.Fpdf, tr func(string) string, in Input, content models.JSONB) {
	componentID := modules.Str(content, "componentId")
	component, ok := in.ComponentsByID[componentID]
	if !ok {
		// Component row no longer exists; render a placeholder
		component = models.Component{Code: "–", Description: "–"}
	}
	quantity := 1
	if q, isNum := content["quantity"].(float64); isNum && q >= 1 {
		quantity = int(q)
	}
	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s  %s  (x%d)", component.Code, component.Description, quantity)), "", "L", false)
}

func renderBom(pdf *gofpdf.Fpdf, tr func(string) string, content models.JSONB) {
	if title := modules.Str(content, "title"); title != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(title), "", "L", false)
	}

	descriptions := modules.StrMap(content, "descriptions")
	pdf.SetFont("Arial", "", 10)
	for _, code := range modules.BomVisibleCodes(content) {
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s  %s", code, descriptions[code])), "", "L", false)
	}
}

// overlay merges translated fields over the source content, keeping
// source values where the translation has none
func overlay(src, dst models.JSONB) models.JSONB {
	out := make(models.JSONB, len(src))
	for k, v := range src {
		out[k] = v
	}
	for k, v := range dst {
		if s, isStr := v.(string); isStr && s == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
