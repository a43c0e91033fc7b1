package infra

// pdf.go — receipt generation using go-pdf/fpdf.
// Renders an A7-size thermal-style receipt for a fuel ticket:
//   - Station name header
//   - Ticket number and timestamp
//   - Driver CI and plate
//   - Requested liters (when the driver specified them)
//
// The output file is saved to storagePath/ticket_{stationID}_{numero}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DoukeUCB/A-Todo-Gas/internal/model"

	"github.com/go-pdf/fpdf"
)

// TicketPDFPath returns the path where the receipt for a ticket lives.
// Deterministic so the HTTP handler can serve a previously generated file.
func TicketPDFPath(t *model.Ticket, storagePath string) string {
	fileName := fmt.Sprintf("ticket_%s_%d.pdf", t.StationID, t.TicketNumber)
	return filepath.Join(storagePath, fileName)
}

// GenerateTicketPDF renders the receipt for a ticket.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GenerateTicketPDF(t *model.Ticket, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := TicketPDFPath(t, storagePath)

	// A7 ≈ 74mm × 105mm, close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "QuickGasoline", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, t.StationName, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Ticket info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Ticket N° %d", t.TicketNumber), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, t.CreatedAt.Format("02/01/2006  15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Driver data ───────────────────────────────────────────────────────────
	col1 := contentW * 0.40
	col2 := contentW * 0.60

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "CI:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(col2, 5, t.CI, "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(col1, 5, "Placa:", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(col2, 5, t.Plate, "", 1, "R", false, 0, "")

	if t.RequestedLiters.IsPositive() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.CellFormat(col1, 5, "Litros:", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(col2, 5, t.RequestedLiters.StringFixed(2)+" L", "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Presente este ticket en el surtidor", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 4, "¡Gracias por su preferencia!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
