package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

// Exporter renders the admin downloads: member roster and event schedule,
// as a spreadsheet or a printable PDF.
type Exporter struct {
	store *content.Store
}

func NewExporter(store *content.Store) *Exporter {
	return &Exporter{store: store}
}

// ===========================
// 📊 Member roster spreadsheet
func (e *Exporter) MemberRosterXLSX(ctx context.Context) (*bytes.Buffer, error) {
	members := e.store.GetMembers(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Members"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Name", "Email", "Phone", "Course", "Year", "Joined"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	}

	for row, m := range members {
		values := []interface{}{m.Name, m.Email, m.Phone, m.Course, m.Year, m.JoinedDate}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "B", 28)
	f.SetColWidth(sheet, "C", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render roster: %w", err)
	}
	return buf, nil
}

// ===========================
// 📅 Event schedule spreadsheet
func (e *Exporter) EventScheduleXLSX(ctx context.Context) (*bytes.Buffer, error) {
	events := e.store.GetEvents(ctx)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Events"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Title", "Date", "Time", "Location", "Recurring", "Pattern"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
	})
	if err == nil {
		f.SetCellStyle(sheet, "A1", "F1", headerStyle)
	}

	for row, ev := range events {
		recurring := "No"
		if ev.IsRecurring {
			recurring = "Yes"
		}
		values := []interface{}{ev.Title, ev.Date, ev.Time, ev.Location, recurring, ev.RecurringPattern}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	f.SetColWidth(sheet, "A", "A", 32)
	f.SetColWidth(sheet, "B", "F", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render schedule: %w", err)
	}
	return buf, nil
}

// ===========================
// 🖨 Member roster PDF
func (e *Exporter) MemberRosterPDF(ctx context.Context) (*bytes.Buffer, error) {
	members := e.store.GetMembers(ctx)

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Fellowship Member Roster")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s — %d members", time.Now().Format("Jan 2, 2006"), len(members)))
	pdf.Ln(10)

	widths := []float64{55, 70, 35, 55, 25, 30}
	headers := []string{"Name", "Email", "Phone", "Course", "Year", "Joined"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(68, 114, 196)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(240, 244, 252)
	for _, m := range members {
		cells := []string{m.Name, m.Email, m.Phone, m.Course, m.Year, m.JoinedDate}
		for i, v := range cells {
			pdf.CellFormat(widths[i], 7, v, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render roster pdf: %w", err)
	}
	return &buf, nil
}
