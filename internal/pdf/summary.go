package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"dayplanner/internal/models"
)

// Generator is an interface so handlers can be tested with a stub.
type Generator interface {
	GenerateDailySummary(dashboard models.Dashboard) (string, error)
}

// SummaryGenerator renders a dashboard snapshot as a printable A4 page.
type SummaryGenerator struct {
	RootDir string // storage root, e.g. "./files"
}

func NewSummaryGenerator(rootDir string) *SummaryGenerator {
	return &SummaryGenerator{RootDir: filepath.Clean(rootDir)}
}

func (g *SummaryGenerator) GenerateDailySummary(dashboard models.Dashboard) (string, error) {
	filename := fmt.Sprintf("daily_summary_%s.pdf", dashboard.Date)
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Daily Summary "+dashboard.Date.String(), false)
	pdf.SetAuthor("Dayplanner", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	// ===== Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Daily Summary", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 7, dashboard.Date.Time().Format("Monday, 2 January 2006"), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	// ===== Tasks due today
	g.sectionTitle(pdf, fmt.Sprintf("Tasks due today (%d)", len(dashboard.TodayTasks)))
	if len(dashboard.TodayTasks) == 0 {
		g.emptyLine(pdf, "Nothing due today.")
	}
	for _, t := range dashboard.TodayTasks {
		marker := "[ ]"
		if t.IsCompleted {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s  (%s)", marker, t.Title, t.Priority)
		if t.IsOverdue {
			line += "  OVERDUE"
		}
		g.listLine(pdf, line)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Schedules
	g.sectionTitle(pdf, fmt.Sprintf("Schedule (%d)", len(dashboard.TodaySchedules)))
	if len(dashboard.TodaySchedules) == 0 {
		g.emptyLine(pdf, "No schedules today.")
	}
	for _, s := range dashboard.TodaySchedules {
		line := fmt.Sprintf("%s  %s  (%s)", s.StartTime.Format("15:04"), s.Title, s.Duration)
		g.listLine(pdf, line)
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Habits
	g.sectionTitle(pdf, fmt.Sprintf("Habits (%d/%d completed today)",
		dashboard.CompletedHabitsToday, dashboard.TotalHabits))
	for _, h := range dashboard.Habits {
		marker := "[ ]"
		if h.IsCompletedToday {
			marker = "[x]"
		}
		g.listLine(pdf, fmt.Sprintf("%s %s  — streak: %d", marker, h.Name, h.CurrentStreak))
	}
	pdf.Ln(2)
	g.hr(pdf)

	// ===== Note
	if dashboard.TodayNote != nil {
		g.sectionTitle(pdf, "Today's note: "+dashboard.TodayNote.Title)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, dashboard.TodayNote.Content, "", "L", false)
		pdf.Ln(2)
		g.hr(pdf)
	}

	// ===== Footer counts
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Pending tasks overall: %d", dashboard.PendingTasksCount),
		"", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("failed to write summary pdf: %w", err)
	}
	return absPath, nil
}

func (g *SummaryGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create files root: %w", err)
	}
	return filepath.Join(g.RootDir, filepath.Base(filename)), nil
}

func (g *SummaryGenerator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}

func (g *SummaryGenerator) listLine(pdf *gofpdf.Fpdf, line string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
}

func (g *SummaryGenerator) emptyLine(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(0, 6, text, "", 1, "L", false, 0, "")
}

func (g *SummaryGenerator) hr(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetXY()
	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	pdf.Line(left, y, pageWidth-right, y)
	pdf.SetXY(x, y+2)
}
