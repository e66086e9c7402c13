// Package export renders analysis results as an Excel workbook.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"alfredoptarigan/ats-analyzer/internal/models"
)

const (
	SummarySheet = "Summary"
	SkillsSheet  = "Skills"
	TipsSheet    = "Tips"
)

// Row is one analysed document. Err is set instead of Result when analysis failed.
type Row struct {
	Source string
	Result *models.AnalysisResult
	Err    error
}

var summaryHeader = []any{
	"File", "Status", "Category", "Recommended Job", "Name", "Phone", "Email",
	"ATS Score", "Skills", "Education", "Error",
}

// NewWorkbook builds the Summary, Skills and Tips sheets. The caller closes the file.
func NewWorkbook(rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	for _, sheet := range []string{SkillsSheet, TipsSheet} {
		if _, err := f.NewSheet(sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "left", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	if err := writeSummary(f, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSkills(f, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeTips(f, rows, headerStyle); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

// WriteWorkbook streams the workbook for rows to w.
func WriteWorkbook(w io.Writer, rows []Row) error {
	f, err := NewWorkbook(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []any, style int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}

func writeSummary(f *excelize.File, rows []Row, style int) error {
	if err := writeHeader(f, SummarySheet, summaryHeader, style); err != nil {
		return err
	}
	f.SetColWidth(SummarySheet, "A", "A", 30)
	f.SetColWidth(SummarySheet, "B", "J", 18)
	f.SetColWidth(SummarySheet, "K", "K", 50)

	for i, row := range rows {
		var values []any
		if row.Err != nil || row.Result == nil {
			message := "unknown error"
			if row.Err != nil {
				message = row.Err.Error()
			}
			values = []any{row.Source, "failed", "", "", "", "", "", "", "", "", message}
		} else {
			r := row.Result
			values = []any{
				row.Source, "completed", r.Category, r.JobTitle, r.Name, r.Phone, r.Email,
				r.AtsScore, len(r.Skills), strings.Join(r.Education, ", "), "",
			}
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SummarySheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	return nil
}

func writeSkills(f *excelize.File, rows []Row, style int) error {
	if err := writeHeader(f, SkillsSheet, []any{"File", "Skill"}, style); err != nil {
		return err
	}
	f.SetColWidth(SkillsSheet, "A", "B", 30)

	line := 2
	for _, row := range rows {
		if row.Result == nil {
			continue
		}
		for _, skill := range row.Result.Skills {
			f.SetCellValue(SkillsSheet, fmt.Sprintf("A%d", line), row.Source)
			f.SetCellValue(SkillsSheet, fmt.Sprintf("B%d", line), skill)
			line++
		}
	}
	return nil
}

func writeTips(f *excelize.File, rows []Row, style int) error {
	if err := writeHeader(f, TipsSheet, []any{"File", "Priority", "Title", "Detail"}, style); err != nil {
		return err
	}
	f.SetColWidth(TipsSheet, "A", "C", 25)
	f.SetColWidth(TipsSheet, "D", "D", 90)

	line := 2
	for _, row := range rows {
		if row.Result == nil {
			continue
		}
		for _, tip := range row.Result.Tips {
			values := []any{row.Source, string(tip.Priority), tip.Title, tip.Detail}
			if err := f.SetSheetRow(TipsSheet, fmt.Sprintf("A%d", line), &values); err != nil {
				return fmt.Errorf("failed to write tip row: %w", err)
			}
			line++
		}
	}
	return nil
}
