package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	slope "Geoslope/internal/calc/slope"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Notes   string      `json:"notes"`
	Slope   slope.Input `json:"slope"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Slope Stability Report"
	}

	res, err := slope.Calculate(input.Slope)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Slope: H = %.2f m, beta = %.1f deg", input.Slope.HeightM, input.Slope.BetaDeg))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Soil: c = %.1f kPa, phi = %.1f deg, gamma = %.1f kN/m3",
		input.Slope.CohesionKPa, input.Slope.PhiDeg, input.Slope.GammaKNM3))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Result")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	if res.Found {
		pdf.Cell(0, 6, fmt.Sprintf("Critical FS = %.3f", res.FS))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Critical circle: xc = %.2f m, yc = %.2f m, R = %.2f m",
			res.XcM, res.YcM, res.RM))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Candidates: %d evaluated, %d accepted", res.Evaluated, res.Accepted))
	} else {
		pdf.Cell(0, 6, "No valid slip circle found in the search window.")
	}
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, res.Notes, "", "L", false)
	if input.Notes != "" {
		pdf.Ln(4)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"slope_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
