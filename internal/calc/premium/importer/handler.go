package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	slope "Geoslope/internal/calc/slope"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type SlopeImportResult struct {
	Count   int            `json:"count"`
	Results []slope.Result `json:"results"`
}

func (h *Handler) Slope(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []slope.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}
		input, err := parseSlopeRow(row)
		if err != nil {
			continue
		}
		res, err := slope.Calculate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SlopeImportResult{Count: len(results), Results: results})
}

func parseSlopeRow(row []string) (slope.Input, error) {
	// expected: height_m, beta_deg, c_kpa, phi_deg, gamma_kn_m3, n_slices(optional)
	if len(row) < 5 {
		return slope.Input{}, fmt.Errorf("bad row")
	}
	h, err := toFloat(row[0])
	if err != nil {
		return slope.Input{}, err
	}
	beta, err := toFloat(row[1])
	if err != nil {
		return slope.Input{}, err
	}
	c, err := toFloat(row[2])
	if err != nil {
		return slope.Input{}, err
	}
	phi, err := toFloat(row[3])
	if err != nil {
		return slope.Input{}, err
	}
	gamma, err := toFloat(row[4])
	if err != nil {
		return slope.Input{}, err
	}
	nSlices := 0
	if len(row) > 5 && row[5] != "" {
		v, _ := toFloat(row[5])
		nSlices = int(v)
	}
	// Search window left zero: каждый кейс идет с рекомендованными границами.
	return slope.Input{
		HeightM:     h,
		BetaDeg:     beta,
		CohesionKPa: c,
		PhiDeg:      phi,
		GammaKNM3:   gamma,
		NSlices:     nSlices,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
