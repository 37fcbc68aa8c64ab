package refine

import (
	"encoding/json"
	"net/http"

	slope "Geoslope/internal/calc/slope"
)

type Handler struct{}

func (h *Handler) Slope(w http.ResponseWriter, r *http.Request) {
	var input slope.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
