package slope

import (
	"encoding/json"
	"log"
	"net/http"

	auth "Geoslope/internal/auth"
	repo "Geoslope/internal/repo"
)

type Handler struct {
	Repo repo.Repository
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}

	// История запусков — best effort, расчет важнее.
	if h.Repo != nil {
		if userID := auth.UserIDFromContext(r.Context()); userID != 0 {
			raw, _ := json.Marshal(input)
			_, err := h.Repo.SaveAnalysis(r.Context(), repo.Analysis{
				UserID:    userID,
				InputJSON: string(raw),
				Found:     res.Found,
				FS:        res.FS,
				XcM:       res.XcM,
				YcM:       res.YcM,
				RM:        res.RM,
			})
			if err != nil {
				log.Printf("SaveAnalysis Error: %v", err)
			}
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == 0 || h.Repo == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	list, err := h.Repo.ListAnalyses(r.Context(), userID, 20)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
