package handler

import (
	"encoding/json"
	"net/http"

	"github.com/MdSadiqMd/Text-to-Shader/internal/adapter"
	"github.com/MdSadiqMd/Text-to-Shader/internal/metrics"
)

type adapterStatus struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

type healthResponse struct {
	Status   string                   `json:"status"`
	Adapters map[string]adapterStatus `json:"adapters"`
}

func Health(adapters map[string]adapter.LLMAdapter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		statuses := make(map[string]adapterStatus, len(adapters))
		for id, a := range adapters {
			s := adapterStatus{Available: a.Available()}
			if !s.Available {
				s.Reason = unavailableReason(a)
			}
			available := 0.0
			if s.Available {
				available = 1.0
			}
			metrics.AdapterAvailable.WithLabelValues(id).Set(available)
			statuses[id] = s
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:   "ok",
			Adapters: statuses,
		})
	}
}

func unavailableReason(a adapter.LLMAdapter) string {
	switch a.(type) {
	case *adapter.GeminiAdapter:
		return "no API key"
	default:
		return "unavailable"
	}
}
