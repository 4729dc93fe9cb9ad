package handler

import (
	"errors"
	"net/http"

	farmsdomain "herdbook-go/internal/domain/farms"
	statsdomain "herdbook-go/internal/domain/stats"
	"herdbook-go/internal/transport/httpserver/middleware"
)

type snapshotResponse struct {
	TotalAnimals    int                      `json:"totalAnimals"`
	AverageAge      int                      `json:"averageAge"`
	AverageWeight   int                      `json:"averageWeight"`
	HealthAlerts    int                      `json:"healthAlerts"`
	AgeDistribution []statsdomain.BucketCount `json:"ageDistribution"`
}

type changesResponse struct {
	Animals string `json:"animals"`
	Age     string `json:"age"`
	Weight  string `json:"weight"`
	Alerts  string `json:"alerts"`
}

type statsResponse struct {
	CurrentStats snapshotResponse `json:"currentStats"`
	Changes      changesResponse  `json:"changes"`
}

type distributionEntry struct {
	Name       string  `json:"name"`
	Value      int64   `json:"value"`
	Percentage float64 `json:"percentage"`
}

func (h *Handlers) AnimalStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.Farms.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, farmsdomain.ErrFarmNotFound) {
			h.log.BusinessError("stats.overview: farm not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
			return
		}
		h.log.InternalError("stats.overview: get farm failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	overview, err := h.Stats.Overview(r.Context(), farm.ID)
	if err != nil {
		h.log.InternalError("stats.overview: failed", err, "user_id", userID, "farm_id", farm.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		CurrentStats: snapshotResponse{
			TotalAnimals:    overview.Current.TotalAnimals,
			AverageAge:      overview.Current.AverageAge,
			AverageWeight:   overview.Current.AverageWeight,
			HealthAlerts:    overview.Current.HealthAlerts,
			AgeDistribution: overview.Current.AgeDistribution,
		},
		Changes: changesResponse{
			Animals: overview.Changes.Animals,
			Age:     overview.Changes.Age,
			Weight:  overview.Changes.Weight,
			Alerts:  overview.Changes.Alerts,
		},
	})
}

func (h *Handlers) BreedDistribution(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.Farms.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, farmsdomain.ErrFarmNotFound) {
			h.log.BusinessError("stats.breeds: farm not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
			return
		}
		h.log.InternalError("stats.breeds: get farm failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	rows, err := h.Breeds.Distribution(r.Context(), farm.ID)
	if err != nil {
		h.log.InternalError("stats.breeds: distribution failed", err, "user_id", userID, "farm_id", farm.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	out := make([]distributionEntry, 0, len(rows))
	for _, row := range rows {
		out = append(out, distributionEntry{
			Name:       row.Name,
			Value:      row.Value,
			Percentage: row.Percentage,
		})
	}

	writeJSON(w, http.StatusOK, out)
}
