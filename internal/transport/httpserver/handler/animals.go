package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	animalsdomain "herdbook-go/internal/domain/animals"
	farmsdomain "herdbook-go/internal/domain/farms"
	"herdbook-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
)

type createAnimalRequest struct {
	Name      string   `json:"name"`
	BirthDate string   `json:"birthDate"`
	Sex       string   `json:"sex"`
	BreedID   string   `json:"breedId"`
	Weight    *float64 `json:"weight"`
	Notes     *string  `json:"notes"`
}

type updateAnimalRequest struct {
	Name         string   `json:"name"`
	BirthDate    string   `json:"birthDate"`
	BreedID      string   `json:"breedId"`
	Sex          string   `json:"sex"`
	HealthStatus string   `json:"healthStatus"`
	Weight       *float64 `json:"weight"`
	Notes        *string  `json:"notes"`
}

type animalListItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	Status    string    `json:"status"`
	BirthDate time.Time `json:"birthDate"`
	Sex       string    `json:"sex"`
}

type paginationResponse struct {
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type animalListResponse struct {
	Animals    []animalListItem   `json:"animals"`
	Pagination paginationResponse `json:"pagination"`
}

type healthHistoryEntry struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Status string    `json:"status"`
	Weight *float64  `json:"weight"`
	Notes  *string   `json:"notes"`
	Type   string    `json:"type"`
}

type animalDetailResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Breed         string               `json:"breed"`
	BirthDate     time.Time            `json:"birthDate"`
	Sex           string               `json:"sex"`
	Age           int                  `json:"age"`
	CurrentStatus string               `json:"currentStatus"`
	HealthHistory []healthHistoryEntry `json:"healthHistory"`
}

func (h *Handlers) ListAnimals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.Farms.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, farmsdomain.ErrFarmNotFound) {
			h.log.BusinessError("animals.list: farm not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
			return
		}
		h.log.InternalError("animals.list: get farm failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	query := r.URL.Query()
	page, err := parseIntParam(query.Get("page"), 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid page")
		return
	}
	limit, err := parseIntParam(query.Get("limit"), 10)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid limit")
		return
	}

	result, err := h.Animals.List(r.Context(), farm.ID, animalsdomain.ListFilter{
		Page:         page,
		Limit:        limit,
		Search:       query.Get("search"),
		BreedID:      query.Get("breedId"),
		HealthStatus: query.Get("healthStatus"),
	})
	if err != nil {
		h.log.InternalError("animals.list: list failed", err, "user_id", userID, "farm_id", farm.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]animalListItem, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, animalListItem{
			ID:        item.ID,
			Name:      item.Name,
			Breed:     item.Breed,
			Age:       item.Age,
			Status:    item.Status,
			BirthDate: item.BirthDate,
			Sex:       item.Sex,
		})
	}

	writeJSON(w, http.StatusOK, animalListResponse{
		Animals: items,
		Pagination: paginationResponse{
			Total: result.Total,
			Pages: result.Pages,
			Page:  result.Page,
			Limit: result.Limit,
		},
	})
}

func (h *Handlers) CreateAnimal(w http.ResponseWriter, r *http.Request) {
	var req createAnimalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.Farms.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, farmsdomain.ErrFarmNotFound) {
			h.log.BusinessError("animals.create: farm not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
			return
		}
		h.log.InternalError("animals.create: get farm failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	birthDate, err := parseDateRequired(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid birth date")
		return
	}
	if strings.TrimSpace(req.BreedID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "breed is required")
		return
	}
	if req.Weight != nil && *req.Weight <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "weight must be positive")
		return
	}

	created, err := h.Animals.Create(r.Context(), animalsdomain.CreateInput{
		FarmID:    farm.ID,
		Name:      req.Name,
		BirthDate: birthDate,
		Sex:       req.Sex,
		BreedID:   req.BreedID,
		Weight:    req.Weight,
		Notes:     req.Notes,
	})
	if err != nil {
		if errors.Is(err, animalsdomain.ErrInvalidSex) {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid sex")
			return
		}
		h.log.InternalError("animals.create: create failed", err, "user_id", userID, "farm_id", farm.ID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toAnimalDetailResponse(created))
}

func (h *Handlers) GetAnimal(w http.ResponseWriter, r *http.Request) {
	animalID := strings.TrimSpace(chi.URLParam(r, "id"))
	if animalID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.Farms.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, farmsdomain.ErrFarmNotFound) {
			h.log.BusinessError("animals.get: farm not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
			return
		}
		h.log.InternalError("animals.get: get farm failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	detail, err := h.Animals.Get(r.Context(), farm.ID, animalID)
	if err != nil {
		if errors.Is(err, animalsdomain.ErrAnimalNotFound) {
			// Cross-farm lookups land here too; 404 avoids leaking that the
			// animal exists at all.
			h.log.BusinessError("animals.get: animal not found", err, "user_id", userID, "animal_id", animalID)
			writeError(w, http.StatusNotFound, "animal_not_found", "animal not found")
			return
		}
		h.log.InternalError("animals.get: get failed", err, "user_id", userID, "animal_id", animalID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAnimalDetailResponse(detail))
}

func (h *Handlers) UpdateAnimal(w http.ResponseWriter, r *http.Request) {
	var req updateAnimalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	animalID := strings.TrimSpace(chi.URLParam(r, "id"))
	if animalID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.Farms.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, farmsdomain.ErrFarmNotFound) {
			h.log.BusinessError("animals.update: farm not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
			return
		}
		h.log.InternalError("animals.update: get farm failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	birthDate, err := parseDateRequired(req.BirthDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid birth date")
		return
	}
	if strings.TrimSpace(req.BreedID) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "breed is required")
		return
	}

	updated, err := h.Animals.Update(r.Context(), animalsdomain.UpdateInput{
		ID:           animalID,
		FarmID:       farm.ID,
		Name:         req.Name,
		BirthDate:    birthDate,
		BreedID:      req.BreedID,
		Sex:          req.Sex,
		HealthStatus: req.HealthStatus,
		Weight:       req.Weight,
		Notes:        req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, animalsdomain.ErrAnimalNotFound):
			h.log.BusinessError("animals.update: animal not found", err, "user_id", userID, "animal_id", animalID)
			writeError(w, http.StatusNotFound, "animal_not_found", "animal not found")
		case errors.Is(err, animalsdomain.ErrInvalidSex):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid sex")
		case errors.Is(err, animalsdomain.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid health status")
		case errors.Is(err, animalsdomain.ErrInvalidWeight):
			writeError(w, http.StatusBadRequest, "invalid_request", "weight must be positive")
		default:
			h.log.InternalError("animals.update: update failed", err, "user_id", userID, "animal_id", animalID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toAnimalDetailResponse(updated))
}

func (h *Handlers) DeleteAnimal(w http.ResponseWriter, r *http.Request) {
	animalID := strings.TrimSpace(chi.URLParam(r, "id"))
	if animalID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	farm, err := h.Farms.GetByOwner(r.Context(), userID)
	if err != nil {
		if errors.Is(err, farmsdomain.ErrFarmNotFound) {
			h.log.BusinessError("animals.delete: farm not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
			return
		}
		h.log.InternalError("animals.delete: get farm failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	if err := h.Animals.Delete(r.Context(), farm.ID, animalID); err != nil {
		if errors.Is(err, animalsdomain.ErrAnimalNotFound) {
			h.log.BusinessError("animals.delete: animal not found", err, "user_id", userID, "animal_id", animalID)
			writeError(w, http.StatusNotFound, "animal_not_found", "animal not found")
			return
		}
		h.log.InternalError("animals.delete: delete failed", err, "user_id", userID, "animal_id", animalID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAnimalDetailResponse(detail *animalsdomain.Detail) animalDetailResponse {
	history := make([]healthHistoryEntry, 0, len(detail.Records))
	for _, record := range detail.Records {
		entryType := "routine"
		if record.Status != animalsdomain.StatusHealthy {
			entryType = "issue"
		}
		history = append(history, healthHistoryEntry{
			ID:     record.ID,
			Date:   record.Date,
			Status: record.Status,
			Weight: record.Weight,
			Notes:  record.Notes,
			Type:   entryType,
		})
	}

	return animalDetailResponse{
		ID:            detail.ID,
		Name:          detail.Name,
		Breed:         detail.BreedName,
		BirthDate:     detail.BirthDate,
		Sex:           detail.Sex,
		Age:           animalsdomain.AgeInMonths(detail.BirthDate, time.Now()),
		CurrentStatus: animalsdomain.CurrentStatus(detail.Records),
		HealthHistory: history,
	}
}
