package handler

import (
	"errors"
	"net/http"
	"strings"

	farmsdomain "herdbook-go/internal/domain/farms"
	usersdomain "herdbook-go/internal/domain/users"
	"herdbook-go/internal/transport/httpserver/middleware"
)

type updateMeRequest struct {
	Name     string `json:"name"`
	FarmID   string `json:"farmId"`
	FarmName string `json:"farmName"`
}

type farmResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type preferencesResponse struct {
	EmailAlerts bool `json:"emailAlerts"`
	DarkMode    bool `json:"darkMode"`
}

type accountResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Farms       []farmResponse       `json:"farms"`
	Preferences *preferencesResponse `json:"preferences"`
}

func (h *Handlers) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	account, err := h.Users.GetAccount(r.Context(), userID)
	if err != nil {
		if errors.Is(err, usersdomain.ErrUserNotFound) {
			h.log.BusinessError("users.me: user not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("users.me: get account failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateMeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name is required")
		return
	}
	if req.FarmID != "" && strings.TrimSpace(req.FarmName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "farm name is required")
		return
	}

	if req.FarmID != "" {
		if _, err := h.Farms.Rename(r.Context(), userID, req.FarmID, req.FarmName); err != nil {
			if errors.Is(err, farmsdomain.ErrFarmNotFound) {
				h.log.BusinessError("users.update: farm not found", err, "user_id", userID, "farm_id", req.FarmID)
				writeError(w, http.StatusNotFound, "farm_not_found", "no farm found")
				return
			}
			h.log.InternalError("users.update: rename farm failed", err, "user_id", userID, "farm_id", req.FarmID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
	}

	account, err := h.Users.UpdateAccount(r.Context(), usersdomain.UpdateAccountInput{
		UserID: userID,
		Name:   req.Name,
	})
	if err != nil {
		if errors.Is(err, usersdomain.ErrUserNotFound) {
			h.log.BusinessError("users.update: user not found", err, "user_id", userID)
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("users.update: failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

func toAccountResponse(account *usersdomain.Account) accountResponse {
	out := accountResponse{
		ID:    account.User.ID,
		Name:  account.User.Name,
		Email: account.User.Email,
		Farms: make([]farmResponse, 0, len(account.Farms)),
	}
	for _, farm := range account.Farms {
		out.Farms = append(out.Farms, farmResponse{ID: farm.ID, Name: farm.Name})
	}
	if account.Preferences != nil {
		out.Preferences = &preferencesResponse{
			EmailAlerts: account.Preferences.EmailAlerts,
			DarkMode:    account.Preferences.DarkMode,
		}
	}
	return out
}
