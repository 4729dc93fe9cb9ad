package handler

import (
	"errors"
	"net/http"
	"strings"

	usersdomain "herdbook-go/internal/domain/users"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FarmName string `json:"farmName"`
}

type signupResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		req.Password == "" ||
		strings.TrimSpace(req.FarmName) == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "name, email, password and farm name are required")
		return
	}

	user, err := h.Users.Signup(r.Context(), usersdomain.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		FarmName: req.FarmName,
	})
	if err != nil {
		if errors.Is(err, usersdomain.ErrEmailTaken) {
			h.log.BusinessError("auth.signup: email taken", err)
			writeError(w, http.StatusBadRequest, "email_taken", "user already exists")
			return
		}
		h.log.InternalError("auth.signup: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	})
}
