package handler

import (
	"net/http"
)

type breedResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ListBreeds is public: the signup and animal forms need the breed catalog
// before a session exists.
func (h *Handlers) ListBreeds(w http.ResponseWriter, r *http.Request) {
	list, err := h.Breeds.List(r.Context())
	if err != nil {
		h.log.InternalError("breeds.list: failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	out := make([]breedResponse, 0, len(list))
	for _, breed := range list {
		out = append(out, breedResponse{ID: breed.ID, Name: breed.Name})
	}

	writeJSON(w, http.StatusOK, out)
}
