package handler

import (
	"net/http"
	"time"

	"herdbook-go/internal/transport/httpserver/middleware"
)

type notificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type notificationListResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	Pages         int                    `json:"pages"`
}

func (h *Handlers) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
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

	result, err := h.Notifications.List(r.Context(), userID, page, limit)
	if err != nil {
		h.log.InternalError("notifications.list: failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	items := make([]notificationResponse, 0, len(result.Items))
	for _, n := range result.Items {
		items = append(items, notificationResponse{
			ID:        n.ID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, notificationListResponse{
		Notifications: items,
		Total:         result.Total,
		Page:          result.Page,
		Pages:         result.Pages,
	})
}

func (h *Handlers) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
		return
	}

	if err := h.Notifications.MarkAllRead(r.Context(), userID); err != nil {
		h.log.InternalError("notifications.mark_all_read: failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
