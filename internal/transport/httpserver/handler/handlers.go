package handler

import (
	"net/http"

	animalsdomain "herdbook-go/internal/domain/animals"
	breedsdomain "herdbook-go/internal/domain/breeds"
	farmsdomain "herdbook-go/internal/domain/farms"
	notificationsdomain "herdbook-go/internal/domain/notifications"
	statsdomain "herdbook-go/internal/domain/stats"
	usersdomain "herdbook-go/internal/domain/users"
	"herdbook-go/pkg/logger"
)

type Handlers struct {
	Animals       *animalsdomain.Service
	Breeds        *breedsdomain.Service
	Farms         *farmsdomain.Service
	Stats         *statsdomain.Service
	Notifications *notificationsdomain.Service
	Users         *usersdomain.Service
	log           logger.Logger
}

func New(
	animals *animalsdomain.Service,
	breeds *breedsdomain.Service,
	farms *farmsdomain.Service,
	stats *statsdomain.Service,
	notifications *notificationsdomain.Service,
	users *usersdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Animals:       animals,
		Breeds:        breeds,
		Farms:         farms,
		Stats:         stats,
		Notifications: notifications,
		Users:         users,
		log:           log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
