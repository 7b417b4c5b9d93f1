package list_notifications

import (
	"net/http"
	"strconv"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/notify"
)

const msgInvalidLimit = "некорректное значение limit"

// NotificationListResponse HTTP модель списка уведомлений
type NotificationListResponse struct {
	Notifications []notify.Notification `json:"notifications"`
}

type Handler struct {
	feed   NotificationFeed
	logger Logger
}

func NewHandler(feed NotificationFeed, logger Logger) *Handler {
	return &Handler{
		feed:   feed,
		logger: logger,
	}
}

// Handle GET /api/v1/notifications?limit=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /notifications - Invalid limit: limit=%s", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	notifications := h.feed.Recent(limit)

	handlers.RespondJSON(w, http.StatusOK, &NotificationListResponse{
		Notifications: notifications,
	})
}
