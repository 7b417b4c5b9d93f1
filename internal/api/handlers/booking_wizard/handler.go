package booking_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	"github.com/m04kA/Salon-BookingService/internal/api/middleware"
	"github.com/m04kA/Salon-BookingService/internal/service/wizard"
	createAppointment "github.com/m04kA/Salon-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgMissingSessionID     = "отсутствует ID сессии"
	msgSessionNotFound      = "сессия не найдена"
	msgSalonNotFound        = "салон не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgProfessionalNotFound = "мастер не найден"
	msgInvalidInput         = "некорректные данные"
	msgSelectionIncomplete  = "выберите салон, услугу, мастера, дату и время перед подтверждением"
	msgAlreadyConfirmed     = "сессия уже подтверждена"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleStart POST /api/v1/wizard/sessions
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /wizard/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Start(r.Context(), &wizard.StartRequest{
		ClientID:       clientID,
		ClientName:     req.ClientName,
		SalonID:        req.SalonID,
		ServiceID:      req.ServiceID,
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		h.respondError(w, "POST /wizard/sessions", "", err)
		return
	}

	h.logger.Info("POST /wizard/sessions - Session started: session_id=%s, client_id=%d, step=%s",
		session.ID, clientID, session.Step)
	handlers.RespondJSON(w, http.StatusCreated, FromSession(session))
}

// HandleGet GET /api/v1/wizard/sessions/{sessionId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "GET /wizard/sessions/{id}")
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "GET /wizard/sessions/{id}", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleSelectSalon POST /api/v1/wizard/sessions/{sessionId}/salon
func (h *Handler) HandleSelectSalon(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "POST /wizard/sessions/{id}/salon")
	if !ok {
		return
	}

	var req SelectSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/salon - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectSalon(r.Context(), sessionID, req.SalonID)
	if err != nil {
		h.respondError(w, "POST /wizard/sessions/{id}/salon", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleSelectService POST /api/v1/wizard/sessions/{sessionId}/service
func (h *Handler) HandleSelectService(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "POST /wizard/sessions/{id}/service")
	if !ok {
		return
	}

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectService(r.Context(), sessionID, req.ServiceID)
	if err != nil {
		h.respondError(w, "POST /wizard/sessions/{id}/service", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleSelectProfessional POST /api/v1/wizard/sessions/{sessionId}/professional
func (h *Handler) HandleSelectProfessional(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "POST /wizard/sessions/{id}/professional")
	if !ok {
		return
	}

	var req SelectProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/professional - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectProfessional(r.Context(), sessionID, req.ProfessionalID)
	if err != nil {
		h.respondError(w, "POST /wizard/sessions/{id}/professional", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleSelectDateTime POST /api/v1/wizard/sessions/{sessionId}/datetime
func (h *Handler) HandleSelectDateTime(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "POST /wizard/sessions/{id}/datetime")
	if !ok {
		return
	}

	var req SelectDateTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/datetime - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectDateTime(r.Context(), sessionID,
		types.DateString(req.Date), types.TimeString(req.Time))
	if err != nil {
		h.respondError(w, "POST /wizard/sessions/{id}/datetime", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleBack POST /api/v1/wizard/sessions/{sessionId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "POST /wizard/sessions/{id}/back")
	if !ok {
		return
	}

	session, err := h.service.Back(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "POST /wizard/sessions/{id}/back", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleReset POST /api/v1/wizard/sessions/{sessionId}/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "POST /wizard/sessions/{id}/reset")
	if !ok {
		return
	}

	session, err := h.service.Reset(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "POST /wizard/sessions/{id}/reset", sessionID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleConfirm POST /api/v1/wizard/sessions/{sessionId}/confirm
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "POST /wizard/sessions/{id}/confirm")
	if !ok {
		return
	}

	session, err := h.service.Confirm(r.Context(), sessionID)
	if err != nil {
		h.respondError(w, "POST /wizard/sessions/{id}/confirm", sessionID, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/confirm - Appointment created: session_id=%s, appointment_id=%s",
		sessionID, session.AppointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromSession(session))
}

// HandleAbandon DELETE /api/v1/wizard/sessions/{sessionId}
func (h *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r, "DELETE /wizard/sessions/{id}")
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), sessionID); err != nil {
		h.respondError(w, "DELETE /wizard/sessions/{id}", sessionID, err)
		return
	}

	h.logger.Info("DELETE /wizard/sessions/{id} - Session abandoned: session_id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}

// sessionID извлекает ID сессии из path-параметров
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]
	if sessionID == "" {
		h.logger.Warn("%s - Missing session ID", op)
		handlers.RespondBadRequest(w, msgMissingSessionID)
		return "", false
	}
	return sessionID, true
}

// respondError единое отображение ошибок сервиса мастера на HTTP статусы
func (h *Handler) respondError(w http.ResponseWriter, op, sessionID string, err error) {
	switch {
	case errors.Is(err, wizard.ErrSessionNotFound):
		h.logger.Warn("%s - Session not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, wizard.ErrSalonNotFound),
		errors.Is(err, createAppointment.ErrSalonNotFound):
		h.logger.Warn("%s - Salon not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgSalonNotFound)

	case errors.Is(err, wizard.ErrServiceNotFound),
		errors.Is(err, createAppointment.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, wizard.ErrProfessionalNotFound),
		errors.Is(err, createAppointment.ErrProfessionalNotFound):
		h.logger.Warn("%s - Professional not found: session_id=%s", op, sessionID)
		handlers.RespondNotFound(w, msgProfessionalNotFound)

	case errors.Is(err, wizard.ErrSelectionIncomplete):
		h.logger.Warn("%s - Selection incomplete: session_id=%s", op, sessionID)
		handlers.RespondConflict(w, msgSelectionIncomplete)

	case errors.Is(err, wizard.ErrAlreadyConfirmed):
		h.logger.Warn("%s - Session already confirmed: session_id=%s", op, sessionID)
		handlers.RespondConflict(w, msgAlreadyConfirmed)

	case errors.Is(err, wizard.ErrInvalidInput),
		errors.Is(err, createAppointment.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: session_id=%s, error=%v", op, sessionID, err)
		handlers.RespondInternalError(w)
	}
}
