package catalog

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	catalogstore "github.com/m04kA/Salon-BookingService/internal/infra/storage/catalog"
)

const (
	msgMissingID            = "отсутствует ID"
	msgServiceNotFound      = "услуга не найдена"
	msgProfessionalNotFound = "мастер не найден"
	msgSalonNotFound        = "салон не найден"
)

type Handler struct {
	repo   CatalogRepository
	logger Logger
}

func NewHandler(repo CatalogRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// HandleListServices GET /api/v1/services
func (h *Handler) HandleListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.repo.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Services retrieved successfully: count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, FromDomainServiceList(services))
}

// HandleGetService GET /api/v1/services/{serviceId}
func (h *Handler) HandleGetService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	serviceID := vars["serviceId"]
	if serviceID == "" {
		h.logger.Warn("GET /services/{id} - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	service, err := h.repo.GetServiceByID(r.Context(), serviceID)
	if err != nil {
		switch {
		case errors.Is(err, catalogstore.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /services/{id} - Failed to get service: service_id=%s, error=%v", serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainService(service))
}

// HandleListProfessionals GET /api/v1/professionals
func (h *Handler) HandleListProfessionals(w http.ResponseWriter, r *http.Request) {
	employees, err := h.repo.ListEmployees(r.Context())
	if err != nil {
		h.logger.Error("GET /professionals - Failed to list professionals: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /professionals - Professionals retrieved successfully: count=%d", len(employees))
	handlers.RespondJSON(w, http.StatusOK, FromDomainEmployeeList(employees))
}

// HandleGetProfessional GET /api/v1/professionals/{professionalId}
func (h *Handler) HandleGetProfessional(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	professionalID := vars["professionalId"]
	if professionalID == "" {
		h.logger.Warn("GET /professionals/{id} - Missing professional ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	employee, err := h.repo.GetEmployeeByID(r.Context(), professionalID)
	if err != nil {
		switch {
		case errors.Is(err, catalogstore.ErrEmployeeNotFound):
			h.logger.Warn("GET /professionals/{id} - Professional not found: professional_id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		default:
			h.logger.Error("GET /professionals/{id} - Failed to get professional: professional_id=%s, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainEmployee(employee))
}

// HandleListSalons GET /api/v1/salons
func (h *Handler) HandleListSalons(w http.ResponseWriter, r *http.Request) {
	salons, err := h.repo.ListSalons(r.Context())
	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /salons - Salons retrieved successfully: count=%d", len(salons))
	handlers.RespondJSON(w, http.StatusOK, FromDomainSalonList(salons))
}

// HandleGetSalon GET /api/v1/salons/{salonId}
func (h *Handler) HandleGetSalon(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID := vars["salonId"]
	if salonID == "" {
		h.logger.Warn("GET /salons/{id} - Missing salon ID")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	salon, err := h.repo.GetSalonByID(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, catalogstore.ErrSalonNotFound):
			h.logger.Warn("GET /salons/{id} - Salon not found: salon_id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		default:
			h.logger.Error("GET /salons/{id} - Failed to get salon: salon_id=%s, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSalon(salon))
}
