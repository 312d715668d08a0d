package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/dto"
	"github.com/amigomontador/backend/internal/service/servicesvc"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	Create(ctx context.Context, userID int, service *domain.Service) error
	Browse(ctx context.Context, userID int) ([]domain.ServiceWithDistance, error)
	Active(ctx context.Context, userID int, userType string) ([]domain.Service, error)
	History(ctx context.Context, userID int, userType string) ([]domain.Service, error)
	Get(ctx context.Context, userID, serviceID int) (*domain.Service, error)
	EditService(ctx context.Context, userID, serviceID int, upd servicesvc.Edit) (*domain.Service, error)
	Transition(ctx context.Context, userID, serviceID int, to string) error
	Complete(ctx context.Context, userID, serviceID int) error
	Delete(ctx context.Context, userID, serviceID int) error
}

var validate = validator.New()

type ServiceHandler struct {
	serviceService Service
}

func New(serviceService Service) *ServiceHandler {
	return &ServiceHandler{
		serviceService: serviceService,
	}
}

// Create godoc
//
//	@Summary		Post a new assembly service
//	@Description	Only lojistas with no pending evaluations may post
//	@Tags			Services
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateServiceRequestDTO	true	"Service to post"
//	@Success		201		{object}	dto.ServiceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		403		{object}	utils.Response	"Pending evaluations"
//	@Security		BearerAuth
//	@Router			/api/services [post]
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	service := &domain.Service{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		CEP:          req.CEP,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Price:        req.Price,
		MaterialType: req.MaterialType,
		ProjectFiles: req.ProjectFiles,
	}
	if err := h.serviceService.Create(r.Context(), userID, service); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*service, -1))
}

// Browse godoc
//
//	@Summary	List open services matching the montador's specialties and radius
//	@Tags		Services
//	@Produce	json
//	@Success	200	{array}		dto.ServiceResponseDTO
//	@Failure	404	{object}	utils.Response	"Assembler profile not found"
//	@Security	BearerAuth
//	@Router		/api/services [get]
func (h *ServiceHandler) Browse(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	services, err := h.serviceService.Browse(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	resp := make([]dto.ServiceResponseDTO, 0, len(services))
	for _, svc := range services {
		resp = append(resp, toResponse(svc.Service, svc.DistanceKm))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Active godoc
//
//	@Summary	List the user's open and in-progress services
//	@Tags		Services
//	@Produce	json
//	@Success	200	{array}	dto.ServiceResponseDTO
//	@Security	BearerAuth
//	@Router		/api/services/active [get]
func (h *ServiceHandler) Active(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.serviceService.Active)
}

// History godoc
//
//	@Summary	List the user's completed and cancelled services
//	@Tags		Services
//	@Produce	json
//	@Success	200	{array}	dto.ServiceResponseDTO
//	@Security	BearerAuth
//	@Router		/api/services/history [get]
func (h *ServiceHandler) History(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.serviceService.History)
}

func (h *ServiceHandler) list(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, userID int, userType string) ([]domain.Service, error)) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	userType, _ := r.Context().Value(auth.UserTypeKey).(string)

	services, err := fn(r.Context(), userID, userType)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	resp := make([]dto.ServiceResponseDTO, 0, len(services))
	for _, svc := range services {
		resp = append(resp, toResponse(svc, -1))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary	Get one service
//	@Tags		Services
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{object}	dto.ServiceResponseDTO
//	@Failure	404	{object}	utils.Response	"Service not found"
//	@Security	BearerAuth
//	@Router		/api/services/{id} [get]
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	service, err := h.serviceService.Get(r.Context(), userID, serviceID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*service, -1))
}

// Edit godoc
//
//	@Summary	Edit an open service's fields
//	@Tags		Services
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Service ID"
//	@Param		request	body		dto.UpdateServiceRequestDTO	true	"Fields to change"
//	@Success	200		{object}	dto.ServiceResponseDTO
//	@Failure	403		{object}	utils.Response	"Service belongs to another store"
//	@Failure	409		{object}	utils.Response	"Service is no longer open"
//	@Security	BearerAuth
//	@Router		/api/services/{id} [patch]
func (h *ServiceHandler) Edit(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	var req dto.UpdateServiceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	service, err := h.serviceService.EditService(r.Context(), userID, serviceID, servicesvc.Edit{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Price:        req.Price,
		MaterialType: req.MaterialType,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*service, -1))
}

// UpdateStatus godoc
//
//	@Summary	Move a service to another status
//	@Tags		Services
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Service ID"
//	@Param		request	body		dto.UpdateServiceStatusRequestDTO	true	"Target status"
//	@Success	200		{object}	utils.Response
//	@Failure	409		{object}	utils.Response	"Transition not allowed"
//	@Security	BearerAuth
//	@Router		/api/services/{id}/status [patch]
func (h *ServiceHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	var req dto.UpdateServiceStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.serviceService.Transition(r.Context(), userID, serviceID, req.Status); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Service status updated"})
}

// Complete godoc
//
//	@Summary	Mark an in-progress service as completed
//	@Tags		Services
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{object}	utils.Response
//	@Failure	409	{object}	utils.Response	"Service is not in progress"
//	@Security	BearerAuth
//	@Router		/api/services/{id}/complete [post]
func (h *ServiceHandler) Complete(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	if err := h.serviceService.Complete(r.Context(), userID, serviceID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Service completed"})
}

// Delete godoc
//
//	@Summary	Delete an open service
//	@Tags		Services
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{object}	utils.Response
//	@Failure	409	{object}	utils.Response	"Service is no longer open"
//	@Security	BearerAuth
//	@Router		/api/services/{id} [delete]
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := pathID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	if err := h.serviceService.Delete(r.Context(), userID, serviceID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Service deleted"})
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, servicesvc.ErrServiceNotFound),
		errors.Is(err, servicesvc.ErrStoreNotFound),
		errors.Is(err, servicesvc.ErrAssemblerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, servicesvc.ErrNotOwner), errors.Is(err, servicesvc.ErrNotAllowed):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, servicesvc.ErrPendingEvaluations):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, servicesvc.ErrInvalidTransition), errors.Is(err, servicesvc.ErrServiceNotOpen):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(svc domain.Service, distanceKm float64) dto.ServiceResponseDTO {
	resp := dto.ServiceResponseDTO{
		ID:           svc.ID,
		StoreID:      svc.StoreID,
		Title:        svc.Title,
		Description:  svc.Description,
		Location:     svc.Location,
		Latitude:     svc.Latitude,
		Longitude:    svc.Longitude,
		StartDate:    svc.StartDate,
		EndDate:      svc.EndDate,
		Price:        svc.Price,
		Status:       svc.Status,
		MaterialType: svc.MaterialType,
		ProjectFiles: svc.ProjectFiles,
		CreatedAt:    svc.CreatedAt.Format(time.RFC3339),
	}
	if distanceKm >= 0 {
		resp.DistanceKm = distanceKm
	}
	return resp
}
