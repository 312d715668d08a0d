package applications

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/dto"
	"github.com/amigomontador/backend/internal/service/applicationservice"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
)

type Service interface {
	Apply(ctx context.Context, userID, serviceID int) (*domain.Application, error)
	Accept(ctx context.Context, userID, applicationID int) error
	Reject(ctx context.Context, userID, applicationID int) error
	ListForService(ctx context.Context, userID, serviceID int) ([]applicationservice.ApplicationDetails, error)
}

type ApplicationHandler struct {
	applicationService Service
}

func New(applicationService Service) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// Apply godoc
//
//	@Summary		Apply to an open service
//	@Description	Creates a pending application and opens the chat with the store
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path		int	true	"Service ID"
//	@Success		201	{object}	dto.ApplyResponseDTO
//	@Failure		403	{object}	utils.Response	"Pending evaluations"
//	@Failure		409	{object}	utils.Response	"Already applied or service unavailable"
//	@Security		BearerAuth
//	@Router			/api/services/{id}/apply [post]
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	application, err := h.applicationService.Apply(r.Context(), userID, serviceID)
	if err != nil {
		respondApplicationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ApplyResponseDTO{
		Application: toResponse(applicationservice.ApplicationDetails{Application: *application}),
		Message:     "Application submitted",
	})
}

// ListForService godoc
//
//	@Summary	List a service's applications with assembler details
//	@Tags		Applications
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{array}		dto.ApplicationResponseDTO
//	@Failure	403	{object}	utils.Response	"Not the service owner"
//	@Security	BearerAuth
//	@Router		/api/services/{id}/applications [get]
func (h *ApplicationHandler) ListForService(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	details, err := h.applicationService.ListForService(r.Context(), userID, serviceID)
	if err != nil {
		respondApplicationError(w, err)
		return
	}
	resp := make([]dto.ApplicationResponseDTO, 0, len(details))
	for _, d := range details {
		resp = append(resp, toResponse(d))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Accept godoc
//
//	@Summary		Accept a pending application
//	@Description	Rejects the remaining pending applications of the service
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	utils.Response
//	@Failure		409	{object}	utils.Response	"Application already decided"
//	@Security		BearerAuth
//	@Router			/api/applications/{id}/accept [post]
func (h *ApplicationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.applicationService.Accept, "Application accepted")
}

// Reject godoc
//
//	@Summary		Reject a pending application
//	@Description	Returns the service to the open listing when no active application remains
//	@Tags			Applications
//	@Produce		json
//	@Param			id	path		int	true	"Application ID"
//	@Success		200	{object}	utils.Response
//	@Failure		409	{object}	utils.Response	"Application already decided"
//	@Security		BearerAuth
//	@Router			/api/applications/{id}/reject [post]
func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.applicationService.Reject, "Application rejected")
}

func (h *ApplicationHandler) decide(w http.ResponseWriter, r *http.Request,
	fn func(ctx context.Context, userID, applicationID int) error, message string) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	applicationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid application id")
		return
	}

	if err := fn(r.Context(), userID, applicationID); err != nil {
		respondApplicationError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func respondApplicationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, applicationservice.ErrServiceNotFound),
		errors.Is(err, applicationservice.ErrApplicationNotFound),
		errors.Is(err, applicationservice.ErrAssemblerNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, applicationservice.ErrNotOwner),
		errors.Is(err, applicationservice.ErrPendingEvaluations):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, applicationservice.ErrAlreadyApplied),
		errors.Is(err, applicationservice.ErrAlreadyDecided),
		errors.Is(err, applicationservice.ErrServiceUnavailable):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(d applicationservice.ApplicationDetails) dto.ApplicationResponseDTO {
	return dto.ApplicationResponseDTO{
		ID:            d.Application.ID,
		ServiceID:     d.Application.ServiceID,
		AssemblerID:   d.Application.AssemblerID,
		AssemblerName: d.AssemblerName,
		Rating:        d.RatingAvg,
		Status:        d.Application.Status,
		CreatedAt:     d.Application.CreatedAt.Format(time.RFC3339),
	}
}
