package ratings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/dto"
	"github.com/amigomontador/backend/internal/service/ratingservice"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	Create(ctx context.Context, fromUserID int, rating *domain.Rating) error
	ListForService(ctx context.Context, userID, serviceID int) ([]domain.Rating, error)
	Pending(ctx context.Context, userID int) ([]domain.PendingEvaluation, error)
}

var validate = validator.New()

type RatingHandler struct {
	ratingService Service
}

func New(ratingService Service) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// Create godoc
//
//	@Summary		Rate the counterpart of a completed service
//	@Description	One rating per direction per service
//	@Tags			Ratings
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Service ID"
//	@Param			request	body		dto.CreateRatingRequestDTO	true	"Rating body"
//	@Success		201		{object}	dto.RatingResponseDTO
//	@Failure		403		{object}	utils.Response	"Not a participant"
//	@Failure		409		{object}	utils.Response	"Rating already submitted"
//	@Security		BearerAuth
//	@Router			/api/services/{id}/rate [post]
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	var req dto.CreateRatingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	rating := &domain.Rating{
		ServiceID: serviceID,
		ToUserID:  req.ToUserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := h.ratingService.Create(r.Context(), userID, rating); err != nil {
		respondRatingError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*rating))
}

// ListForService godoc
//
//	@Summary	List a service's ratings
//	@Tags		Ratings
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{array}		dto.RatingResponseDTO
//	@Failure	403	{object}	utils.Response	"Not a participant"
//	@Security	BearerAuth
//	@Router		/api/services/{id}/ratings [get]
func (h *RatingHandler) ListForService(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	ratings, err := h.ratingService.ListForService(r.Context(), userID, serviceID)
	if err != nil {
		respondRatingError(w, err)
		return
	}
	resp := make([]dto.RatingResponseDTO, 0, len(ratings))
	for _, rt := range ratings {
		resp = append(resp, toResponse(rt))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Pending godoc
//
//	@Summary		List the user's pending evaluations
//	@Description	A non-empty list blocks posting services and applying
//	@Tags			Ratings
//	@Produce		json
//	@Success		200	{array}	dto.PendingEvaluationDTO
//	@Security		BearerAuth
//	@Router			/api/services/pending-evaluations [get]
func (h *RatingHandler) Pending(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	pending, err := h.ratingService.Pending(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.PendingEvaluationDTO, 0, len(pending))
	for _, p := range pending {
		resp = append(resp, dto.PendingEvaluationDTO{
			ServiceID:     p.ServiceID,
			ServiceTitle:  p.ServiceTitle,
			OtherUserID:   p.OtherUserID,
			OtherUserName: p.OtherUserName,
			OtherUserType: p.OtherUserType,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func respondRatingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ratingservice.ErrServiceNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ratingservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ratingservice.ErrServiceNotCompleted),
		errors.Is(err, ratingservice.ErrInvalidTarget):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ratingservice.ErrDuplicateRating):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(rt domain.Rating) dto.RatingResponseDTO {
	return dto.RatingResponseDTO{
		ID:         rt.ID,
		ServiceID:  rt.ServiceID,
		FromUserID: rt.FromUserID,
		ToUserID:   rt.ToUserID,
		Rating:     rt.Rating,
		Comment:    rt.Comment,
		CreatedAt:  rt.CreatedAt.Format(time.RFC3339),
	}
}
