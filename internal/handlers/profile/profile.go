package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/dto"
	"github.com/amigomontador/backend/internal/service/profileservice"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	Get(ctx context.Context, userID int) (*profileservice.Profile, error)
	Update(ctx context.Context, userID int, upd profileservice.Update) (*profileservice.Profile, error)
}

var validate = validator.New()

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// Get godoc
//
//	@Summary	Get the authenticated user's profile
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Failure	401	{object}	utils.Response	"Unauthorized"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Security	BearerAuth
//	@Router		/api/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(profile))
}

// GetByID godoc
//
//	@Summary	Get another user's public profile
//	@Description	Counterpart profile shown in chat and application views
//	@Tags		Profile
//	@Produce	json
//	@Param		id	path		int	true	"User ID"
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Failure	400	{object}	utils.Response	"Invalid user id"
//	@Failure	404	{object}	utils.Response	"User not found"
//	@Security	BearerAuth
//	@Router		/api/users/{id}/profile [get]
func (h *ProfileHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(profile))
}

// Update godoc
//
//	@Summary	Update the authenticated user's profile
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpdateProfileRequestDTO	true	"Profile fields to change"
//	@Success	200		{object}	dto.ProfileResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body"
//	@Failure	401		{object}	utils.Response	"Unauthorized"
//	@Security	BearerAuth
//	@Router		/api/profile [patch]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.profileService.Update(r.Context(), userID, toUpdate(req))
	if err != nil {
		if errors.Is(err, profileservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(profile))
}

func toUpdate(req dto.UpdateProfileRequestDTO) profileservice.Update {
	upd := profileservice.Update{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.Store != nil {
		upd.Store = &domain.Store{
			Name:          req.Store.Name,
			Address:       req.Store.Address,
			City:          req.Store.City,
			State:         req.Store.State,
			CEP:           req.Store.CEP,
			Phone:         req.Store.Phone,
			LogoURL:       req.Store.LogoURL,
			MaterialTypes: req.Store.MaterialTypes,
		}
	}
	if req.Assembler != nil {
		upd.Assembler = &domain.Assembler{
			Address:             req.Assembler.Address,
			City:                req.Assembler.City,
			State:               req.Assembler.State,
			CEP:                 req.Assembler.CEP,
			Specialties:         req.Assembler.Specialties,
			TechnicalAssistance: req.Assembler.TechnicalAssistance,
			Experience:          req.Assembler.Experience,
			WorkRadiusKm:        req.Assembler.WorkRadiusKm,
			Documents:           req.Assembler.Documents,
		}
	}
	return upd
}

func toResponse(p *profileservice.Profile) dto.ProfileResponseDTO {
	resp := dto.ProfileResponseDTO{
		ID:       p.User.ID,
		Username: p.User.Username,
		Name:     p.User.Name,
		Email:    p.User.Email,
		Phone:    p.User.Phone,
		UserType: p.User.UserType,
	}
	if p.Store != nil {
		resp.Store = &dto.StoreProfileDTO{
			Name:           p.Store.Name,
			DocumentType:   p.Store.DocumentType,
			DocumentNumber: p.Store.DocumentNumber,
			Address:        p.Store.Address,
			City:           p.Store.City,
			State:          p.Store.State,
			CEP:            p.Store.CEP,
			Phone:          p.Store.Phone,
			LogoURL:        p.Store.LogoURL,
			MaterialTypes:  p.Store.MaterialTypes,
		}
	}
	if p.Assembler != nil {
		resp.Assembler = &dto.AssemblerProfileDTO{
			Address:             p.Assembler.Address,
			City:                p.Assembler.City,
			State:               p.Assembler.State,
			CEP:                 p.Assembler.CEP,
			Specialties:         p.Assembler.Specialties,
			TechnicalAssistance: p.Assembler.TechnicalAssistance,
			Experience:          p.Assembler.Experience,
			WorkRadiusKm:        p.Assembler.WorkRadiusKm,
			Documents:           p.Assembler.Documents,
		}
		resp.Rating = p.Assembler.RatingAvg
	}
	return resp
}
