package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/dto"
	"github.com/amigomontador/backend/internal/service/authservice"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	Register(ctx context.Context, reg authservice.Registration) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GenerateToken(userID int, userType string) (string, error)
}

var validate = validator.New()

type AuthHandler struct {
	authService Service
}

func New(authService Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register godoc
//
//	@Summary		Register a new user
//	@Description	Create a lojista or montador account with its role profile
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterRequestDTO	true	"Register request body"
//	@Success		201		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Username already taken"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(r.Context(), toRegistration(req))
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUsernameTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, authservice.ErrMissingProfile), errors.Is(err, authservice.ErrInvalidDocument):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	token, err := h.authService.GenerateToken(user.ID, user.UserType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusCreated, dto.AuthResponseDTO{
		Message:  "User successfully registered",
		Token:    token,
		UserID:   user.ID,
		UserType: user.UserType,
	})
}

// Login godoc
//
//	@Summary		Authenticate user
//	@Description	Log in with username and password and get a JWT token
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.LoginRequestDTO	true	"Login request body"
//	@Success		200		{object}	dto.AuthResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"Invalid credentials"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.authService.GenerateToken(user.ID, user.UserType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error generating token")
		return
	}
	w.Header().Set("Authorization", "Bearer "+token)
	utils.RespondWithJSON(w, http.StatusOK, dto.AuthResponseDTO{
		Message:  "User successfully authenticated",
		Token:    token,
		UserID:   user.ID,
		UserType: user.UserType,
	})
}

func toRegistration(req dto.RegisterRequestDTO) authservice.Registration {
	reg := authservice.Registration{
		User: &domain.User{
			Username: req.Username,
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			UserType: req.UserType,
		},
		Password: req.Password,
	}
	if req.Store != nil {
		reg.Store = &domain.Store{
			Name:           req.Store.Name,
			DocumentType:   req.Store.DocumentType,
			DocumentNumber: req.Store.DocumentNumber,
			Address:        req.Store.Address,
			City:           req.Store.City,
			State:          req.Store.State,
			CEP:            req.Store.CEP,
			Phone:          req.Store.Phone,
			LogoURL:        req.Store.LogoURL,
			MaterialTypes:  req.Store.MaterialTypes,
		}
	}
	if req.Assembler != nil {
		reg.Assembler = &domain.Assembler{
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
	return reg
}
