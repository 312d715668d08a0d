package bankaccounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/dto"
	"github.com/amigomontador/backend/internal/service/bankservice"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	List(ctx context.Context, userID int) ([]domain.BankAccount, error)
	Get(ctx context.Context, userID, accountID int) (*domain.BankAccount, error)
	Create(ctx context.Context, userID int, account *domain.BankAccount) error
	Update(ctx context.Context, userID int, account *domain.BankAccount) error
	Delete(ctx context.Context, userID, accountID int) error
}

var validate = validator.New()

type BankAccountHandler struct {
	bankService Service
}

func New(bankService Service) *BankAccountHandler {
	return &BankAccountHandler{
		bankService: bankService,
	}
}

// List godoc
//
//	@Summary	List the user's bank accounts
//	@Tags		BankAccounts
//	@Produce	json
//	@Success	200	{array}	dto.BankAccountResponseDTO
//	@Security	BearerAuth
//	@Router		/api/bank-accounts [get]
func (h *BankAccountHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	accounts, err := h.bankService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	resp := make([]dto.BankAccountResponseDTO, 0, len(accounts))
	for _, account := range accounts {
		resp = append(resp, toResponse(account))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Create godoc
//
//	@Summary	Register a bank account for payouts
//	@Tags		BankAccounts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BankAccountRequestDTO	true	"Account body"
//	@Success	201		{object}	dto.BankAccountResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid request body or PIX key"
//	@Security	BearerAuth
//	@Router		/api/bank-accounts [post]
func (h *BankAccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	account, ok := decodeAccount(w, r)
	if !ok {
		return
	}
	if err := h.bankService.Create(r.Context(), userID, account); err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*account))
}

// Get godoc
//
//	@Summary	Fetch one bank account
//	@Tags		BankAccounts
//	@Produce	json
//	@Param		id	path		int	true	"Account ID"
//	@Success	200	{object}	dto.BankAccountResponseDTO
//	@Failure	403	{object}	utils.Response	"Account belongs to another user"
//	@Security	BearerAuth
//	@Router		/api/bank-accounts/{id} [get]
func (h *BankAccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, err := h.bankService.Get(r.Context(), userID, accountID)
	if err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*account))
}

// Update godoc
//
//	@Summary	Update a bank account
//	@Tags		BankAccounts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int							true	"Account ID"
//	@Param		request	body		dto.BankAccountRequestDTO	true	"Account body"
//	@Success	200		{object}	dto.BankAccountResponseDTO
//	@Failure	403		{object}	utils.Response	"Account belongs to another user"
//	@Security	BearerAuth
//	@Router		/api/bank-accounts/{id} [patch]
func (h *BankAccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	account, ok := decodeAccount(w, r)
	if !ok {
		return
	}
	account.ID = accountID
	if err := h.bankService.Update(r.Context(), userID, account); err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(*account))
}

// Delete godoc
//
//	@Summary	Delete a bank account
//	@Tags		BankAccounts
//	@Produce	json
//	@Param		id	path		int	true	"Account ID"
//	@Success	200	{object}	utils.Response
//	@Failure	403	{object}	utils.Response	"Account belongs to another user"
//	@Security	BearerAuth
//	@Router		/api/bank-accounts/{id} [delete]
func (h *BankAccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	accountID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	if err := h.bankService.Delete(r.Context(), userID, accountID); err != nil {
		respondBankError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Bank account deleted"})
}

func decodeAccount(w http.ResponseWriter, r *http.Request) (*domain.BankAccount, bool) {
	var req dto.BankAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return nil, false
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return &domain.BankAccount{
		BankName:       req.BankName,
		AccountType:    req.AccountType,
		Agency:         req.Agency,
		AccountNumber:  req.AccountNumber,
		HolderName:     req.HolderName,
		HolderDocument: req.HolderDocument,
		PixKeyType:     req.PixKeyType,
		PixKey:         req.PixKey,
	}, true
}

func respondBankError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, bankservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bankservice.ErrNotOwner):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, bankservice.ErrInvalidPixKey):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(account domain.BankAccount) dto.BankAccountResponseDTO {
	return dto.BankAccountResponseDTO{
		ID:             account.ID,
		BankName:       account.BankName,
		AccountType:    account.AccountType,
		Agency:         account.Agency,
		AccountNumber:  account.AccountNumber,
		HolderName:     account.HolderName,
		HolderDocument: account.HolderDocument,
		PixKeyType:     account.PixKeyType,
		PixKey:         account.PixKey,
		CreatedAt:      account.CreatedAt.Format(time.RFC3339),
	}
}
