package messages

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/amigomontador/backend/internal/domain"
	"github.com/amigomontador/backend/internal/dto"
	"github.com/amigomontador/backend/internal/service/chatservice"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type Service interface {
	List(ctx context.Context, userID, serviceID int) ([]domain.Message, error)
	Send(ctx context.Context, userID, serviceID int, content string) (*domain.Message, error)
	MarkRead(ctx context.Context, userID, serviceID int) error
	UnreadCount(ctx context.Context, userID int) (int, error)
}

var validate = validator.New()

type MessageHandler struct {
	chatService Service
}

func New(chatService Service) *MessageHandler {
	return &MessageHandler{
		chatService: chatService,
	}
}

// List godoc
//
//	@Summary	List a service's chat messages
//	@Tags		Messages
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{array}		dto.MessageResponseDTO
//	@Failure	403	{object}	utils.Response	"Not a participant"
//	@Security	BearerAuth
//	@Router		/api/services/{id}/messages [get]
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	messages, err := h.chatService.List(r.Context(), userID, serviceID)
	if err != nil {
		respondChatError(w, err)
		return
	}
	resp := make([]dto.MessageResponseDTO, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, toResponse(m))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Send godoc
//
//	@Summary	Send a chat message in a service
//	@Tags		Messages
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Service ID"
//	@Param		request	body		dto.SendMessageRequestDTO	true	"Message body"
//	@Success	201		{object}	dto.MessageResponseDTO
//	@Failure	403		{object}	utils.Response	"Not a participant"
//	@Failure	409		{object}	utils.Response	"Service was cancelled"
//	@Security	BearerAuth
//	@Router		/api/services/{id}/messages [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	var req dto.SendMessageRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	message, err := h.chatService.Send(r.Context(), userID, serviceID, req.Content)
	if err != nil {
		respondChatError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(*message))
}

// MarkRead godoc
//
//	@Summary	Mark the counterpart's messages in a service as read
//	@Tags		Messages
//	@Produce	json
//	@Param		id	path		int	true	"Service ID"
//	@Success	200	{object}	utils.Response
//	@Security	BearerAuth
//	@Router		/api/services/{id}/messages/read [post]
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)
	serviceID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid service id")
		return
	}

	if err := h.chatService.MarkRead(r.Context(), userID, serviceID); err != nil {
		respondChatError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Messages marked as read"})
}

// UnreadCount godoc
//
//	@Summary	Count unread messages across the user's services
//	@Tags		Messages
//	@Produce	json
//	@Success	200	{object}	dto.UnreadCountResponseDTO
//	@Security	BearerAuth
//	@Router		/api/messages/unread-count [get]
func (h *MessageHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(auth.UserIDKey).(int)

	count, err := h.chatService.UnreadCount(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UnreadCountResponseDTO{Total: count})
}

func respondChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chatservice.ErrServiceNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, chatservice.ErrNotParticipant):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, chatservice.ErrServiceCancelled):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toResponse(m domain.Message) dto.MessageResponseDTO {
	return dto.MessageResponseDTO{
		ID:        m.ID,
		ServiceID: m.ServiceID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		SentAt:    m.SentAt.Format(time.RFC3339),
	}
}
