package ws

import (
	"net/http"

	"github.com/amigomontador/backend/internal/notify"
	"github.com/amigomontador/backend/pkg/auth"
	"github.com/amigomontador/backend/pkg/utils"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// the browser WebSocket API cannot set headers, so the token travels
	// in the query string and origins are not restricted here
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	registry   *notify.Registry
	jwtService auth.JWTServiceInterface
}

func New(registry *notify.Registry, jwtService auth.JWTServiceInterface) *WSHandler {
	return &WSHandler{
		registry:   registry,
		jwtService: jwtService,
	}
}

// Connect godoc
//
//	@Summary		Open the notification WebSocket
//	@Description	Authenticates via the token query parameter and pushes JSON notification envelopes
//	@Tags			Notifications
//	@Param			token	query	string	true	"JWT token"
//	@Success		101
//	@Failure		401	{object}	utils.Response	"Invalid token"
//	@Router			/ws [get]
func (h *WSHandler) Connect(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Missing token")
		return
	}
	claims, err := h.jwtService.ValidateToken(token)
	if err != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.L().Error("can't upgrade websocket connection", zap.Error(err))
		return
	}

	client := notify.NewClient(claims.UserID, conn, h.registry)
	client.Start()

	h.registry.Send(claims.UserID, notify.NewNotification(
		notify.TypeConnection, 0, "Conectado ao servidor de notificações."))
}
