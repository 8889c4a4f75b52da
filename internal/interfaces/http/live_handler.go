package http

import (
	"context"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/partes-app/partes-api/internal/application/dto"
	"github.com/partes-app/partes-api/internal/application/live"
	"github.com/partes-app/partes-api/pkg/jwt"
)

// LiveHandler expone las vistas en vivo por WebSocket. El cliente se suscribe
// a colecciones y recibe, ante cada cambio, el resultado completo de la
// colección afectada (sin diffs).
type LiveHandler struct {
	hub       *live.Hub
	jwtSecret string
}

// NewLiveHandler construye el handler.
func NewLiveHandler(hub *live.Hub, jwtSecret string) *LiveHandler {
	return &LiveHandler{hub: hub, jwtSecret: jwtSecret}
}

// Upgrade valida el token y exige el upgrade a WebSocket. Los navegadores no
// pueden fijar headers en el handshake, así que el token también se acepta
// por query string (?token=).
func (h *LiveHandler) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(dto.ErrorResponse{Code: "UPGRADE_REQUIRED", Message: "se requiere conexión WebSocket"})
	}
	tokenString := c.Query("token")
	if tokenString == "" {
		if parts := strings.SplitN(c.Get("Authorization"), " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenString = strings.TrimSpace(parts[1])
		}
	}
	if tokenString == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token requerido"})
	}
	userID, email, err := jwt.Parse(h.jwtSecret, tokenString)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
	}
	c.Locals(LocalUserID, userID)
	c.Locals(LocalEmail, email)
	return c.Next()
}

// Serve godoc
// @Summary      Vistas en vivo por WebSocket
// @Description  Suscripción a colecciones (items, movements, serials,
//
//	partners). Cada mensaje es el snapshot completo de una colección.
//
// @Tags         live
// @Param        token        query  string  true   "JWT"
// @Param        collections  query  string  false  "lista separada por comas (default: todas)"
// @Router       /api/live [get]
func (h *LiveHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ownerID, _ := conn.Locals(LocalUserID).(string)
		if ownerID == "" {
			_ = conn.Close()
			return
		}

		collections := parseCollections(conn.Query("collections"))

		sub := h.hub.Subscribe(context.Background(), ownerID, collections)
		defer h.hub.Unsubscribe(sub)

		// Lector: solo detecta el cierre del lado del cliente.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case snap, ok := <-sub.C():
				if !ok {
					return
				}
				if err := conn.WriteJSON(snap); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	})
}

// parseCollections interpreta la lista separada por comas; vacío = todas.
func parseCollections(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{
			live.CollectionItems,
			live.CollectionMovements,
			live.CollectionSerials,
			live.CollectionPartners,
		}
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
