package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/delivery"
	"github.com/x-xyz/storefront/domain/notification"
	authMiddleware "github.com/x-xyz/storefront/stores/auth/delivery/http/middleware"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

type handler struct {
	notification notification.Usecase
	upgrader     websocket.Upgrader
}

// New registers the toast routes. Websocket upgrades are accepted only from
// allowOrigins, any origin when it is empty.
func New(e *echo.Echo, nu notification.Usecase, authMiddleware *authMiddleware.AuthMiddleware, allowOrigins []string) {
	h := &handler{
		notification: nu,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowOrigins),
		},
	}

	g := e.Group("/notifications")
	g.GET("", h.list, authMiddleware.OptionalAuth())
	g.GET("/ws", h.stream, authMiddleware.OptionalAuth())
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	audience := notification.AudienceOf(authMiddleware.AddressOf(c))
	return delivery.MakeJsonResp(c, http.StatusOK, h.notification.List(ctx, audience))
}

// stream pushes add and remove events of the caller's audience until either
// side closes the connection.
func (h *handler) stream(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	audience := notification.AudienceOf(authMiddleware.AddressOf(c))

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		ctx.WithField("err", err).Warn("upgrader.Upgrade failed")
		return nil
	}
	defer conn.Close()

	events, cancel := h.notification.Subscribe(audience)
	defer cancel()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					ctx.WithField("err", err).Warn("unexpected websocket close")
				}
				return
			}
		}
	}()

	for _, toast := range h.notification.List(ctx, audience) {
		if err := write(conn, notification.Event{Type: notification.EventAdd, Toast: toast}); err != nil {
			return nil
		}
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			return nil
		case <-ctx.Done():
			return nil
		case e, ok := <-events:
			if !ok {
				return nil
			}
			if err := write(conn, e); err != nil {
				ctx.WithField("err", err).Info("websocket write failed")
				return nil
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return nil
			}
		}
	}
}

// checkOrigin lets through requests without an Origin header, those never
// come from a browser page
func checkOrigin(allowOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get(echo.HeaderOrigin)
		if origin == "" || len(allowOrigins) == 0 {
			return true
		}
		for _, o := range allowOrigins {
			if strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

func write(conn *websocket.Conn, e notification.Event) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(e)
}
