package api

import (
	"log/slog"
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// handleWebSocket upgrades GET /ws and hands the connection to the
// connection manager, which owns its lifecycle from here.
func (s *Server) handleWebSocket(c *gin.Context) {
	opts := &websocket.AcceptOptions{}
	if s.cfg != nil && len(s.cfg.Server.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.Server.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		slog.Warn("WebSocket upgrade failed", "error", err)
		c.Status(http.StatusBadRequest)
		return
	}

	s.ws.HandleConnection(c.Request.Context(), conn)
}
