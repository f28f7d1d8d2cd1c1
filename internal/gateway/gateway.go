package gateway

import (
	"context"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/hinjavav/lan-chat-app/internal/config"
	"github.com/hinjavav/lan-chat-app/internal/persistence"
)

const connectionsKey = "gateway:connections"

// welcomeFrame is the only protocol the socket channel speaks.
type welcomeFrame struct {
	Event string `json:"event"`
	Data  string `json:"data"`
}

// Gateway runs the websocket channel on its own port. Each connection
// receives a single welcome event; the connection count is kept as a
// Redis gauge so operators can see live clients (the users table's
// is_online flag is only ever set, never cleared).
type Gateway struct {
	app    *fiber.App
	cfg    config.GatewayConfig
	redis  *persistence.Redis
	logger *zap.Logger
}

// New builds the gateway app and its single route.
func New(cfg config.GatewayConfig, redis *persistence.Redis, logger *zap.Logger) *Gateway {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	g := &Gateway{app: app, cfg: cfg, redis: redis, logger: logger}

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(g.handleConnection))

	return g
}

// Listen blocks serving the gateway until shutdown.
func (g *Gateway) Listen() error {
	g.logger.Info("gateway listening", zap.String("addr", g.cfg.Addr()))
	return g.app.Listen(g.cfg.Addr())
}

// Shutdown stops the gateway listener.
func (g *Gateway) Shutdown() error {
	return g.app.Shutdown()
}

func (g *Gateway) handleConnection(conn *websocket.Conn) {
	ctx := context.Background()
	g.redis.Incr(ctx, connectionsKey)
	defer g.redis.Decr(ctx, connectionsKey)

	g.logger.Info("client connected", zap.String("remote", conn.RemoteAddr().String()))

	if err := conn.WriteJSON(welcomeFrame{Event: "welcome", Data: "Welcome to LAN Chat Server"}); err != nil {
		g.logger.Warn("welcome write failed", zap.Error(err))
		return
	}

	// Drain until the peer goes away. No further protocol is defined.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	g.logger.Info("client disconnected", zap.String("remote", conn.RemoteAddr().String()))
}
