package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// UpgradeRequired garante que a rota só aceite handshakes WebSocket.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler devolve o handler fiber que registra a conexão no Hub e
// inicia as bombas de leitura e escrita.
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := NewClient(hub, conn)
		hub.register <- client

		go client.WritePump()
		// ReadPump bloqueia até a desconexão; o handler do fiber precisa
		// permanecer vivo enquanto a conexão existir.
		client.ReadPump()
	})
}
