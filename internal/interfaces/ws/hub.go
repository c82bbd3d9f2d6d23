// Package ws mantém as conexões WebSocket do painel e distribui eventos
// de novas mensagens para todos os atendentes conectados.
package ws

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

var _ usecase.Broadcaster = (*Hub)(nil)

// Event envelope enviado aos clientes conectados.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub é o dono do conjunto de conexões. Todo acesso ao mapa de clientes
// acontece dentro do loop de Run, via canais.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	log        zerolog.Logger
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run processa registros, saídas e broadcasts. Deve rodar em uma goroutine
// dedicada pela vida inteira do processo.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.log.Debug().Int("clients", len(h.clients)).Msg("cliente ws conectado")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.log.Debug().Int("clients", len(h.clients)).Msg("cliente ws desconectado")
			}
		case payload := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- payload:
				default:
					// Cliente lento: derruba para não travar o loop.
					close(client.send)
					delete(h.clients, client)
				}
			}
		}
	}
}

// BroadcastNewMessage publica uma mensagem persistida para todos os
// clientes conectados. O push é otimização de latência: o estado
// canônico continua sendo o banco, então falha de entrega aqui não
// compromete nada.
func (h *Hub) BroadcastNewMessage(msg *entity.Message) {
	h.Broadcast(Event{Type: "new_message", Data: msg})
}

// Broadcast serializa e enfileira um evento arbitrário.
func (h *Hub) Broadcast(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Str("type", event.Type).Msg("serializar evento ws")
		return
	}
	h.broadcast <- payload
}
