package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
)

// newTestClient cria um cliente sem conexão real; os testes do Hub só
// exercitam o canal send.
func newTestClient(h *Hub, buffer int) *Client {
	return &Client{hub: h, send: make(chan []byte, buffer)}
}

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(zerolog.Nop())
	go h.Run()
	return h
}

func recvEvent(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case payload, ok := <-c.send:
		require.True(t, ok, "canal do cliente não pode estar fechado")
		var ev Event
		require.NoError(t, json.Unmarshal(payload, &ev))
		return ev
	case <-time.After(time.Second):
		t.Fatal("timeout esperando evento do hub")
		return Event{}
	}
}

func TestHub_BroadcastAlcancaTodosOsClientes(t *testing.T) {
	h := startHub(t)
	a := newTestClient(h, sendBuffer)
	b := newTestClient(h, sendBuffer)
	h.register <- a
	h.register <- b

	msg := &entity.Message{
		ID:             "m1",
		ConversationID: "c1",
		Sender:         entity.SenderCustomer,
		Type:           entity.MessageText,
		Content:        "oi",
	}
	h.BroadcastNewMessage(msg)

	for _, c := range []*Client{a, b} {
		ev := recvEvent(t, c)
		assert.Equal(t, "new_message", ev.Type)

		data, err := json.Marshal(ev.Data)
		require.NoError(t, err)
		var got entity.Message
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, "m1", got.ID)
		assert.Equal(t, "c1", got.ConversationID)
	}
}

func TestHub_UnregisterFechaOCanal(t *testing.T) {
	h := startHub(t)
	c := newTestClient(h, sendBuffer)
	h.register <- c
	h.unregister <- c

	select {
	case _, ok := <-c.send:
		assert.False(t, ok, "canal deve ser fechado no unregister")
	case <-time.After(time.Second):
		t.Fatal("timeout esperando fechamento do canal")
	}
}

func TestHub_ClienteLentoEDerrubado(t *testing.T) {
	h := startHub(t)
	slow := newTestClient(h, 1)
	fast := newTestClient(h, sendBuffer)
	h.register <- slow
	h.register <- fast

	// Enche o buffer do lento; o segundo broadcast não cabe e o Hub o derruba.
	h.Broadcast(Event{Type: "ping"})
	h.Broadcast(Event{Type: "ping"})

	require.Eventually(t, func() bool {
		// Drena o que couber; canal fechado encerra com ok=false.
		for {
			select {
			case _, ok := <-slow.send:
				if !ok {
					return true
				}
			default:
				return false
			}
		}
	}, time.Second, 10*time.Millisecond, "cliente com buffer cheio deve ser removido")

	// O cliente rápido continua recebendo.
	h.Broadcast(Event{Type: "ping"})
	deadline := time.After(time.Second)
	received := 0
	for received < 3 {
		select {
		case _, ok := <-fast.send:
			require.True(t, ok)
			received++
		case <-deadline:
			t.Fatalf("cliente rápido recebeu só %d eventos", received)
		}
	}
}
