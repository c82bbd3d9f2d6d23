package entity

import (
	"encoding/json"
	"time"
)

// Remetentes válidos para Message.
const (
	SenderCustomer = "customer"
	SenderBot      = "bot"
	SenderSeller   = "seller"
)

// Tipos de mensagem.
const (
	MessageText        = "text"
	MessageProduct     = "product"
	MessageProductList = "product_list"
	MessageImage       = "image"
)

// Message pertence a exatamente uma Conversation. Imutável após criada,
// exceto pelo flag Read. Metadata carrega payload estruturado do bot
// (produto ou lista de produtos anexada à resposta).
type Message struct {
	ID             string          `json:"id"`
	ConversationID string          `json:"conversationId"`
	Sender         string          `json:"sender"` // customer, bot, seller
	Type           string          `json:"type"`   // text, product, product_list, image
	Content        string          `json:"content"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	Read           bool            `json:"read"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ValidSender informa se o remetente é um dos três conhecidos.
func ValidSender(s string) bool {
	return s == SenderCustomer || s == SenderBot || s == SenderSeller
}

// ValidMessageType informa se o tipo de mensagem é conhecido.
func ValidMessageType(t string) bool {
	switch t {
	case MessageText, MessageProduct, MessageProductList, MessageImage:
		return true
	}
	return false
}
