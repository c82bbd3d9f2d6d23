package entity

import "time"

// BotSettings parametriza as respostas do bot: mensagem de boas-vindas,
// formas de pagamento e horário de funcionamento. Linha única no banco.
type BotSettings struct {
	ID             string    `json:"id"`
	WelcomeMessage string    `json:"welcomeMessage"`
	PaymentMethods []string  `json:"paymentMethods"`
	BusinessHours  string    `json:"businessHours"`
	Enabled        bool      `json:"enabled"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// DefaultBotSettings devolve a configuração inicial usada quando
// ainda não há linha persistida.
func DefaultBotSettings() *BotSettings {
	return &BotSettings{
		WelcomeMessage: "Olá! 👋 Bem-vindo à AutoPeças. Sou o assistente virtual e posso ajudar você a encontrar peças, consultar preços e fazer pedidos. Como posso ajudar?",
		PaymentMethods: []string{"PIX", "Cartão de crédito", "Cartão de débito", "Boleto"},
		BusinessHours:  "Segunda a sexta das 8h às 18h, sábado das 8h às 12h.",
		Enabled:        true,
	}
}
