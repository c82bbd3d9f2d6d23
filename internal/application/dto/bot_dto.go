package dto

import "github.com/GuilhermeCharnei/autoparts-chat/internal/domain/bot"

// BotChatRequest corpo de POST /api/bot/chat.
type BotChatRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
}

// BotChatResponse resposta do roteador de intenções.
type BotChatResponse struct {
	Message  string        `json:"message"`
	Type     string        `json:"type"`
	Metadata *bot.Metadata `json:"metadata,omitempty"`
}

// SmartReplyRequest corpo de POST /api/bot/smart-reply (resposta via LLM).
type SmartReplyRequest struct {
	Message        string `json:"message"`
	ConversationID string `json:"conversationId"`
	CustomerName   string `json:"customerName"`
}

// SmartReplyResponse resposta gerada pelo LLM (ou fallback).
type SmartReplyResponse struct {
	Message  string `json:"message"`
	Fallback bool   `json:"fallback"` // true quando a resposta é o texto fixo de contingência
}

// IntentAnalysisResponse classificação de intenção via LLM.
type IntentAnalysisResponse struct {
	Intent        string            `json:"intent"`
	Confidence    float64           `json:"confidence"`
	ExtractedInfo map[string]string `json:"extractedInfo,omitempty"`
}

// RecommendRequest corpo de POST /api/bot/recommend.
type RecommendRequest struct {
	VehicleInfo string `json:"vehicleInfo"`
}
