package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/dto"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/bot"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// ChatUseCase orquestra o caminho de entrega de mensagens:
// persistência transacional, broadcast para os clientes conectados e,
// em conversas operadas pelo bot, a resposta automática do roteador.
type ChatUseCase struct {
	convRepo     repository.ConversationRepository
	msgRepo      repository.MessageRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	txRunner     ChatTxRunner
	broadcaster  Broadcaster
}

// NewChatUseCase constrói o caso de uso.
func NewChatUseCase(
	convRepo repository.ConversationRepository,
	msgRepo repository.MessageRepository,
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	txRunner ChatTxRunner,
	broadcaster Broadcaster,
) *ChatUseCase {
	return &ChatUseCase{
		convRepo:     convRepo,
		msgRepo:      msgRepo,
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		txRunner:     txRunner,
		broadcaster:  broadcaster,
	}
}

// CreateConversation abre uma conversa no primeiro contato do cliente.
func (uc *ChatUseCase) CreateConversation(in dto.CreateConversationRequest) (*dto.ConversationResponse, error) {
	if in.CustomerName == "" && in.CustomerPhone == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	conv := &entity.Conversation{
		ID:             uuid.New().String(),
		CustomerName:   in.CustomerName,
		CustomerPhone:  in.CustomerPhone,
		CustomerAvatar: in.CustomerAvatar,
		Status:         entity.ConversationActive,
		LastMessageAt:  now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.convRepo.Create(conv); err != nil {
		return nil, err
	}
	return dto.ToConversationResponse(conv), nil
}

// ListConversations lista conversas por status (vazio = todas), ordenadas
// pela última mensagem.
func (uc *ChatUseCase) ListConversations(status string, limit, offset int) (*dto.ConversationListResponse, error) {
	list, err := uc.convRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ConversationResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.ToConversationResponse(c))
	}
	return &dto.ConversationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// GetConversation obtém uma conversa por ID.
func (uc *ChatUseCase) GetConversation(id string) (*dto.ConversationResponse, error) {
	conv, err := uc.convRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return dto.ToConversationResponse(conv), nil
}

// ListMessages lista as mensagens de uma conversa em ordem de criação.
func (uc *ChatUseCase) ListMessages(conversationID string, limit, offset int) (*dto.MessageListResponse, error) {
	conv, err := uc.convRepo.GetByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.msgRepo.ListByConversation(conversationID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MessageResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMessageResponse(m))
	}
	return &dto.MessageListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// AppendMessage persiste a mensagem, avança lastMessageAt na mesma
// transação e faz o broadcast. Em conversas sem vendedor atribuído, uma
// mensagem de cliente dispara a resposta do bot (persistida e
// transmitida da mesma forma). Devolve a mensagem gravada e, se houver,
// a resposta do bot.
func (uc *ChatUseCase) AppendMessage(ctx context.Context, conversationID string, in dto.AppendMessageRequest) (*dto.MessageResponse, *dto.MessageResponse, error) {
	conv, err := uc.convRepo.GetByID(conversationID)
	if err != nil {
		return nil, nil, err
	}
	if conv == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !entity.ValidSender(in.Sender) {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.Type == "" {
		in.Type = entity.MessageText
	}
	if !entity.ValidMessageType(in.Type) {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.Content == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	msg := &entity.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		Sender:         in.Sender,
		Type:           in.Type,
		Content:        in.Content,
		Metadata:       in.Metadata,
		CreatedAt:      time.Now(),
	}
	if err := uc.persistAndBroadcast(ctx, msg); err != nil {
		return nil, nil, err
	}

	var botReply *entity.Message
	if in.Sender == entity.SenderCustomer && conv.AssignedTo == nil {
		botReply, err = uc.autoReply(ctx, conv, in.Content)
		if err != nil {
			return nil, nil, err
		}
	}
	return dto.ToMessageResponse(msg), dto.ToMessageResponse(botReply), nil
}

// MarkRead marca como lidas as mensagens da conversa que não são do
// remetente informado (o leitor).
func (uc *ChatUseCase) MarkRead(conversationID, readerSender string) error {
	conv, err := uc.convRepo.GetByID(conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return domain.ErrNotFound
	}
	return uc.msgRepo.MarkRead(conversationID, readerSender)
}

// Assign atribui a conversa a um vendedor (nil devolve ao bot).
func (uc *ChatUseCase) Assign(conversationID string, sellerID *string) error {
	conv, err := uc.convRepo.GetByID(conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return domain.ErrNotFound
	}
	return uc.convRepo.Assign(conversationID, sellerID)
}

// UpdateStatus muda o ciclo de vida da conversa.
func (uc *ChatUseCase) UpdateStatus(conversationID, status string) error {
	switch status {
	case entity.ConversationActive, entity.ConversationWaiting, entity.ConversationClosed:
	default:
		return domain.ErrInvalidInput
	}
	conv, err := uc.convRepo.GetByID(conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return domain.ErrNotFound
	}
	return uc.convRepo.UpdateStatus(conversationID, status)
}

// autoReply roda o roteador de intenções e persiste/transmite a resposta.
func (uc *ChatUseCase) autoReply(ctx context.Context, conv *entity.Conversation, text string) (*entity.Message, error) {
	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultBotSettings()
	}
	if !settings.Enabled {
		return nil, nil
	}
	products, err := uc.productRepo.ListActiveInStock()
	if err != nil {
		return nil, err
	}
	snapshot := make([]entity.Product, 0, len(products))
	for _, p := range products {
		snapshot = append(snapshot, *p)
	}

	reply := bot.Route(text, snapshot, *settings)

	var metadata json.RawMessage
	if reply.Metadata != nil {
		metadata, err = json.Marshal(reply.Metadata)
		if err != nil {
			return nil, err
		}
	}
	botMsg := &entity.Message{
		ID:             uuid.New().String(),
		ConversationID: conv.ID,
		Sender:         entity.SenderBot,
		Type:           reply.Type,
		Content:        reply.Message,
		Metadata:       metadata,
		CreatedAt:      time.Now(),
	}
	if err := uc.persistAndBroadcast(ctx, botMsg); err != nil {
		return nil, err
	}
	return botMsg, nil
}

// persistAndBroadcast grava a mensagem e avança lastMessageAt em uma
// transação; só depois do commit notifica os clientes conectados.
func (uc *ChatUseCase) persistAndBroadcast(ctx context.Context, msg *entity.Message) error {
	err := uc.txRunner.RunChat(ctx, func(
		msgRepo repository.MessageRepository,
		convRepo repository.ConversationRepository,
	) error {
		if err := msgRepo.Create(msg); err != nil {
			return err
		}
		return convRepo.TouchLastMessage(msg.ConversationID, msg.CreatedAt)
	})
	if err != nil {
		return err
	}
	if uc.broadcaster != nil {
		uc.broadcaster.BroadcastNewMessage(msg)
	}
	return nil
}
