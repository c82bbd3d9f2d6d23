package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/ports"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/repository"
)

// Fakes em memória compartilhados pelos testes dos casos de uso. O
// txRunner falso emula rollback restaurando o estoque quando fn falha,
// o suficiente para exercitar os invariantes sem um banco de verdade.

// ── Conversas ─────────────────────────────────────────────────────────────────

type fakeConversationRepo struct {
	mu    sync.Mutex
	convs map[string]*entity.Conversation
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{convs: make(map[string]*entity.Conversation)}
}

func (r *fakeConversationRepo) Create(c *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.convs[c.ID] = &cp
	return nil
}

func (r *fakeConversationRepo) GetByID(id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.convs[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeConversationRepo) List(status string, limit, offset int) ([]*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Conversation
	for _, c := range r.convs {
		if status == "" || c.Status == status {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) UpdateStatus(id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.convs[id]; ok {
		c.Status = status
	}
	return nil
}

func (r *fakeConversationRepo) Assign(id string, sellerID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.convs[id]; ok {
		c.AssignedTo = sellerID
	}
	return nil
}

func (r *fakeConversationRepo) TouchLastMessage(id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.convs[id]; ok {
		if at.After(c.LastMessageAt) {
			c.LastMessageAt = at
		}
	}
	return nil
}

// ── Mensagens ─────────────────────────────────────────────────────────────────

type fakeMessageRepo struct {
	mu   sync.Mutex
	msgs []*entity.Message
}

func newFakeMessageRepo() *fakeMessageRepo { return &fakeMessageRepo{} }

func (r *fakeMessageRepo) Create(m *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.msgs = append(r.msgs, &cp)
	return nil
}

func (r *fakeMessageRepo) ListByConversation(conversationID string, limit, offset int) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Message
	for _, m := range r.msgs {
		if m.ConversationID == conversationID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeMessageRepo) MarkRead(conversationID, exceptSender string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.msgs {
		if m.ConversationID == conversationID && m.Sender != exceptSender {
			m.Read = true
		}
	}
	return nil
}

// ── Produtos ──────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for i := range products {
		cp := products[i]
		r.products[cp.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) List(search string, onlyActive bool, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if onlyActive && !p.Active {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListActiveInStock() ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.products {
		if p.Active && p.Stock > 0 {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Deactivate(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		p.Active = false
	}
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[productID]
	if !ok || p.Stock < qty {
		return domain.ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

func (r *fakeProductRepo) stockOf(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.products[id]; ok {
		return p.Stock
	}
	return -1
}

func (r *fakeProductRepo) snapshotStocks() map[string]int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.products))
	for id, p := range r.products {
		out[id] = p.Stock
	}
	return out
}

func (r *fakeProductRepo) restoreStocks(snap map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, stock := range snap {
		if p, ok := r.products[id]; ok {
			p.Stock = stock
		}
	}
}

// ── Configuração do bot ───────────────────────────────────────────────────────

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *entity.BotSettings
}

func newFakeSettingsRepo(s *entity.BotSettings) *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: s}
}

func (r *fakeSettingsRepo) Get() (*entity.BotSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.settings == nil {
		return nil, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Upsert(s *entity.BotSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.settings = &cp
	return nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*entity.Order
	items  []entity.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Create(o *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	cp.Items = nil
	r.orders[o.ID] = &cp
	return nil
}

func (r *fakeOrderRepo) CreateItem(it *entity.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, *it)
	return nil
}

func (r *fakeOrderRepo) GetByID(id string) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) ListItems(orderID string) ([]entity.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) List(status string, limit, offset int) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(id, status, paymentStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		if status != "" {
			o.Status = status
		}
		if paymentStatus != "" {
			o.PaymentStatus = paymentStatus
		}
	}
	return nil
}

func (r *fakeOrderRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.orders)
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

type fakeTxRunner struct {
	msgRepo     *fakeMessageRepo
	convRepo    *fakeConversationRepo
	orderRepo   *fakeOrderRepo
	productRepo *fakeProductRepo
}

var _ usecase.ChatTxRunner = (*fakeTxRunner)(nil)
var _ usecase.OrderTxRunner = (*fakeTxRunner)(nil)

func (t *fakeTxRunner) RunChat(_ context.Context, fn func(
	msgRepo repository.MessageRepository,
	convRepo repository.ConversationRepository,
) error) error {
	return fn(t.msgRepo, t.convRepo)
}

// RunOrder restaura o estoque quando fn falha, emulando o rollback.
func (t *fakeTxRunner) RunOrder(_ context.Context, fn func(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
) error) error {
	snap := t.productRepo.snapshotStocks()
	if err := fn(t.orderRepo, t.productRepo); err != nil {
		t.productRepo.restoreStocks(snap)
		return err
	}
	return nil
}

// ── Broadcaster ───────────────────────────────────────────────────────────────

type fakeBroadcaster struct {
	mu   sync.Mutex
	sent []*entity.Message
}

func (b *fakeBroadcaster) BroadcastNewMessage(m *entity.Message) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, m)
}

func (b *fakeBroadcaster) messages() []*entity.Message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*entity.Message, len(b.sent))
	copy(out, b.sent)
	return out
}

// ── LLM ───────────────────────────────────────────────────────────────────────

var errLLMDown = errors.New("llm indisponível")

// failingLLM simula um provedor fora do ar.
type failingLLM struct{}

var _ ports.LLMService = (*failingLLM)(nil)

func (failingLLM) GenerateResponse(context.Context, string, ports.ReplyContext, []entity.Product) (string, error) {
	return "", errLLMDown
}

func (failingLLM) AnalyzeIntent(context.Context, string) (*ports.IntentAnalysis, error) {
	return nil, errLLMDown
}

func (failingLLM) RecommendProducts(context.Context, string, []entity.Product) ([]entity.Product, error) {
	return nil, errLLMDown
}

// okLLM devolve respostas fixas.
type okLLM struct{}

var _ ports.LLMService = (*okLLM)(nil)

func (okLLM) GenerateResponse(context.Context, string, ports.ReplyContext, []entity.Product) (string, error) {
	return "Temos sim! O filtro FLT-1020 é compatível com seu Gol.", nil
}

func (okLLM) AnalyzeIntent(context.Context, string) (*ports.IntentAnalysis, error) {
	return &ports.IntentAnalysis{Intent: "product_search", Confidence: 0.93}, nil
}

func (okLLM) RecommendProducts(_ context.Context, _ string, products []entity.Product) ([]entity.Product, error) {
	if len(products) == 0 {
		return nil, nil
	}
	return products[:1], nil
}
