package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/auth"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/domain/entity"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/interfaces/ws"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	ChatUC     *usecase.ChatUseCase
	BotUC      *usecase.BotUseCase
	ProductUC  *usecase.ProductUseCase
	OrderUC    *usecase.OrderUseCase
	UserUC     *usecase.UserUseCase
	SettingsUC *usecase.SettingsUseCase
	ReportUC   *usecase.ReportUseCase
	AuthUC     *auth.AuthUseCase
	Hub        *ws.Hub
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/activate", authHandler.Activate)

	// Conversas: o widget do cliente fala direto com estas rotas, sem token.
	chatHandler := NewChatHandler(deps.ChatUC)
	conversations := api.Group("/conversations")
	conversations.Post("/", chatHandler.CreateConversation)
	conversations.Get("/", chatHandler.ListConversations)
	conversations.Get("/:id", chatHandler.GetConversation)
	conversations.Get("/:id/messages", chatHandler.ListMessages)
	conversations.Post("/:id/messages", chatHandler.AppendMessage)
	conversations.Put("/:id/read", chatHandler.MarkRead)

	// Bot (público): roteador determinístico, LLM e configuração vigente.
	botHandler := NewBotHandler(deps.BotUC)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	bot := api.Group("/bot")
	bot.Post("/chat", botHandler.Chat)
	bot.Get("/inventory", botHandler.Inventory)
	bot.Post("/smart-reply", botHandler.SmartReply)
	bot.Post("/analyze-intent", botHandler.AnalyzeIntent)
	bot.Post("/recommend", botHandler.Recommend)
	bot.Get("/settings", settingsHandler.Get)

	// WebSocket do painel
	app.Use("/ws", ws.UpgradeRequired)
	app.Get("/ws", ws.Handler(deps.Hub))

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Operações de atendimento (qualquer papel autenticado)
	protected.Put("/conversations/:id/assign", chatHandler.Assign)
	protected.Put("/conversations/:id/status", chatHandler.UpdateStatus)

	// Catálogo (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Pedidos (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	// Configuração do bot (escrita restrita a papéis administrativos)
	adminOnly := RequireRole(entity.RoleDev, entity.RoleAdministrador, entity.RoleGerente)
	protected.Put("/bot/settings", adminOnly, settingsHandler.Update)

	// Equipe (restrito a papéis administrativos)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/invite", userHandler.Invite)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Relatórios (restrito a papéis administrativos)
	reports := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.Sales)
	reports.Get("/sales/pdf", reportHandler.SalesPDF)
}
