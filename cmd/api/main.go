package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/auth"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/ports"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/application/usecase"
	infraai "github.com/GuilhermeCharnei/autoparts-chat/internal/infrastructure/ai"
	infrapdf "github.com/GuilhermeCharnei/autoparts-chat/internal/infrastructure/pdf"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/infrastructure/postgres"
	httpRouter "github.com/GuilhermeCharnei/autoparts-chat/internal/interfaces/http"
	"github.com/GuilhermeCharnei/autoparts-chat/internal/interfaces/ws"
	"github.com/GuilhermeCharnei/autoparts-chat/pkg/config"
	"github.com/GuilhermeCharnei/autoparts-chat/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	convRepo := postgres.NewConversationRepository(pool)
	msgRepo := postgres.NewMessageRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	hub := ws.NewHub(log.Zerolog())
	go hub.Run()

	// LLM opcional: sem chave o bot opera só com o roteador determinístico.
	var llm ports.LLMService
	if cfg.AI.OpenAIAPIKey != "" {
		llm = infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	} else {
		log.Warn().Msg("OPENAI_API_KEY ausente: respostas inteligentes desativadas")
	}

	chatUC := usecase.NewChatUseCase(convRepo, msgRepo, productRepo, settingsRepo, txRunner, hub)
	botUC := usecase.NewBotUseCase(productRepo, settingsRepo, llm, log.Zerolog())
	productUC := usecase.NewProductUseCase(productRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, productRepo, txRunner)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	reportUC := usecase.NewReportUseCase(reportRepo, infrapdf.NewMarotoReportGenerator())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AutoParts Chat API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ChatUC:     chatUC,
		BotUC:      botUC,
		ProductUC:  productUC,
		OrderUC:    orderUC,
		UserUC:     userUC,
		SettingsUC: settingsUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		Hub:        hub,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
