package app

import (
	"os"

	"github.com/DIMO-Network/chatbot-webhook/docs"
	"github.com/DIMO-Network/chatbot-webhook/internal/api"
	"github.com/DIMO-Network/chatbot-webhook/internal/config"
	"github.com/DIMO-Network/chatbot-webhook/internal/controllers/webhook"
	"github.com/DIMO-Network/chatbot-webhook/internal/telegram"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateServers builds the webhook server. The bot token is read from the
// environment on every outbound call, so it is not part of settings.
func CreateServers(settings *config.Settings, logger zerolog.Logger) *fiber.App {
	client := telegram.New(settings.TelegramAPIURL, telegram.EnvToken(os.Getenv), nil)
	return CreateFiberApp(logger, client)
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, sender webhook.Sender) *fiber.App {
	logger.Info().Msg("Starting chatbot webhook...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return api.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	docs.SwaggerInfo.BasePath = "/"
	app.Get("/swagger/*", swagger.HandlerDefault)

	webhookController := webhook.NewWebhookController(sender)
	logger.Info().Msg("Registering routes...")

	app.Get("/", webhookController.Liveness)
	app.Post("/", webhookController.HandleUpdate)

	// The platform only ever POSTs; anything else on the webhook path is refused.
	app.All("/", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed")
	})

	return app
}
