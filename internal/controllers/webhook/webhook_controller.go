package webhook

import (
	"context"
	"time"

	"github.com/DIMO-Network/chatbot-webhook/internal/commands"
	"github.com/DIMO-Network/chatbot-webhook/internal/metrics"
	"github.com/DIMO-Network/chatbot-webhook/internal/telegram"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// Sender delivers a reply into a chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// WebhookController handles updates pushed by the chat platform.
type WebhookController struct {
	sender Sender
	now    func() time.Time
}

// NewWebhookController creates a new WebhookController.
func NewWebhookController(sender Sender) *WebhookController {
	return &WebhookController{
		sender: sender,
		now:    time.Now,
	}
}

// HandleUpdate godoc
// @Summary      Receive a bot update
// @Description  Accepts an update from the chat platform, answers the message it carries and reports the outcome. Updates without a message or edited_message are ignored.
// @Tags         Webhook
// @Accept       json
// @Produce      json
// @Param        update  body      telegram.Update  true  "Platform update"
// @Success      200     {object}  StatusResponse   "Reply sent, or update ignored"
// @Failure      400     {object}  api.ErrorResponse  "Body is not valid JSON"
// @Failure      500     {object}  api.ErrorResponse  "Reply could not be sent"
// @Router       / [post]
func (w *WebhookController) HandleUpdate(c *fiber.Ctx) error {
	update, err := telegram.ParseUpdate(c.Body())
	if err != nil {
		metrics.UpdatesTotal.WithLabelValues(metrics.OutcomeInvalid).Inc()
		return richerrors.Error{
			ExternalMsg: "invalid json",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	msg := update.IncomingMessage()
	if msg == nil {
		metrics.UpdatesTotal.WithLabelValues(metrics.OutcomeIgnored).Inc()
		return c.JSON(StatusResponse{Status: StatusIgnored})
	}

	reply, command := commands.Reply(msg.Text, w.now())
	metrics.RepliesTotal.WithLabelValues(string(command)).Inc()

	zerolog.Ctx(c.UserContext()).Debug().
		Int64("updateId", update.UpdateID).
		Int64("chatId", msg.Chat.ID).
		Str("command", string(command)).
		Msg("Replying to message")

	if err := w.sender.SendMessage(c.UserContext(), msg.Chat.ID, reply); err != nil {
		metrics.UpdatesTotal.WithLabelValues(metrics.OutcomeFailed).Inc()
		return richerrors.Error{
			ExternalMsg: err.Error(),
			Err:         err,
			Code:        fiber.StatusInternalServerError,
		}
	}

	metrics.UpdatesTotal.WithLabelValues(metrics.OutcomeOK).Inc()
	return c.JSON(StatusResponse{Status: StatusOK})
}

// Liveness godoc
// @Summary      Liveness check
// @Description  Reports that the webhook is up. Does not touch the chat platform.
// @Tags         Webhook
// @Produce      json
// @Success      200  {object}  LivenessResponse
// @Router       / [get]
func (w *WebhookController) Liveness(c *fiber.Ctx) error {
	return c.JSON(LivenessResponse{
		Status:  "running",
		Message: "Telegram bot webhook alive",
	})
}
