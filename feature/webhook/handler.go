package webhook

import (
	"time"

	"todo-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TimestampLayout matches JavaScript's Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Response is returned after a webhook batch is applied.
type Response struct {
	Message        string `json:"message"`
	ProcessedCount int    `json:"processedCount"`
	CreatedCount   int    `json:"createdCount"`
	UpdatedCount   int    `json:"updatedCount"`
	FailedCount    int    `json:"failedCount"`
	TableName      string `json:"tableName"`
	Stage          string `json:"stage"`
	Timestamp      string `json:"timestamp"`
}

// Handler handles Airtable webhook deliveries.
type Handler struct {
	service *Service
	now     func() time.Time
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

// RegisterRoutes registers the webhook route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/webhook", h.HandleWebhook)
}

// HandleWebhook applies an Airtable change notification.
// @Summary Airtable Webhook
// @Description Reconcile changed Airtable records into the todo table.
// @Tags webhook
// @Accept json
// @Produce json
// @Param payload body reconcile.Payload true "Airtable change payload"
// @Success 200 {object} Response "Processed"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /v1/webhook [post]
func (h *Handler) HandleWebhook(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Process(c.UserContext(), c.Body())
	if err != nil {
		l.Error("Error processing webhook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}

	l.Info("Webhook processed",
		zap.Int("processed", result.Processed),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("failed", result.Failed))

	return c.JSON(Response{
		Message:        "Webhook processed successfully",
		ProcessedCount: result.Processed,
		CreatedCount:   result.Created,
		UpdatedCount:   result.Updated,
		FailedCount:    result.Failed,
		TableName:      h.service.tableName,
		Stage:          h.service.stage,
		Timestamp:      h.now().UTC().Format(TimestampLayout),
	})
}
