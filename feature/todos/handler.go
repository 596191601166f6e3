package todos

import (
	"encoding/json"
	"errors"

	"todo-sync/core/logger"
	"todo-sync/core/reconcile"
	"todo-sync/core/records"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateRequest is the body of POST /todo.
type CreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// CreateResponse is returned after a todo is stored.
type CreateResponse struct {
	Todo      *records.Record `json:"todo"`
	Message   string          `json:"message"`
	TableName string          `json:"tableName"`
	Stage     string          `json:"stage"`
}

// ListResponse is returned by GET /todos.
type ListResponse struct {
	Todos     []records.Record `json:"todos"`
	Count     int              `json:"count"`
	TableName string           `json:"tableName"`
	Stage     string           `json:"stage"`
}

// Handler handles HTTP requests for todos.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the todo routes behind the given middleware.
func (h *Handler) RegisterRoutes(app fiber.Router, guards ...fiber.Handler) {
	app.Post("/todo", chain(guards, h.HandleCreate)...)
	app.Get("/todos", chain(guards, h.HandleList)...)
}

func chain(guards []fiber.Handler, h fiber.Handler) []fiber.Handler {
	handlers := make([]fiber.Handler, 0, len(guards)+1)
	return append(append(handlers, guards...), h)
}

// HandleCreate creates a todo.
// @Summary Create Todo
// @Description Create a todo and mirror it to Airtable when configured.
// @Tags todos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param todo body CreateRequest true "Todo"
// @Success 201 {object} CreateResponse "Created"
// @Failure 400 {object} map[string]string "Title is required"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /v1/todo [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req CreateRequest
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			l.Error("Invalid todo body", zap.Error(err))
			return internalError(c, err)
		}
	}

	todo, err := h.service.Create(c.UserContext(), req.Title, req.Description)
	if errors.Is(err, reconcile.ErrTitleRequired) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}
	if err != nil {
		l.Error("Failed to create todo", zap.Error(err))
		return internalError(c, err)
	}

	l.Info("Todo created", zap.String("id", todo.ID))
	return c.Status(fiber.StatusCreated).JSON(CreateResponse{
		Todo:      todo,
		Message:   "Todo created successfully",
		TableName: h.service.TableName(),
		Stage:     h.service.Stage(),
	})
}

// HandleList lists all todos, newest first.
// @Summary List Todos
// @Tags todos
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} ListResponse "Todos"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /v1/todos [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	todos, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list todos", zap.Error(err))
		return internalError(c, err)
	}

	return c.JSON(ListResponse{
		Todos:     todos,
		Count:     len(todos),
		TableName: h.service.TableName(),
		Stage:     h.service.Stage(),
	})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}
