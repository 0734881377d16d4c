package handler

import (
	"errors"

	"remedy-engine/internal/features/tools/service"

	"github.com/gofiber/fiber/v2"
)

// ToolsHandler handles HTTP requests for scenario analyzer tools.
type ToolsHandler struct {
	registry *service.Registry
}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler(registry *service.Registry) *ToolsHandler {
	return &ToolsHandler{
		registry: registry,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// ListTools godoc
// @Summary List registered scenario analyzer tools
// @Description Returns the self-descriptions of every registered tool, sorted by name
// @Tags tools
// @Produce json
// @Success 200 {array} domain.ToolInfo
// @Router /tools [get]
func (h *ToolsHandler) ListTools(c *fiber.Ctx) error {
	return c.JSON(h.registry.List())
}

// DescribeTool godoc
// @Summary Describe a registered tool
// @Description Returns the self-description of the named tool
// @Tags tools
// @Produce json
// @Param name path string true "Tool name"
// @Success 200 {object} domain.ToolInfo
// @Failure 404 {object} ErrorResponse
// @Router /tools/{name} [get]
func (h *ToolsHandler) DescribeTool(c *fiber.Ctx) error {
	tool, err := h.registry.Get(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(tool.Describe())
}

// ExecuteTool godoc
// @Summary Execute a registered tool
// @Description Runs the named tool with an optional JSON scenario context. Tool failures are reported in the result's status field, never as an HTTP error
// @Tags tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name"
// @Param context body object false "Scenario context"
// @Success 200 {object} domain.ToolResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tools/{name}/execute [post]
func (h *ToolsHandler) ExecuteTool(c *fiber.Ctx) error {
	var scenario map[string]any
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&scenario); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: "scenario context must be a JSON object",
				RayID:   c.Locals("requestid").(string),
			})
		}
	}

	result, err := h.registry.Invoke(c.UserContext(), c.Params("name"), scenario)
	if err != nil {
		if errors.Is(err, service.ErrToolNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(result)
}
