package handler

import (
	"errors"

	metricsdomain "remedy-engine/internal/features/metrics/domain"
	"remedy-engine/internal/features/metrics/ports"

	"github.com/gofiber/fiber/v2"
)

// MetricsHandler handles HTTP requests for delivery metrics.
type MetricsHandler struct {
	metrics ports.MetricsService
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(metrics ports.MetricsService) *MetricsHandler {
	return &MetricsHandler{
		metrics: metrics,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// MetricsResponse is a metrics snapshot with its derived success rate.
type MetricsResponse struct {
	metricsdomain.DeliveryMetrics
	// SuccessRate is successful/total deliveries as a percentage.
	SuccessRate float64 `json:"success_rate"`
}

// GetMetrics godoc
// @Summary Get the delivery metrics snapshot
// @Description Returns the current delivery performance snapshot with its derived success rate
// @Tags metrics
// @Produce json
// @Success 200 {object} MetricsResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/delivery [get]
func (h *MetricsHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.metrics.GetMetrics(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(MetricsResponse{
		DeliveryMetrics: *metrics,
		SuccessRate:     metrics.SuccessRate(),
	})
}

// UpdateMetrics godoc
// @Summary Replace the delivery metrics snapshot
// @Description Validates and stores a new delivery performance snapshot
// @Tags metrics
// @Accept json
// @Produce json
// @Param metrics body metricsdomain.DeliveryMetrics true "New snapshot"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /metrics/delivery [put]
func (h *MetricsHandler) UpdateMetrics(c *fiber.Ctx) error {
	var metrics metricsdomain.DeliveryMetrics
	if err := c.BodyParser(&metrics); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	if err := h.metrics.UpdateMetrics(c.UserContext(), metrics); err != nil {
		if errors.Is(err, metricsdomain.ErrInvalidCounts) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Message: err.Error(),
				RayID:   c.Locals("requestid").(string),
			})
		}

		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
