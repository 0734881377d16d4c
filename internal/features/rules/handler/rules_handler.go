package handler

import (
	"errors"

	"remedy-engine/internal/features/rules/domain"
	"remedy-engine/internal/features/rules/service"

	"github.com/gofiber/fiber/v2"
)

// RulesHandler handles HTTP requests for the remediation rule engine.
type RulesHandler struct {
	rules *service.RuleService
}

// NewRulesHandler creates a new RulesHandler.
func NewRulesHandler(rules *service.RuleService) *RulesHandler {
	return &RulesHandler{
		rules: rules,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// CompensationRequest is the payload for a compensation calculation.
type CompensationRequest struct {
	// DelayMinutes is how late the delivery was, in minutes.
	DelayMinutes int `json:"delay_minutes"`
	// OrderValue is the order total in rupees.
	OrderValue float64 `json:"order_value"`
	// CustomerTier is the customer's account tier.
	CustomerTier domain.CustomerTier `json:"customer_tier"`
}

// PeakHoursResponse reports the peak delivery windows for a city.
type PeakHoursResponse struct {
	// City is the requested city name.
	City string `json:"city"`
	// Windows are the lunch and dinner peak windows.
	Windows domain.PeakWindow `json:"windows"`
}

// CalculateCompensation godoc
// @Summary Calculate compensation for a delayed delivery
// @Description Computes the voucher offered for a delay, based on customer tier, delay severity and order value
// @Tags rules
// @Accept json
// @Produce json
// @Param request body CompensationRequest true "Delay details"
// @Success 200 {object} domain.CompensationOffer
// @Failure 400 {object} ErrorResponse
// @Router /compensation [post]
func (h *RulesHandler) CalculateCompensation(c *fiber.Ctx) error {
	var req CompensationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "invalid request body",
			RayID:   c.Locals("requestid").(string),
		})
	}

	offer, err := h.rules.CalculateCompensation(req.DelayMinutes, domain.PaiseFromRupees(req.OrderValue), req.CustomerTier)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTier) ||
			errors.Is(err, domain.ErrInvalidDelay) ||
			errors.Is(err, domain.ErrInvalidOrderValue) {
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

	return c.JSON(offer)
}

// GetPeakHours godoc
// @Summary Get peak delivery hours for a city
// @Description Returns the lunch and dinner demand windows for a city, falling back to the market default for unlisted cities
// @Tags rules
// @Produce json
// @Param city path string true "City name (case-insensitive)"
// @Success 200 {object} PeakHoursResponse
// @Failure 400 {object} ErrorResponse
// @Router /peak-hours/{city} [get]
func (h *RulesHandler) GetPeakHours(c *fiber.Ctx) error {
	city := c.Params("city")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "city is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(PeakHoursResponse{
		City:    city,
		Windows: h.rules.GetPeakHours(city),
	})
}

// GetFestivalImpact godoc
// @Summary Assess festival impact on deliveries for a date
// @Description Tests the date against the festival calendar and reports the matching festival, impact level and suggested adjustments
// @Tags rules
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD format"
// @Success 200 {object} domain.FestivalImpact
// @Failure 400 {object} ErrorResponse
// @Router /festival-impact [get]
func (h *RulesHandler) GetFestivalImpact(c *fiber.Ctx) error {
	date := c.Query("date")
	if date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: "date query parameter is required",
			RayID:   c.Locals("requestid").(string),
		})
	}

	impact, err := h.rules.GetFestivalImpact(date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   c.Locals("requestid").(string),
		})
	}

	return c.JSON(impact)
}
