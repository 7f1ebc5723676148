package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recargas-api/internal/application/checkout"
	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
)

// CheckoutHandler maneja el checkout del carrito.
type CheckoutHandler struct {
	uc *checkout.CreateOrderUseCase
}

// NewCheckoutHandler construye el handler de checkout.
func NewCheckoutHandler(uc *checkout.CreateOrderUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Create godoc
// @Summary      Procesar checkout del carrito
// @Description  Verifica fondos, entrega cada línea al vendor y cobra solo lo confirmado.
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CheckoutRequest  true  "cart"
// @Success      200   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.CheckoutResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Create(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateOrder(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrEmptyCart:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "carrito inválido"})
		case domain.ErrInsufficientBalance:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "saldo insuficiente en el wallet"})
		case domain.ErrAllItemsFailed:
			// La orden quedó registrada con status failed y cobro cero.
			return c.Status(fiber.StatusBadGateway).JSON(out)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
