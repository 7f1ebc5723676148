package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/application/wallet"
	"github.com/jhoicas/Recargas-api/internal/domain"
)

// WalletHandler maneja saldo, verificación de depósitos y movimientos.
type WalletHandler struct {
	uc *wallet.WalletUseCase
}

// NewWalletHandler construye el handler del wallet.
func NewWalletHandler(uc *wallet.WalletUseCase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

// Balance godoc
// @Summary      Saldo actual del wallet
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.BalanceResponse
// @Router       /api/wallet/balance [get]
func (h *WalletHandler) Balance(c *fiber.Ctx) error {
	out, err := h.uc.GetBalance(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// VerifyDeposit godoc
// @Summary      Verificar y acreditar un depósito
// @Description  Consulta la referencia en la pasarela; si está confirmada acredita el wallet. Idempotente por referencia.
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        reference  query  string  true   "referencia de la pasarela"
// @Param        amount     query  number  false  "monto esperado en GHS (opcional)"
// @Success      200  {object}  dto.DepositResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/wallet/verify [get]
func (h *WalletHandler) VerifyDeposit(c *fiber.Ctx) error {
	var in dto.VerifyDepositRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.VerifyDeposit(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "reference es requerido"})
		case domain.ErrVerificationFailed:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VERIFICATION_FAILED", Message: "la pasarela no confirmó el pago o el monto no coincide"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Transactions godoc
// @Summary      Historial de movimientos del usuario
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo por página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *WalletHandler) Transactions(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.ListTransactions(c.UserContext(), GetUserID(c), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
