package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/application/usecase"
)

// ReferralHandler maneja códigos de invitación.
type ReferralHandler struct {
	uc *usecase.ReferralUseCase
}

// NewReferralHandler construye el handler de referidos.
func NewReferralHandler(uc *usecase.ReferralUseCase) *ReferralHandler {
	return &ReferralHandler{uc: uc}
}

// Get godoc
// @Summary      Código de invitación del usuario (se genera la primera vez)
// @Tags         referrals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ReferralResponse
// @Router       /api/referral [get]
func (h *ReferralHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.GetOrCreate(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Valida un código de invitación (público, pantalla de registro)
// @Tags         referrals
// @Produce      json
// @Param        code  path  string  true  "Código de invitación"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/auth/referral/{code} [get]
func (h *ReferralHandler) Validate(c *fiber.Ctx) error {
	ref, err := h.uc.Resolve(c.UserContext(), strings.ToUpper(c.Params("code")))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código de invitación inválido"})
	}
	return c.JSON(fiber.Map{"valid": true, "ref_code": ref.RefCode})
}

// AdminList godoc
// @Summary      Todos los códigos emitidos (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ReferralResponse
// @Router       /api/admin/referrals [get]
func (h *ReferralHandler) AdminList(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
