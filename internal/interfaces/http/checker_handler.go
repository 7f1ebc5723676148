package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recargas-api/internal/application/checker"
	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/domain"
)

// CheckerHandler maneja stock y venta de checkers de resultados.
type CheckerHandler struct {
	uc *checker.CheckerUseCase
}

// NewCheckerHandler construye el handler de checkers.
func NewCheckerHandler(uc *checker.CheckerUseCase) *CheckerHandler {
	return &CheckerHandler{uc: uc}
}

// ListAvailable godoc
// @Summary      Checkers disponibles de un tipo
// @Tags         checkers
// @Produce      json
// @Security     BearerAuth
// @Param        type  query  string  true  "wassce | bece"
// @Success      200  {array}  dto.CheckerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/checkers [get]
func (h *CheckerHandler) ListAvailable(c *fiber.Ctx) error {
	out, err := h.uc.ListAvailable(c.UserContext(), c.Query("type"))
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser wassce o bece"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Purchase godoc
// @Summary      Comprar un checker con saldo del wallet
// @Tags         checkers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.PurchaseCheckerRequest  true  "checker_id"
// @Success      200  {object}  dto.PurchaseResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/checkers/purchase [post]
func (h *CheckerHandler) Purchase(c *fiber.Ctx) error {
	var in dto.PurchaseCheckerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Purchase(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "checker_id es requerido"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "checker no encontrado"})
		case domain.ErrCheckerSold:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKER_SOLD", Message: "el checker ya fue vendido"})
		case domain.ErrInsufficientBalance:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_BALANCE", Message: "saldo insuficiente en el wallet"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Purchases godoc
// @Summary      Historial de compras de checkers del usuario
// @Tags         checkers
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchases [get]
func (h *CheckerHandler) Purchases(c *fiber.Ctx) error {
	out, err := h.uc.ListPurchases(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// --- Admin ---

// AdminList godoc
// @Summary      Listar checkers con filtros (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query  string  false  "not_sold | sold"
// @Param        type    query  string  false  "wassce | bece"
// @Success      200  {array}  dto.AdminCheckerResponse
// @Router       /api/admin/checkers [get]
func (h *CheckerHandler) AdminList(c *fiber.Ctx) error {
	out, err := h.uc.ListCheckers(c.UserContext(), c.Query("status"), c.Query("type"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AdminCreate godoc
// @Summary      Cargar checker al stock (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.SaveCheckerRequest  true  "type, message, amount"
// @Success      201  {object}  dto.AdminCheckerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/checkers [post]
func (h *CheckerHandler) AdminCreate(c *fiber.Ctx) error {
	var in dto.SaveCheckerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateChecker(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "checker inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AdminUpdate godoc
// @Summary      Editar checker no vendido (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "checker id"
// @Param        body  body  dto.SaveCheckerRequest  true  "type, message, amount"
// @Success      200  {object}  dto.AdminCheckerResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/checkers/{id} [put]
func (h *CheckerHandler) AdminUpdate(c *fiber.Ctx) error {
	var in dto.SaveCheckerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateChecker(c.UserContext(), c.Params("id"), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "checker inválido"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "checker no encontrado"})
		case domain.ErrCheckerSold:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CHECKER_SOLD", Message: "no se puede editar un checker vendido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AdminDelete godoc
// @Summary      Eliminar checker (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "checker id"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/checkers/{id} [delete]
func (h *CheckerHandler) AdminDelete(c *fiber.Ctx) error {
	if err := h.uc.DeleteChecker(c.UserContext(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "checker no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AdminPurgeSold godoc
// @Summary      Borrar del stock los checkers vendidos (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]int64
// @Router       /api/admin/checkers/sold [delete]
func (h *CheckerHandler) AdminPurgeSold(c *fiber.Ctx) error {
	n, err := h.uc.PurgeSold(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"deleted": n})
}

// AdminPurchases godoc
// @Summary      Historial global de ventas de checkers (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo por página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/admin/purchases [get]
func (h *CheckerHandler) AdminPurchases(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.ListAllPurchases(c.UserContext(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
