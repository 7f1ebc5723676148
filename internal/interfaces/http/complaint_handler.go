package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/application/usecase"
	"github.com/jhoicas/Recargas-api/internal/domain"
)

// ComplaintHandler maneja reclamos de clientes.
type ComplaintHandler struct {
	uc *usecase.ComplaintUseCase
}

// NewComplaintHandler construye el handler de reclamos.
func NewComplaintHandler(uc *usecase.ComplaintUseCase) *ComplaintHandler {
	return &ComplaintHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar reclamo sobre una orden
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateComplaintRequest  true  "order_id, description, whatsapp"
// @Success      201  {object}  dto.ComplaintResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/complaints [post]
func (h *ComplaintHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateComplaintRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.CreateComplaint(c.UserContext(), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "order_id, description y whatsapp son requeridos"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "la orden pertenece a otro usuario"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Reclamos del usuario
// @Tags         complaints
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ComplaintResponse
// @Router       /api/complaints [get]
func (h *ComplaintHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListComplaints(c.UserContext(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AdminList godoc
// @Summary      Reclamos de todos los usuarios con filtros (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status      query  string  false  "pending | resolved"
// @Param        start_date  query  string  false  "YYYY-MM-DD"
// @Param        end_date    query  string  false  "YYYY-MM-DD"
// @Success      200  {array}  dto.ComplaintResponse
// @Router       /api/admin/complaints [get]
func (h *ComplaintHandler) AdminList(c *fiber.Ctx) error {
	var in dto.ComplaintFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.ListAllComplaints(c.UserContext(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas inválidas (formato YYYY-MM-DD)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AdminResolve godoc
// @Summary      Marcar reclamo como resuelto (admin)
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "complaint id"
// @Success      204  "sin contenido"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/complaints/{id}/resolve [put]
func (h *ComplaintHandler) AdminResolve(c *fiber.Ctx) error {
	if err := h.uc.ResolveComplaint(c.UserContext(), c.Params("id")); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reclamo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
