package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Recargas-api/internal/application/dto"
	"github.com/jhoicas/Recargas-api/internal/infrastructure/toppily"
)

// VendorHandler expone el catálogo de referencia del vendor (pantalla admin).
type VendorHandler struct {
	client *toppily.Client
}

// NewVendorHandler construye el handler del vendor.
func NewVendorHandler(client *toppily.Client) *VendorHandler {
	return &VendorHandler{client: client}
}

// Packages godoc
// @Summary      Paquetes disponibles en el vendor (admin)
// @Description  Consulta en vivo el catálogo del vendor para armar ofertas.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   toppily.Package
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/vendor/packages [get]
func (h *VendorHandler) Packages(c *fiber.Ctx) error {
	packages, err := h.client.FetchPackages(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "VENDOR_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(packages)
}
