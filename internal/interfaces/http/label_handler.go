package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/labels"
)

// LabelHandler hojas de etiquetas (protegido).
type LabelHandler struct {
	uc *labels.UseCase
}

// NewLabelHandler construye el handler.
func NewLabelHandler(uc *labels.UseCase) *LabelHandler {
	return &LabelHandler{uc: uc}
}

// Generate godoc
// @Summary      Hoja de etiquetas (PDF)
// @Tags         labels
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.LabelsRequest  true  "Productos, tipo de código y copias"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/labels [post]
func (h *LabelHandler) Generate(c *fiber.Ctx) error {
	var in dto.LabelsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	pdfBytes, err := h.uc.LabelsPDF(c.UserContext(), GetStoreID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="etiquetas.pdf"`)
	return c.Send(pdfBytes)
}
