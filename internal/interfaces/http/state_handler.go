package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/gabrielsouza/lojavirtual-api/internal/application/dto"
	"github.com/gabrielsouza/lojavirtual-api/internal/application/usecase"
)

// StateHandler trata o catálogo de estados e cidades (público).
type StateHandler struct {
	uc *usecase.StateUseCase
}

// NewStateHandler constrói o handler.
func NewStateHandler(uc *usecase.StateUseCase) *StateHandler {
	return &StateHandler{uc: uc}
}

// List godoc
// @Summary      Listar estados ordenados por nome
// @Tags         states
// @Produce      json
// @Success      200  {array}  dto.StateResponse
// @Router       /api/states [get]
func (h *StateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Cities godoc
// @Summary      Listar cidades de um estado
// @Tags         states
// @Produce      json
// @Param        id  path  int  true  "ID do estado"
// @Success      200  {array}  dto.CityResponse
// @Router       /api/states/{id}/cities [get]
func (h *StateHandler) Cities(c *fiber.Ctx) error {
	stateID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id deve ser numérico"})
	}
	out, err := h.uc.CitiesByState(stateID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
