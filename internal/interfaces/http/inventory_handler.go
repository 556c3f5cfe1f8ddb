package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP del motor de inventario
// (protegido): creación de movimientos, workflow de estados y consultas.
type InventoryHandler struct {
	processor *inventory.TransactionProcessor
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(processor *inventory.TransactionProcessor) *InventoryHandler {
	return &InventoryHandler{processor: processor}
}

// CreateReceipt godoc
// @Summary      Registrar entrada de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "product, quantity, warehouse; reference y notes opcionales"
// @Success      201   {object}  dto.DataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/receipt [post]
func (h *InventoryHandler) CreateReceipt(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.processor.CreateReceipt(c.Context(), in, GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Data: out})
}

// CreateDelivery godoc
// @Summary      Registrar salida de inventario
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDeliveryRequest  true  "product, quantity, warehouse"
// @Success      201   {object}  dto.DataResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/delivery [post]
func (h *InventoryHandler) CreateDelivery(c *fiber.Ctx) error {
	var in dto.CreateDeliveryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.processor.CreateDelivery(c.Context(), in, GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Data: out})
}

// CreateTransfer godoc
// @Summary      Registrar traslado entre bodegas
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "product, quantity, fromWarehouse, toWarehouse"
// @Success      201   {object}  dto.DataResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) CreateTransfer(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.processor.CreateTransfer(c.Context(), in, GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Data: out})
}

// CreateAdjustment godoc
// @Summary      Registrar ajuste por conteo físico
// @Description  quantity es la cantidad CONTADA (puede ser cero); el saldo
//               queda exactamente en ese valor y difference = contada − previo.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAdjustmentRequest  true  "product, quantity (contada), warehouse"
// @Success      201   {object}  dto.DataResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustment [post]
func (h *InventoryHandler) CreateAdjustment(c *fiber.Ctx) error {
	var in dto.CreateAdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.processor.CreateAdjustment(c.Context(), in, GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.DataResponse{Success: true, Data: out})
}

// ChangeStatus godoc
// @Summary      Mover una transacción por el workflow de estados
// @Description  draft→waiting→ready→done; draft|waiting|ready→canceled. Al
//               entrar a done se aplica el ledger. done→done es no-op.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID de la transacción"
// @Param        body  body  dto.ChangeStatusRequest  true  "status destino"
// @Success      200   {object}  dto.DataResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/status [post]
func (h *InventoryHandler) ChangeStatus(c *fiber.Ctx) error {
	var in dto.ChangeStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.NewError("INVALID_BODY", "cuerpo inválido"))
	}
	if !entity.IsValidStatus(in.Status) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewError("VALIDATION", "status desconocido"))
	}
	out, err := h.processor.ChangeStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: out})
}

// Cancel godoc
// @Summary      Cancelar una transacción pendiente
// @Description  Equivale a status=canceled. Cancelar algo ya done es 409.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/cancel [post]
func (h *InventoryHandler) Cancel(c *fiber.Ctx) error {
	out, err := h.processor.ChangeStatus(c.Context(), c.Params("id"), entity.StatusCanceled)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: out})
}

// List godoc
// @Summary      Listar transacciones de inventario
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        type       query  string  false  "receipt|delivery|transfer|adjustment"
// @Param        status     query  string  false  "draft|waiting|ready|done|canceled"
// @Param        warehouse  query  string  false  "coincide contra warehouse, fromWarehouse o toWarehouse"
// @Param        limit      query  int     false  "por defecto 50"
// @Param        offset     query  int     false  "por defecto 0"
// @Success      200  {object}  dto.ListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{
		Type:      c.Query("type"),
		Status:    c.Query("status"),
		Warehouse: c.Query("warehouse"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	}
	if filter.Type != "" && !entity.IsValidType(filter.Type) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewError("VALIDATION", "type desconocido"))
	}
	if filter.Status != "" && !entity.IsValidStatus(filter.Status) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.NewError("VALIDATION", "status desconocido"))
	}
	list, err := h.processor.List(c.Context(), filter)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.ListResponse{Success: true, Count: len(list), Data: list})
}

// GetByID godoc
// @Summary      Obtener una transacción por ID
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.DataResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.processor.Get(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.DataResponse{Success: true, Data: out})
}
