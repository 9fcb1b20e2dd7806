package handler

import (
	"errors"
	"net/http"

	"storefront/internal/devserver/entity"
	"storefront/internal/devserver/repository"
	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// /api/orders の注文API
type OrderHandler struct {
	orders repository.OrderRepository
	auth   echo.MiddlewareFunc
}

func NewOrderHandler(orders repository.OrderRepository, auth echo.MiddlewareFunc) *OrderHandler {
	return &OrderHandler{orders: orders, auth: auth}
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/orders", h.list)
	e.GET("/api/orders/:id", h.detail)
	e.POST("/api/orders", h.create, h.auth)
	e.PUT("/api/orders/:id", h.update)
	e.DELETE("/api/orders/:id", h.remove)
}

type createOrderRequest struct {
	Fname          string            `json:"fname"`
	Lname          string            `json:"lname"`
	Email          string            `json:"email"`
	Address        string            `json:"address"`
	State          string            `json:"state"`
	City           string            `json:"city"`
	ZipCode        string            `json:"zipCode"`
	Country        string            `json:"country"`
	Phone          string            `json:"phone"`
	OrderItems     []model.OrderItem `json:"orderItems"`
	TotalAmount    float64           `json:"totalAmount"`
	Status         string            `json:"status"`
	IdempotencyKey string            `json:"idempotencyKey"`
}

type orderResponse struct {
	Success bool        `json:"success"`
	Order   model.Order `json:"order"`
	Message string      `json:"message,omitempty"`
}

func (h *OrderHandler) list(c echo.Context) error {
	rows, err := h.orders.List(c.Request().Context())
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	out := make([]model.Order, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToModel())
	}

	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) detail(c echo.Context) error {
	row, err := h.orders.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusNotFound, "order not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, row.ToModel())
}

func (h *OrderHandler) create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid body")
	}
	if len(req.OrderItems) == 0 {
		return writeError(c, http.StatusBadRequest, "orderItems must not be empty")
	}
	if req.Fname == "" || req.Email == "" {
		return writeError(c, http.StatusBadRequest, "fname and email are required")
	}

	ctx := c.Request().Context()

	// 同一キーの再送は既存注文をそのまま返す
	if req.IdempotencyKey != "" {
		if existing, err := h.orders.FindByIdempotencyKey(ctx, req.IdempotencyKey); err == nil {
			return c.JSON(http.StatusOK, orderResponse{Success: true, Order: existing.ToModel()})
		} else if !errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusInternalServerError, "internal error")
		}
	}

	status := req.Status
	if status == "" {
		status = string(model.OrderStatusPendingPayment)
	}

	var idemKey *string
	if req.IdempotencyKey != "" {
		idemKey = &req.IdempotencyKey
	}

	o := &entity.Order{
		ID:             uuid.NewString(),
		Fname:          req.Fname,
		Lname:          req.Lname,
		Email:          req.Email,
		Address:        req.Address,
		State:          req.State,
		City:           req.City,
		ZipCode:        req.ZipCode,
		Country:        req.Country,
		Phone:          req.Phone,
		Items:          req.OrderItems,
		TotalAmount:    req.TotalAmount,
		Status:         status,
		IdempotencyKey: idemKey,
	}
	if err := h.orders.Create(ctx, o); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	created, err := h.orders.FindByID(ctx, o.ID)
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, orderResponse{Success: true, Order: created.ToModel()})
}

func (h *OrderHandler) update(c echo.Context) error {
	ctx := c.Request().Context()

	row, err := h.orders.FindByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusNotFound, "order not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid body")
	}

	// 部分更新。空のフィールドは既存値を残す
	if req.Fname != "" {
		row.Fname = req.Fname
	}
	if req.Lname != "" {
		row.Lname = req.Lname
	}
	if req.Email != "" {
		row.Email = req.Email
	}
	if req.Address != "" {
		row.Address = req.Address
	}
	if req.State != "" {
		row.State = req.State
	}
	if req.City != "" {
		row.City = req.City
	}
	if req.ZipCode != "" {
		row.ZipCode = req.ZipCode
	}
	if req.Country != "" {
		row.Country = req.Country
	}
	if req.Phone != "" {
		row.Phone = req.Phone
	}
	if len(req.OrderItems) > 0 {
		row.Items = req.OrderItems
	}
	if req.TotalAmount > 0 {
		row.TotalAmount = req.TotalAmount
	}
	if req.Status != "" {
		row.Status = req.Status
	}

	if err := h.orders.Update(ctx, &row); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, orderResponse{Success: true, Order: row.ToModel()})
}

func (h *OrderHandler) remove(c echo.Context) error {
	if err := h.orders.Delete(c.Request().Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusNotFound, "order not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true})
}
