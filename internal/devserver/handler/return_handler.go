package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"storefront/internal/devserver/entity"
	"storefront/internal/devserver/repository"
	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxReturnImages = 5

// /api/returns の返品API
type ReturnHandler struct {
	orders  repository.OrderRepository
	returns repository.ReturnRepository
}

func NewReturnHandler(orders repository.OrderRepository, returns repository.ReturnRepository) *ReturnHandler {
	return &ReturnHandler{orders: orders, returns: returns}
}

func (h *ReturnHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/returns", h.list)
	e.POST("/api/returns", h.create)
}

func (h *ReturnHandler) list(c echo.Context) error {
	rows, err := h.returns.List(c.Request().Context())
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	out := make([]model.ReturnRequest, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToModel())
	}

	return c.JSON(http.StatusOK, out)
}

// multipart/form-data: orderId, email, items(JSON), returnImages(files)
func (h *ReturnHandler) create(c echo.Context) error {
	orderID := c.FormValue("orderId")
	email := c.FormValue("email")
	itemsJSON := c.FormValue("items")

	if orderID == "" || email == "" {
		return writeError(c, http.StatusBadRequest, "orderId and email are required")
	}

	var items []model.ReturnItem
	if err := json.Unmarshal([]byte(itemsJSON), &items); err != nil {
		return writeError(c, http.StatusBadRequest, "items must be valid JSON")
	}
	if len(items) == 0 {
		return writeError(c, http.StatusBadRequest, "at least one item is required")
	}

	ctx := c.Request().Context()

	order, err := h.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusNotFound, "order not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	// 返品対象は注文内の商品に限る。数量も注文数を超えない
	ordered := make(map[string]int64, len(order.Items))
	for _, it := range order.Items {
		ordered[it.Name] = it.Quantity
	}
	for _, it := range items {
		if it.Reason == "" {
			return writeError(c, http.StatusBadRequest, "reason is required for every item")
		}
		max, ok := ordered[it.Name]
		if !ok {
			return writeError(c, http.StatusBadRequest, "item not in order: "+it.Name)
		}
		if it.Quantity < 1 || it.Quantity > max {
			return writeError(c, http.StatusBadRequest, "invalid quantity for item: "+it.Name)
		}
	}

	var images []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fh := range form.File["returnImages"] {
			images = append(images, fh.Filename)
		}
	}
	if len(images) > maxReturnImages {
		return writeError(c, http.StatusBadRequest, "too many images")
	}

	r := &entity.ReturnRequest{
		ID:      uuid.NewString(),
		OrderID: order.ID,
		Email:   email,
		Items:   items,
		Images:  images,
		Status:  string(model.ReturnStatusPending),
	}
	if err := h.returns.Create(ctx, r); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Success: true, Message: "return request received"})
}
