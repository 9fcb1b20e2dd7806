package handler

import (
	"errors"
	"net/http"

	"storefront/internal/devserver/repository"
	"storefront/internal/domain/model"

	"github.com/labstack/echo/v4"
)

// /api/products の公開API
type ProductHandler struct {
	products repository.ProductRepository
}

// DI
func NewProductHandler(products repository.ProductRepository) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/products/getAll", h.list)
	e.GET("/api/products/getAll/:id", h.detail)
}

func (h *ProductHandler) list(c echo.Context) error {
	rows, err := h.products.List(c.Request().Context())
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	out := make([]model.Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ToModel())
	}

	return c.JSON(http.StatusOK, map[string]any{"products": out})
}

func (h *ProductHandler) detail(c echo.Context) error {
	row, err := h.products.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusNotFound, "product not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, map[string]any{"product": row.ToModel()})
}
