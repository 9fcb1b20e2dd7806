package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"storefront/internal/devserver/entity"
	"storefront/internal/devserver/repository"
	"storefront/internal/domain/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVVRe    = regexp.MustCompile(`^\d{3}$`)
)

// /api/payments の支払いAPI
type PaymentHandler struct {
	orders   repository.OrderRepository
	payments repository.PaymentRepository
}

func NewPaymentHandler(orders repository.OrderRepository, payments repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{orders: orders, payments: payments}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/payments/card", h.payByCard)
	e.POST("/api/payments/upload-slip", h.uploadSlip)
}

type cardPaymentRequest struct {
	OrderID string `json:"orderId"`
	Name    string `json:"name"`
	Number  string `json:"number"`
	Expiry  string `json:"expiry"`
	CVV     string `json:"cvv"`
}

func (h *PaymentHandler) payByCard(c echo.Context) error {
	var req cardPaymentRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid body")
	}

	number := strings.ReplaceAll(req.Number, " ", "")
	switch {
	case req.OrderID == "":
		return writeError(c, http.StatusBadRequest, "orderId is required")
	case req.Name == "":
		return writeError(c, http.StatusBadRequest, "cardholder name is required")
	case !cardNumberRe.MatchString(number):
		return writeError(c, http.StatusBadRequest, "card number must be 16 digits")
	case !cardExpiryRe.MatchString(req.Expiry):
		return writeError(c, http.StatusBadRequest, "expiry must be MM/YY")
	case !cardCVVRe.MatchString(req.CVV):
		return writeError(c, http.StatusBadRequest, "cvv must be 3 digits")
	}

	ctx := c.Request().Context()

	order, err := h.orders.FindByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusNotFound, "order not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	p := &entity.Payment{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		Method:    "card",
		CardLast4: number[len(number)-4:],
	}
	if err := h.payments.Create(ctx, p); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	order.Status = string(model.OrderStatusPaid)
	if err := h.orders.Update(ctx, &order); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "payment accepted"})
}

func (h *PaymentHandler) uploadSlip(c echo.Context) error {
	orderID := c.FormValue("orderId")
	if orderID == "" {
		return writeError(c, http.StatusBadRequest, "orderId is required")
	}

	fh, err := c.FormFile("slip")
	if err != nil {
		return writeError(c, http.StatusBadRequest, "slip file is required")
	}

	ctx := c.Request().Context()

	order, err := h.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return writeError(c, http.StatusNotFound, "order not found")
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	// devserverなのでファイル本体は保存せず名前だけ記録する
	p := &entity.Payment{
		ID:           uuid.NewString(),
		OrderID:      order.ID,
		Method:       "slip",
		SlipFilename: fh.Filename,
	}
	if err := h.payments.Create(ctx, p); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	order.Status = string(model.OrderStatusSlipUploaded)
	if err := h.orders.Update(ctx, &order); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "slip received"})
}
