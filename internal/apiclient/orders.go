package apiclient

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"storefront/internal/domain/model"
)

// 注文作成のペイロード。明細は作成時点のスナップショット。
type CreateOrderRequest struct {
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
	Status         model.OrderStatus `json:"status"`
	IdempotencyKey string            `json:"idempotencyKey,omitempty"`
}

type CreateOrderResponse struct {
	Success bool        `json:"success"`
	Order   model.Order `json:"order"`
}

func (c *Client) Orders(ctx context.Context) ([]model.Order, error) {
	var out []model.Order
	if err := c.getJSON(ctx, "/api/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Order(ctx context.Context, id string) (model.Order, error) {
	var out model.Order
	if err := c.getJSON(ctx, "/api/orders/"+id, &out); err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// CreateOrder は注文を作成して、サーバーが採番した注文を返す。
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (model.Order, error) {
	var out CreateOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders", req, &out); err != nil {
		return model.Order{}, err
	}
	if !out.Success {
		return model.Order{}, errors.Wrap(ErrUnexpectedShape, "create order: success=false")
	}
	return out.Order, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id string, order model.Order) error {
	return c.doJSON(ctx, http.MethodPut, "/api/orders/"+id, order, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/orders/"+id, nil, nil)
}
