package model

import "time"

type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "Pending Payment"
	OrderStatusPaid           OrderStatus = "Paid"
	OrderStatusSlipUploaded   OrderStatus = "Slip Uploaded"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusCanceled       OrderStatus = "Canceled"
)

// 注文明細（作成時点のname/priceスナップショット）
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Price    float64 `json:"price"`
}

// サーバー所有の注文。クライアントはAPI経由でのみ読み書きする。
// totalAmount = 明細合計 + 配送料（作成時点）
type Order struct {
	ID          string      `json:"_id"`
	Fname       string      `json:"fname"`
	Lname       string      `json:"lname"`
	Email       string      `json:"email"`
	Address     string      `json:"address"`
	State       string      `json:"state"`
	City        string      `json:"city"`
	ZipCode     string      `json:"zipCode"`
	Country     string      `json:"country"`
	Phone       string      `json:"phone"`
	OrderItems  []OrderItem `json:"orderItems"`
	TotalAmount float64     `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt,omitempty"`
	UpdatedAt   time.Time   `json:"updatedAt,omitempty"`
}
