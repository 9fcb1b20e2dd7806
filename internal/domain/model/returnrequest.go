package model

import "time"

type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "Pending"
	ReturnStatusApproved ReturnStatus = "Approved"
	ReturnStatusRejected ReturnStatus = "Rejected"
)

// 返品対象の明細。quantityは1以上、元注文の数量以下。
type ReturnItem struct {
	Name     string  `json:"name"`
	Quantity int64   `json:"quantity"`
	Reason   string  `json:"reason"`
	Price    float64 `json:"price"`
}

// サーバー所有の返品リクエスト。
type ReturnRequest struct {
	ID        string       `json:"_id"`
	OrderID   string       `json:"orderId"`
	Email     string       `json:"email"`
	Items     []ReturnItem `json:"items"`
	Images    []string     `json:"images,omitempty"`
	Status    ReturnStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
}
