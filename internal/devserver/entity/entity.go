// Package entity はdevserverのDBエンティティ。
// クライアントのwire型（internal/domain/model）とは分離し、ここで相互変換する。
package entity

import (
	"time"

	"storefront/internal/domain/model"
)

type User struct {
	ID           string `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	BusinessName string
	Location     string
	Address      string
	Contact      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Product struct {
	ID                  string                   `gorm:"primaryKey"`
	Name                string                   `gorm:"type:varchar(255);not null"`
	Description         string                   `gorm:"type:text"`
	CategoryName        string                   `gorm:"type:varchar(255)"`
	CategoryDescription string                   `gorm:"type:text"`
	BasePrice           float64                  `gorm:"not null"`
	Images              []string                 `gorm:"serializer:json"`
	Discounts           []model.QuantityDiscount `gorm:"serializer:json"`
	CreatedAt           time.Time                `gorm:"not null;autoCreateTime"`
	UpdatedAt           time.Time                `gorm:"not null;autoUpdateTime"`
}

func (p Product) ToModel() model.Product {
	return model.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Images:      p.Images,
		Category: model.Category{
			Name:        p.CategoryName,
			Description: p.CategoryDescription,
		},
		Pricing: model.Pricing{
			BasePrice:         p.BasePrice,
			QuantityDiscounts: p.Discounts,
		},
		CreatedAt: p.CreatedAt,
	}
}

type Order struct {
	ID             string            `gorm:"primaryKey"`
	Fname          string            `gorm:"not null"`
	Lname          string            `gorm:"not null"`
	Email          string            `gorm:"not null;index"`
	Address        string
	State          string
	City           string
	ZipCode        string
	Country        string
	Phone          string
	Items          []model.OrderItem `gorm:"serializer:json"`
	TotalAmount    float64           `gorm:"not null"`
	Status         string            `gorm:"type:varchar(30);not null;index"`
	// 未指定はNULL（空文字だとunique indexで2件目が衝突する）
	IdempotencyKey *string           `gorm:"type:varchar(255);uniqueIndex"`
	CreatedAt      time.Time         `gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"not null;autoUpdateTime"`
}

func (o Order) ToModel() model.Order {
	return model.Order{
		ID:          o.ID,
		Fname:       o.Fname,
		Lname:       o.Lname,
		Email:       o.Email,
		Address:     o.Address,
		State:       o.State,
		City:        o.City,
		ZipCode:     o.ZipCode,
		Country:     o.Country,
		Phone:       o.Phone,
		OrderItems:  o.Items,
		TotalAmount: o.TotalAmount,
		Status:      model.OrderStatus(o.Status),
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

// 支払い記録（カード or 伝票）
type Payment struct {
	ID           string    `gorm:"primaryKey"`
	OrderID      string    `gorm:"not null;index"`
	Method       string    `gorm:"type:varchar(10);not null"` // card / slip
	CardLast4    string    `gorm:"type:varchar(4)"`
	SlipFilename string
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
}

type ReturnRequest struct {
	ID        string             `gorm:"primaryKey"`
	OrderID   string             `gorm:"not null;index"`
	Email     string             `gorm:"not null"`
	Items     []model.ReturnItem `gorm:"serializer:json"`
	Images    []string           `gorm:"serializer:json"`
	Status    string             `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time          `gorm:"not null;autoCreateTime"`
}

func (r ReturnRequest) ToModel() model.ReturnRequest {
	return model.ReturnRequest{
		ID:        r.ID,
		OrderID:   r.OrderID,
		Email:     r.Email,
		Items:     r.Items,
		Images:    r.Images,
		Status:    model.ReturnStatus(r.Status),
		CreatedAt: r.CreatedAt,
	}
}
