package model

import "time"

// 数量割引（minQuantity個以上でdiscountPercent%引き）
type QuantityDiscount struct {
	MinQuantity     int64   `json:"minQuantity"`
	DiscountPercent float64 `json:"discountPercent"`
}

type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Pricing struct {
	BasePrice         float64            `json:"basePrice"`
	QuantityDiscounts []QuantityDiscount `json:"quantityDiscounts,omitempty"`
}

// UnitPriceFor は数量に対する割引後の単価を返す。
// 該当する最大のminQuantityのtierを適用する。
// カート合計はtierを適用しない（商品詳細の表示専用）。
func (p Pricing) UnitPriceFor(qty int64) float64 {
	price := p.BasePrice
	var applied int64 = 0

	for _, d := range p.QuantityDiscounts {
		if qty >= d.MinQuantity && d.MinQuantity >= applied {
			applied = d.MinQuantity
			price = p.BasePrice * (1 - d.DiscountPercent/100)
		}
	}

	return price
}

// APIから取得する商品。クライアント側では読み取り専用。
type Product struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Images      []string  `json:"images,omitempty"`
	Category    Category  `json:"category"`
	Pricing     Pricing   `json:"pricing"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}
