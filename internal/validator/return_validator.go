package validator

import (
	"errors"
	"strings"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

// 証拠画像の上限
const maxReturnImages = 5

var (
	ErrNoItemsSelected = errors.New("select at least one item to return")
	ErrReturnReason    = errors.New("return reason is required for every selected item")
	ErrReturnQuantity  = errors.New("return quantity must be between 1 and the ordered quantity")
	ErrItemNotInOrder  = errors.New("selected item is not part of the order")
	ErrTooManyImages   = errors.New("up to 5 evidence images are allowed")
)

type returnValidator struct{}

func NewReturnValidator() usecase.ReturnValidator {
	return &returnValidator{}
}

// 返品リクエストを元注文と突き合わせて検証する。
// 各明細：理由必須、数量は1〜元注文の数量。
func (v *returnValidator) ValidateReturn(
	email string,
	items []model.ReturnItem,
	order model.Order,
	imageCount int,
) error {
	if !isEmailLike(strings.TrimSpace(email)) {
		return ErrInvalidEmail
	}

	if len(items) == 0 {
		return ErrNoItemsSelected
	}

	if imageCount > maxReturnImages {
		return ErrTooManyImages
	}

	// 元注文の数量をnameで引く（明細のキーはname）
	ordered := map[string]int64{}
	for _, it := range order.OrderItems {
		ordered[it.Name] = it.Quantity
	}

	for _, it := range items {
		orderedQty, ok := ordered[it.Name]
		if !ok {
			return ErrItemNotInOrder
		}
		if strings.TrimSpace(it.Reason) == "" {
			return ErrReturnReason
		}
		if it.Quantity < 1 || it.Quantity > orderedQty {
			return ErrReturnQuantity
		}
	}

	return nil
}
