package validator

import (
	"errors"
	"regexp"
	"strings"

	"storefront/internal/usecase"
)

var (
	// 電話番号は数字のみ10〜15桁
	ErrInvalidPhone = errors.New("phone number must be 10 to 15 digits")
)

var phoneRe = regexp.MustCompile(`^\d{10,15}$`)

type deliveryValidator struct{}

func NewDeliveryValidator() usecase.CheckoutValidator {
	return &deliveryValidator{}
}

// 配送先フォームを検証する。エラーは送信前にインライン表示される。
// 必須：姓・名・住所・市、email形式、電話番号。
func (v *deliveryValidator) ValidateDelivery(d usecase.DeliveryDetails) error {
	if strings.TrimSpace(d.Fname) == "" ||
		strings.TrimSpace(d.Lname) == "" ||
		strings.TrimSpace(d.Address) == "" ||
		strings.TrimSpace(d.City) == "" {
		return ErrInvalidInput
	}

	email := strings.TrimSpace(d.Email)
	if email == "" || !isEmailLike(email) {
		return ErrInvalidEmail
	}

	if !phoneRe.MatchString(d.Phone) {
		return ErrInvalidPhone
	}

	return nil
}
