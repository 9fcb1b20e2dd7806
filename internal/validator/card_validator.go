package validator

import (
	"errors"
	"regexp"
	"strings"

	"storefront/internal/usecase"
)

var (
	ErrCardName   = errors.New("cardholder name is required")
	ErrCardNumber = errors.New("valid 16-digit card number required")
	ErrCardExpiry = errors.New("expiry must be in MM/YY")
	ErrCardCVV    = errors.New("cvv must be 3 digits")
)

var (
	cardNumberRe = regexp.MustCompile(`^\d{16}$`)
	cardExpiryRe = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cardCVVRe    = regexp.MustCompile(`^\d{3}$`)
)

type cardValidator struct{}

func NewCardValidator() usecase.CardValidator {
	return &cardValidator{}
}

// カード入力を検証する。番号は空白を除去してから16桁チェック。
func (v *cardValidator) ValidateCard(c usecase.CardDetails) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrCardName
	}

	number := strings.ReplaceAll(c.Number, " ", "")
	if !cardNumberRe.MatchString(number) {
		return ErrCardNumber
	}

	if !cardExpiryRe.MatchString(c.Expiry) {
		return ErrCardExpiry
	}

	if !cardCVVRe.MatchString(c.CVV) {
		return ErrCardCVV
	}

	return nil
}
