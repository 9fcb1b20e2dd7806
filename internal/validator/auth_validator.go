package validator

import (
	"errors"
	"regexp"
	"strings"

	"storefront/internal/usecase"
)

var (
	// 入力が不正
	ErrInvalidInput = errors.New("invalid input")

	// email形式が不正
	ErrInvalidEmail = errors.New("please enter a valid email")

	// パスワード不一致
	ErrPasswordMismatch = errors.New("passwords do not match")
)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(email string, password string) error {
	email = strings.TrimSpace(email)

	// 必須チェック
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	// email形式
	if !isEmailLike(email) {
		return ErrInvalidEmail
	}

	return nil
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(in usecase.RegisterInput) error {
	email := strings.TrimSpace(in.Email)

	if in.Name == "" || email == "" || in.Password == "" {
		return ErrInvalidInput
	}

	if !isEmailLike(email) {
		return ErrInvalidEmail
	}

	// パスワード確認
	if in.Password != in.ConfirmPassword {
		return ErrPasswordMismatch
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	re := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	return re.MatchString(s)
}
