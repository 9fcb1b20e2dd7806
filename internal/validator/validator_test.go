package validator

import (
	"testing"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestAuthValidator_ValidateLogin(t *testing.T) {
	v := NewAuthValidator()

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"ok", "user@test.com", "pw", nil},
		{"empty email", "", "pw", ErrInvalidInput},
		{"empty password", "user@test.com", "", ErrInvalidInput},
		{"no at-mark", "usertest.com", "pw", ErrInvalidEmail},
		{"no domain dot", "user@testcom", "pw", ErrInvalidEmail},
		{"space inside", "us er@test.com", "pw", ErrInvalidEmail},
		{"trims spaces", "  user@test.com  ", "pw", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogin(tt.email, tt.password)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestAuthValidator_ValidateRegister(t *testing.T) {
	v := NewAuthValidator()

	base := usecase.RegisterInput{
		Name:            "Taro",
		Email:           "user@test.com",
		Password:        "pw123456",
		ConfirmPassword: "pw123456",
	}

	assert.NoError(t, v.ValidateRegister(base))

	noName := base
	noName.Name = ""
	assert.ErrorIs(t, v.ValidateRegister(noName), ErrInvalidInput)

	badEmail := base
	badEmail.Email = "not-an-email"
	assert.ErrorIs(t, v.ValidateRegister(badEmail), ErrInvalidEmail)

	mismatch := base
	mismatch.ConfirmPassword = "different"
	assert.ErrorIs(t, v.ValidateRegister(mismatch), ErrPasswordMismatch)
}

func TestDeliveryValidator(t *testing.T) {
	v := NewDeliveryValidator()

	ok := usecase.DeliveryDetails{
		Fname:   "Taro",
		Lname:   "Yamada",
		Address: "1-2-3 Galle Road",
		City:    "Colombo",
		Email:   "user@test.com",
		Phone:   "0771234567",
	}
	assert.NoError(t, v.ValidateDelivery(ok))

	badEmail := ok
	badEmail.Email = "nope"
	assert.ErrorIs(t, v.ValidateDelivery(badEmail), ErrInvalidEmail)

	// 姓・名・住所・市は必須
	required := []struct {
		name   string
		mutate func(*usecase.DeliveryDetails)
	}{
		{"missing fname", func(d *usecase.DeliveryDetails) { d.Fname = "" }},
		{"missing lname", func(d *usecase.DeliveryDetails) { d.Lname = "  " }},
		{"missing address", func(d *usecase.DeliveryDetails) { d.Address = "" }},
		{"missing city", func(d *usecase.DeliveryDetails) { d.City = "" }},
	}
	for _, tt := range required {
		t.Run(tt.name, func(t *testing.T) {
			d := ok
			tt.mutate(&d)
			assert.ErrorIs(t, v.ValidateDelivery(d), ErrInvalidInput)
		})
	}

	tests := []struct {
		name  string
		phone string
		want  error
	}{
		{"too short", "123456789", ErrInvalidPhone},
		{"too long", "1234567890123456", ErrInvalidPhone},
		{"letters", "07712345ab", ErrInvalidPhone},
		{"10 digits", "0771234567", nil},
		{"15 digits", "123456789012345", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ok
			d.Phone = tt.phone
			err := v.ValidateDelivery(d)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

func TestCardValidator(t *testing.T) {
	v := NewCardValidator()

	ok := usecase.CardDetails{
		Name:   "TARO YAMADA",
		Number: "4111111111111111",
		Expiry: "12/27",
		CVV:    "123",
	}
	assert.NoError(t, v.ValidateCard(ok))

	// 空白入りの番号は除去してから判定
	spaced := ok
	spaced.Number = "4111 1111 1111 1111"
	assert.NoError(t, v.ValidateCard(spaced))

	tests := []struct {
		name   string
		mutate func(*usecase.CardDetails)
		want   error
	}{
		{"empty name", func(c *usecase.CardDetails) { c.Name = "  " }, ErrCardName},
		{"short number", func(c *usecase.CardDetails) { c.Number = "4111" }, ErrCardNumber},
		{"letters in number", func(c *usecase.CardDetails) { c.Number = "4111x11111111111" }, ErrCardNumber},
		{"expiry no slash", func(c *usecase.CardDetails) { c.Expiry = "1227" }, ErrCardExpiry},
		{"expiry long year", func(c *usecase.CardDetails) { c.Expiry = "12/2027" }, ErrCardExpiry},
		{"cvv 4 digits", func(c *usecase.CardDetails) { c.CVV = "1234" }, ErrCardCVV},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ok
			tt.mutate(&c)
			assert.ErrorIs(t, v.ValidateCard(c), tt.want)
		})
	}
}

func TestReturnValidator(t *testing.T) {
	v := NewReturnValidator()

	order := model.Order{
		ID: "o1",
		OrderItems: []model.OrderItem{
			{Name: "Rice", Quantity: 3, Price: 1600},
			{Name: "Tea", Quantity: 1, Price: 450},
		},
	}

	ok := []model.ReturnItem{{Name: "Rice", Quantity: 2, Reason: "damaged bag"}}
	assert.NoError(t, v.ValidateReturn("user@test.com", ok, order, 2))

	assert.ErrorIs(t, v.ValidateReturn("bad-email", ok, order, 0), ErrInvalidEmail)
	assert.ErrorIs(t, v.ValidateReturn("user@test.com", nil, order, 0), ErrNoItemsSelected)
	assert.ErrorIs(t, v.ValidateReturn("user@test.com", ok, order, 6), ErrTooManyImages)

	notInOrder := []model.ReturnItem{{Name: "Coffee", Quantity: 1, Reason: "x"}}
	assert.ErrorIs(t, v.ValidateReturn("user@test.com", notInOrder, order, 0), ErrItemNotInOrder)

	noReason := []model.ReturnItem{{Name: "Rice", Quantity: 1, Reason: "  "}}
	assert.ErrorIs(t, v.ValidateReturn("user@test.com", noReason, order, 0), ErrReturnReason)

	tooMany := []model.ReturnItem{{Name: "Rice", Quantity: 4, Reason: "x"}}
	assert.ErrorIs(t, v.ValidateReturn("user@test.com", tooMany, order, 0), ErrReturnQuantity)

	zero := []model.ReturnItem{{Name: "Tea", Quantity: 0, Reason: "x"}}
	assert.ErrorIs(t, v.ValidateReturn("user@test.com", zero, order, 0), ErrReturnQuantity)
}
