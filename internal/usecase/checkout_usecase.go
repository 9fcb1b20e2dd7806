package usecase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"storefront/internal/apiclient"
	"storefront/internal/domain/model"
	"storefront/internal/store"
)

// 表示通貨と配送料（注文合計に必ず加算する）
const (
	Currency    = "Rs"
	DeliveryFee = 200
)

// カートが空（またはカタログに残っている商品が1つも無い）
var ErrEmptyCart = errors.New("cart is empty")

// 配送先フォームの入力
type DeliveryDetails struct {
	Fname   string
	Lname   string
	Email   string
	Address string
	State   string
	City    string
	ZipCode string
	Country string
	Phone   string
}

type CheckoutValidator interface {
	ValidateDelivery(d DeliveryDetails) error
}

// カートの読み取り面（CartStoreが実装）
type CartReader interface {
	Lines() []store.CartLine
	Total() float64
	ProductByID(id string) (model.Product, bool)
}

type CheckoutOrderAPI interface {
	CreateOrder(ctx context.Context, req apiclient.CreateOrderRequest) (model.Order, error)
}

type IDGenerator interface {
	NewID() string
}

type CheckoutUsecase struct {
	api       CheckoutOrderAPI
	cart      CartReader
	validator CheckoutValidator
	idGen     IDGenerator
	log       *logrus.Logger
}

func NewCheckoutUsecase(
	api CheckoutOrderAPI,
	cart CartReader,
	validator CheckoutValidator,
	idGen IDGenerator,
	log *logrus.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		api:       api,
		cart:      cart,
		validator: validator,
		idGen:     idGen,
		log:       log,
	}
}

// OrderItems はカート×カタログをjoinして注文明細のスナップショットを作る。
// カタログから消えた商品は黙ってスキップする（注文サマリー表示と共用）。
func (u *CheckoutUsecase) OrderItems() []model.OrderItem {
	lines := u.cart.Lines()
	items := make([]model.OrderItem, 0, len(lines))

	for _, line := range lines {
		p, ok := u.cart.ProductByID(line.ProductID)
		if !ok {
			continue
		}
		items = append(items, model.OrderItem{
			Name:     p.Name,
			Quantity: line.Quantity,
			Price:    p.Pricing.BasePrice,
		})
	}

	return items
}

// Total は商品合計＋配送料。
func (u *CheckoutUsecase) Total() float64 {
	return u.cart.Total() + DeliveryFee
}

// PlaceOrder は検証→注文作成。成功してもカートは消さない（支払い画面へ進むだけ）。
func (u *CheckoutUsecase) PlaceOrder(ctx context.Context, d DeliveryDetails) (model.Order, error) {
	if err := u.validator.ValidateDelivery(d); err != nil {
		return model.Order{}, err
	}

	items := u.OrderItems()
	if len(items) == 0 {
		return model.Order{}, ErrEmptyCart
	}

	req := apiclient.CreateOrderRequest{
		Fname:          d.Fname,
		Lname:          d.Lname,
		Email:          d.Email,
		Address:        d.Address,
		State:          d.State,
		City:           d.City,
		ZipCode:        d.ZipCode,
		Country:        d.Country,
		Phone:          d.Phone,
		OrderItems:     items,
		TotalAmount:    u.Total(),
		Status:         model.OrderStatusPendingPayment,
		IdempotencyKey: u.idGen.NewID(),
	}

	order, err := u.api.CreateOrder(ctx, req)
	if err != nil {
		return model.Order{}, err
	}

	u.log.WithFields(logrus.Fields{
		"order_id": order.ID,
		"total":    order.TotalAmount,
	}).Info("order placed")

	return order, nil
}
