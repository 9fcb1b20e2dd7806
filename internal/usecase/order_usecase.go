package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"storefront/internal/domain/model"
)

type OrdersAPI interface {
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (model.Order, error)
	UpdateOrder(ctx context.Context, id string, order model.Order) error
	DeleteOrder(ctx context.Context, id string) error
}

// OrderUsecase は注文一覧・詳細・編集・削除の薄いフロー。
type OrderUsecase struct {
	api OrdersAPI
	log *logrus.Logger
}

func NewOrderUsecase(api OrdersAPI, log *logrus.Logger) *OrderUsecase {
	return &OrderUsecase{api: api, log: log}
}

func (u *OrderUsecase) List(ctx context.Context) ([]model.Order, error) {
	return u.api.Orders(ctx)
}

func (u *OrderUsecase) Get(ctx context.Context, id string) (model.Order, error) {
	return u.api.Order(ctx, id)
}

func (u *OrderUsecase) Update(ctx context.Context, id string, order model.Order) error {
	if err := u.api.UpdateOrder(ctx, id, order); err != nil {
		return err
	}
	u.log.WithField("order_id", id).Info("order updated")
	return nil
}

func (u *OrderUsecase) Delete(ctx context.Context, id string) error {
	if err := u.api.DeleteOrder(ctx, id); err != nil {
		return err
	}
	u.log.WithField("order_id", id).Info("order deleted")
	return nil
}
