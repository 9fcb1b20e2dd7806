package usecase

import (
	"context"

	"github.com/sirupsen/logrus"

	"storefront/internal/apiclient"
	"storefront/internal/domain/model"
)

type ReturnValidator interface {
	// 選択明細を元注文と突き合わせて検証する
	ValidateReturn(email string, items []model.ReturnItem, order model.Order, imageCount int) error
}

type ReturnAPI interface {
	Order(ctx context.Context, id string) (model.Order, error)
	Returns(ctx context.Context) ([]model.ReturnRequest, error)
	CreateReturn(ctx context.Context, req apiclient.CreateReturnRequest) error
}

type ReturnUsecase struct {
	api       ReturnAPI
	validator ReturnValidator
	log       *logrus.Logger
}

func NewReturnUsecase(api ReturnAPI, validator ReturnValidator, log *logrus.Logger) *ReturnUsecase {
	return &ReturnUsecase{
		api:       api,
		validator: validator,
		log:       log,
	}
}

// LoadOrder は返品フォームの元になる注文を取得する。
func (u *ReturnUsecase) LoadOrder(ctx context.Context, orderID string) (model.Order, error) {
	return u.api.Order(ctx, orderID)
}

func (u *ReturnUsecase) List(ctx context.Context) ([]model.ReturnRequest, error) {
	return u.api.Returns(ctx)
}

// Submit は元注文を取り直して検証してから送信する。
// 選択した各明細は理由必須・数量1〜元注文数量、画像は5枚まで。
func (u *ReturnUsecase) Submit(
	ctx context.Context,
	orderID string,
	email string,
	items []model.ReturnItem,
	images []apiclient.ReturnImage,
) error {
	order, err := u.api.Order(ctx, orderID)
	if err != nil {
		return err
	}

	if err := u.validator.ValidateReturn(email, items, order, len(images)); err != nil {
		return err
	}

	err = u.api.CreateReturn(ctx, apiclient.CreateReturnRequest{
		OrderID: orderID,
		Email:   email,
		Items:   items,
		Images:  images,
	})
	if err != nil {
		return err
	}

	u.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"items":    len(items),
	}).Info("return request submitted")

	return nil
}
