package usecase

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"storefront/internal/apiclient"
)

// 伝票ファイルが未選択
var ErrNoSlipSelected = errors.New("please select a file to upload")

type CardDetails struct {
	Name   string
	Number string
	Expiry string
	CVV    string
}

type CardValidator interface {
	ValidateCard(c CardDetails) error
}

type PaymentAPI interface {
	PayByCard(ctx context.Context, req apiclient.CardPaymentRequest) error
	UploadSlip(ctx context.Context, orderID string, filename string, r io.Reader) error
}

type PaymentUsecase struct {
	api       PaymentAPI
	validator CardValidator
	log       *logrus.Logger
}

func NewPaymentUsecase(api PaymentAPI, validator CardValidator, log *logrus.Logger) *PaymentUsecase {
	return &PaymentUsecase{
		api:       api,
		validator: validator,
		log:       log,
	}
}

// PayByCard はカード入力を検証してから送信する。検証エラーは送信せずに返す。
func (u *PaymentUsecase) PayByCard(ctx context.Context, orderID string, card CardDetails) error {
	if err := u.validator.ValidateCard(card); err != nil {
		return err
	}

	err := u.api.PayByCard(ctx, apiclient.CardPaymentRequest{
		OrderID: orderID,
		Name:    card.Name,
		Number:  card.Number,
		Expiry:  card.Expiry,
		CVV:     card.CVV,
	})
	if err != nil {
		return err
	}

	u.log.WithField("order_id", orderID).Info("card payment accepted")
	return nil
}

func (u *PaymentUsecase) UploadSlip(ctx context.Context, orderID string, filename string, r io.Reader) error {
	if filename == "" || r == nil {
		return ErrNoSlipSelected
	}

	if err := u.api.UploadSlip(ctx, orderID, filename, r); err != nil {
		return err
	}

	u.log.WithField("order_id", orderID).Info("slip uploaded")
	return nil
}
