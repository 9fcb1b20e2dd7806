package infra

import (
	"context"

	"gorm.io/gorm"

	"storefront/internal/devserver/entity"
)

type ReturnGormRepository struct {
	db *gorm.DB
}

// DI
func NewReturnGormRepository(db *gorm.DB) *ReturnGormRepository {
	return &ReturnGormRepository{db: db}
}

func (r *ReturnGormRepository) List(ctx context.Context) ([]entity.ReturnRequest, error) {
	var returns []entity.ReturnRequest
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&returns).Error
	if err != nil {
		return nil, err
	}
	return returns, nil
}

func (r *ReturnGormRepository) Create(ctx context.Context, ret *entity.ReturnRequest) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

type PaymentGormRepository struct {
	db *gorm.DB
}

// DI
func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) Create(ctx context.Context, p *entity.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}
