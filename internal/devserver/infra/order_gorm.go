package infra

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"storefront/internal/devserver/entity"
	repo "storefront/internal/devserver/repository"
)

type OrderGormRepository struct {
	db *gorm.DB
}

// DI
func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderGormRepository) FindByID(ctx context.Context, id string) (entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return entity.Order{}, err
	}
	return o, nil
}

// 同じidempotency keyの注文を探す（注文作成の重複防止）
func (r *OrderGormRepository) FindByIdempotencyKey(ctx context.Context, key string) (entity.Order, error) {
	var o entity.Order
	err := r.db.WithContext(ctx).Where("idempotency_key = ?", key).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entity.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return entity.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) Create(ctx context.Context, o *entity.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *OrderGormRepository) Update(ctx context.Context, o *entity.Order) error {
	// itemsはserializer:jsonなのでmapではなくstruct＋Selectで更新する
	res := r.db.WithContext(ctx).Model(&entity.Order{}).Where("id = ?", o.ID).
		Select("fname", "lname", "email", "address", "state", "city",
			"zip_code", "country", "phone", "items", "total_amount", "status").
		Updates(o)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *OrderGormRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Order{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
