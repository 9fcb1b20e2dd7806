// Package repository はdevserverのRepositoryインターフェース。
package repository

import (
	"context"
	"errors"

	"storefront/internal/devserver/entity"
)

var ErrNotFound = errors.New("not found")

type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

type ProductRepository interface {
	List(ctx context.Context) ([]entity.Product, error)
	FindByID(ctx context.Context, id string) (entity.Product, error)
	Create(ctx context.Context, p *entity.Product) error
}

type OrderRepository interface {
	List(ctx context.Context) ([]entity.Order, error)
	FindByID(ctx context.Context, id string) (entity.Order, error)
	FindByIdempotencyKey(ctx context.Context, key string) (entity.Order, error)
	Create(ctx context.Context, o *entity.Order) error
	Update(ctx context.Context, o *entity.Order) error
	Delete(ctx context.Context, id string) error
}

type PaymentRepository interface {
	Create(ctx context.Context, p *entity.Payment) error
}

type ReturnRepository interface {
	List(ctx context.Context) ([]entity.ReturnRequest, error)
	Create(ctx context.Context, r *entity.ReturnRequest) error
}
