package e2e

import (
	"context"
	"testing"

	"storefront/internal/apiclient"
	"storefront/internal/domain/model"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout_PlaceOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerAndLogin(t, env, "checkout@test.com")
	require.NoError(t, env.Catalog.Load(ctx))

	products := env.Catalog.Products()
	require.NotEmpty(t, products)

	env.Cart.Add(products[0].ID, 2)

	order, err := env.Checkout.PlaceOrder(ctx, deliveryDetails("checkout@test.com"))
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, model.OrderStatusPendingPayment, order.Status)
	assert.Equal(t, products[0].Pricing.BasePrice*2+usecase.DeliveryFee, order.TotalAmount)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, products[0].Name, order.OrderItems[0].Name)
	assert.Equal(t, int64(2), order.OrderItems[0].Quantity)

	// 注文後もカートは消えない
	assert.Equal(t, int64(2), env.Cart.Count())

	// 一覧・詳細でも見える
	got, err := env.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	list, err := env.Orders.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, list)
}

func TestCheckout_RequiresLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	require.NoError(t, env.Catalog.Load(ctx))
	products := env.Catalog.Products()
	require.NotEmpty(t, products)
	env.Cart.Add(products[0].ID, 1)

	// 匿名のままだと401
	_, err := env.Checkout.PlaceOrder(ctx, deliveryDetails("anon@test.com"))
	require.Error(t, err)

	apiErr, ok := apiclient.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 401, apiErr.Status)
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerAndLogin(t, env, "empty@test.com")
	require.NoError(t, env.Catalog.Load(ctx))

	_, err := env.Checkout.PlaceOrder(ctx, deliveryDetails("empty@test.com"))
	assert.ErrorIs(t, err, usecase.ErrEmptyCart)
}

func TestOrder_UpdateReplacesItems(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerAndLogin(t, env, "itemsedit@test.com")
	require.NoError(t, env.Catalog.Load(ctx))
	products := env.Catalog.Products()
	require.NotEmpty(t, products)
	env.Cart.Add(products[0].ID, 1)

	order, err := env.Checkout.PlaceOrder(ctx, deliveryDetails("itemsedit@test.com"))
	require.NoError(t, err)

	order.OrderItems = []model.OrderItem{{Name: "Replacement Item", Quantity: 3, Price: 500}}
	order.TotalAmount = 1700
	require.NoError(t, env.Orders.Update(ctx, order.ID, order))

	// 明細の差し替えが保存されている
	got, err := env.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.OrderItems, 1)
	assert.Equal(t, "Replacement Item", got.OrderItems[0].Name)
	assert.Equal(t, int64(3), got.OrderItems[0].Quantity)
	assert.Equal(t, float64(1700), got.TotalAmount)
}

func TestOrder_CreateTwiceWithoutIdempotencyKey(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerAndLogin(t, env, "nokey@test.com")

	req := apiclient.CreateOrderRequest{
		Fname:       "Taro",
		Lname:       "Yamada",
		Email:       "nokey@test.com",
		Phone:       "0771234567",
		OrderItems:  []model.OrderItem{{Name: "Rice", Quantity: 1, Price: 1600}},
		TotalAmount: 1800,
		Status:      model.OrderStatusPendingPayment,
	}

	// キー無しの注文はそれぞれ独立に作られる
	first, err := env.API.CreateOrder(ctx, req)
	require.NoError(t, err)

	second, err := env.API.CreateOrder(ctx, req)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestOrder_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerAndLogin(t, env, "orderedit@test.com")
	require.NoError(t, env.Catalog.Load(ctx))
	products := env.Catalog.Products()
	env.Cart.Add(products[0].ID, 1)

	order, err := env.Checkout.PlaceOrder(ctx, deliveryDetails("orderedit@test.com"))
	require.NoError(t, err)

	order.Status = model.OrderStatusCanceled
	require.NoError(t, env.Orders.Update(ctx, order.ID, order))

	got, err := env.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCanceled, got.Status)

	require.NoError(t, env.Orders.Delete(ctx, order.ID))

	_, err = env.Orders.Get(ctx, order.ID)
	require.Error(t, err)
}
