package screen

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"storefront/internal/domain/model"
	"storefront/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	products []model.Product
	err      error
}

func (f *stubFetcher) Products(ctx context.Context) ([]model.Product, error) {
	return f.products, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newStores(fetcher *stubFetcher) (*store.CatalogStore, *store.CartStore) {
	catalog := store.NewCatalogStore(fetcher, quietLogger())
	return catalog, store.NewCartStore(catalog)
}

func TestCatalogScreen_Render(t *testing.T) {
	catalog, cart := newStores(&stubFetcher{products: []model.Product{
		{ID: "p1", Name: "Rice", Category: model.Category{Name: "Staples"}, Pricing: model.Pricing{BasePrice: 1600}},
	}})
	cart.Add("p1", 2)

	var buf bytes.Buffer
	s := NewCatalogScreen(catalog, cart, &buf)

	require.NoError(t, s.Render(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Rice")
	assert.Contains(t, out, "Rs.1600.00")
	assert.Contains(t, out, "Cart: 2 item(s)")
}

func TestCatalogScreen_Render_FetchFailure(t *testing.T) {
	catalog, cart := newStores(&stubFetcher{err: errors.New("boom")})

	var buf bytes.Buffer
	s := NewCatalogScreen(catalog, cart, &buf)

	// 通信失敗でも画面は描ける
	require.NoError(t, s.Render(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "Failed to load products. Please try again later.")
	assert.Contains(t, out, "No products available.")
}

func TestCartScreen_Render(t *testing.T) {
	catalog, cart := newStores(&stubFetcher{products: []model.Product{
		{ID: "p1", Name: "Rice", Pricing: model.Pricing{BasePrice: 100}},
	}})
	require.NoError(t, catalog.Load(context.Background()))

	cart.Add("p1", 2)
	cart.Add("ghost", 1)

	var buf bytes.Buffer
	s := NewCartScreen(cart, &buf)

	require.NoError(t, s.Render())

	out := buf.String()
	assert.Contains(t, out, "Rice")
	assert.Contains(t, out, "ghost (unavailable)")
	assert.Contains(t, out, "Subtotal: Rs.200.00")
	assert.Contains(t, out, "Delivery Fee: Rs.200.00")
	assert.Contains(t, out, "Grand Total: Rs.400.00")
}

func TestCartScreen_RenderEmpty(t *testing.T) {
	_, cart := newStores(&stubFetcher{})

	var buf bytes.Buffer
	s := NewCartScreen(cart, &buf)

	require.NoError(t, s.Render())
	assert.Contains(t, buf.String(), "Your cart is empty.")
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return ts
}

func TestCatalogScreen_RenderLatest(t *testing.T) {
	catalog, cart := newStores(&stubFetcher{products: []model.Product{
		{ID: "old", Name: "Old", Pricing: model.Pricing{BasePrice: 1}},
		{ID: "new", Name: "New", Pricing: model.Pricing{BasePrice: 2}, CreatedAt: mustTime(t, "2026-01-02")},
		{ID: "mid", Name: "Mid", Pricing: model.Pricing{BasePrice: 3}, CreatedAt: mustTime(t, "2026-01-01")},
	}})

	var buf bytes.Buffer
	s := NewCatalogScreen(catalog, cart, &buf)

	require.NoError(t, s.RenderLatest(context.Background(), 2))

	out := buf.String()
	assert.Contains(t, out, "New")
	assert.Contains(t, out, "Mid")
	assert.NotContains(t, out, "Old")
}
