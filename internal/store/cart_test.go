package store

import (
	"testing"

	"storefront/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

// テスト用の固定カタログ
type stubLookup struct {
	products map[string]model.Product
}

func (s *stubLookup) ProductByID(id string) (model.Product, bool) {
	p, ok := s.products[id]
	return p, ok
}

func newStubLookup(products ...model.Product) *stubLookup {
	m := make(map[string]model.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &stubLookup{products: m}
}

func priced(id string, base float64) model.Product {
	return model.Product{
		ID:      id,
		Name:    "product " + id,
		Pricing: model.Pricing{BasePrice: base},
	}
}

func TestCartStore_Add(t *testing.T) {
	cart := NewCartStore(newStubLookup(priced("p1", 10)))

	cart.Add("p1", 2)
	cart.Add("p1", 3)

	assert.Equal(t, []CartLine{{ProductID: "p1", Quantity: 5}}, cart.Lines())
	assert.Equal(t, int64(5), cart.Count())
}

func TestCartStore_Add_IgnoresNonPositive(t *testing.T) {
	cart := NewCartStore(newStubLookup())

	cart.Add("p1", 0)
	cart.Add("p1", -3)

	assert.Empty(t, cart.Lines())
	assert.Equal(t, int64(0), cart.Count())
}

func TestCartStore_SetQuantity(t *testing.T) {
	cart := NewCartStore(newStubLookup())

	cart.Add("p1", 2)
	cart.SetQuantity("p1", 7)

	assert.Equal(t, []CartLine{{ProductID: "p1", Quantity: 7}}, cart.Lines())
}

func TestCartStore_SetQuantity_ZeroRemovesLine(t *testing.T) {
	cart := NewCartStore(newStubLookup())

	cart.Add("p1", 2)
	cart.Add("p2", 1)
	cart.SetQuantity("p1", 0)
	cart.SetQuantity("p2", -1)

	// 数量0以下の行は残らない
	assert.Empty(t, cart.Lines())
}

func TestCartStore_Lines_SortedByProductID(t *testing.T) {
	cart := NewCartStore(newStubLookup())

	cart.Add("p3", 1)
	cart.Add("p1", 1)
	cart.Add("p2", 1)

	lines := cart.Lines()
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "p2", lines[1].ProductID)
	assert.Equal(t, "p3", lines[2].ProductID)
}

func TestCartStore_Total(t *testing.T) {
	cart := NewCartStore(newStubLookup(priced("p1", 10)))

	cart.Add("p1", 2)

	assert.Equal(t, float64(20), cart.Total())
}

func TestCartStore_Total_UsesBasePriceOnly(t *testing.T) {
	p := priced("p1", 100)
	p.Pricing.QuantityDiscounts = []model.QuantityDiscount{
		{MinQuantity: 5, DiscountPercent: 50},
	}
	cart := NewCartStore(newStubLookup(p))

	cart.Add("p1", 10)

	// 割引tierは合計に入れない
	assert.Equal(t, float64(1000), cart.Total())
}

func TestCartStore_Total_MissingProductCountsZero(t *testing.T) {
	cart := NewCartStore(newStubLookup(priced("p1", 10)))

	cart.Add("p1", 2)
	cart.Add("ghost", 4)

	assert.Equal(t, float64(20), cart.Total())
	// 行自体は残る（数量バッジには出る）
	assert.Equal(t, int64(6), cart.Count())
}
