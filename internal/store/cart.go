package store

import (
	"sort"

	"storefront/internal/domain/model"
)

// カート1行 = (productId, quantity)
type CartLine struct {
	ProductID string
	Quantity  int64
}

// CartStore が合計計算に使う商品参照（CatalogStoreが実装）
type ProductLookup interface {
	ProductByID(id string) (model.Product, bool)
}

// CartStore は productId → quantity のマッピングを保持する。
// 不変条件：quantity ≤ 0 のエントリは存在しない。
// プロセス生存中のみ（カートは永続化しない）。
type CartStore struct {
	products ProductLookup
	items    map[string]int64
}

func NewCartStore(products ProductLookup) *CartStore {
	return &CartStore{
		products: products,
		items:    map[string]int64{},
	}
}

// Add は数量を加算する（新規なら挿入）。qty ≤ 0 は何もしない。
func (s *CartStore) Add(productID string, qty int64) {
	if qty <= 0 {
		return
	}
	s.items[productID] += qty
}

// SetQuantity は数量を上書きする。qty ≤ 0 なら行ごと削除する。
// 在庫上限はクライアント側では設けない（サーバーが持つ概念のため）。
func (s *CartStore) SetQuantity(productID string, qty int64) {
	if qty <= 0 {
		delete(s.items, productID)
		return
	}
	s.items[productID] = qty
}

// Count は全行の数量合計（バッジ表示用）。
func (s *CartStore) Count() int64 {
	var total int64 = 0
	for _, qty := range s.items {
		total += qty
	}
	return total
}

// Lines はproductID順のスナップショットを返す。
func (s *CartStore) Lines() []CartLine {
	lines := make([]CartLine, 0, len(s.items))
	for id, qty := range s.items {
		lines = append(lines, CartLine{ProductID: id, Quantity: qty})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return lines
}

// ProductByID はカタログから商品を引く。
func (s *CartStore) ProductByID(id string) (model.Product, bool) {
	return s.products.ProductByID(id)
}

// Total は Σ(basePrice × quantity)。カタログに無い商品は0円として扱う。
// 数量割引tierは適用しない（商品詳細の表示と意図的に食い違う）。
func (s *CartStore) Total() float64 {
	var total float64 = 0
	for id, qty := range s.items {
		p, ok := s.products.ProductByID(id)
		if !ok {
			continue
		}
		total += p.Pricing.BasePrice * float64(qty)
	}
	return total
}
