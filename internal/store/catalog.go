package store

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain/model"
)

// 商品一覧の取得状態
type LoadState int

const (
	LoadNotStarted LoadState = iota
	LoadInFlight
	LoadSettled
)

// CatalogStore が依存するAPI面
type ProductFetcher interface {
	Products(ctx context.Context) ([]model.Product, error)
}

// CatalogStore は商品一覧を保持する。UIからは読み取り専用。
// 取得はstoreの生存期間中に1回だけ行う。
type CatalogStore struct {
	fetcher ProductFetcher
	log     *logrus.Logger

	state    LoadState
	products []model.Product
	err      error
}

func NewCatalogStore(fetcher ProductFetcher, log *logrus.Logger) *CatalogStore {
	return &CatalogStore{
		fetcher:  fetcher,
		log:      log,
		state:    LoadNotStarted,
		products: []model.Product{},
	}
}

// Load は商品一覧を取得する。2回目以降の呼び出しは何もしない。
// 失敗しても致命ではない：products=[] と Err を保持し、必ずSettledで終わる。
// 自動リトライはしない（再取得はユーザー操作）。
func (s *CatalogStore) Load(ctx context.Context) error {
	if s.state != LoadNotStarted {
		return s.err
	}

	s.state = LoadInFlight

	products, err := s.fetcher.Products(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load products")
		s.products = []model.Product{}
		s.err = errors.Wrap(err, "load products")
		s.state = LoadSettled
		return s.err
	}

	if products == nil {
		products = []model.Product{}
	}

	s.products = products
	s.err = nil
	s.state = LoadSettled

	s.log.WithField("count", len(products)).Debug("catalog loaded")
	return nil
}

func (s *CatalogStore) State() LoadState {
	return s.state
}

func (s *CatalogStore) Err() error {
	return s.err
}

func (s *CatalogStore) Products() []model.Product {
	return s.products
}

// ProductByID は商品を探す。カタログに無い商品はok=falseで返すので、
// 呼び出し側は必ず欠落を想定すること（カート追加後に消えた商品など）。
func (s *CatalogStore) ProductByID(id string) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}
