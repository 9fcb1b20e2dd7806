package apiclient

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"storefront/internal/domain/model"
)

// Products は商品一覧を取得する。
// サーバーは {products: [...]} と素の配列の両方を返しうるので、
// ここで正規化して必ず []model.Product にする。どちらでもなければエラー。
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/products/getAll", &raw); err != nil {
		return nil, err
	}

	// Case 1: {products: [...]}
	var wrapped struct {
		Products []model.Product `json:"products"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Products != nil {
		return wrapped.Products, nil
	}

	// Case 2: 素の配列
	var direct []model.Product
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct, nil
	}

	return nil, errors.Wrap(ErrUnexpectedShape, "products list")
}

// Product は商品詳細を取得する。レスポンスは {product: {...}}。
func (c *Client) Product(ctx context.Context, id string) (model.Product, error) {
	var out struct {
		Product *model.Product `json:"product"`
	}
	if err := c.getJSON(ctx, "/api/products/getAll/"+id, &out); err != nil {
		return model.Product{}, err
	}
	if out.Product == nil {
		return model.Product{}, errors.Wrap(ErrUnexpectedShape, "product detail")
	}
	return *out.Product, nil
}
