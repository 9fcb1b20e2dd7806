package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	"storefront/internal/domain/model"
)

// アップロードする証拠画像
type ReturnImage struct {
	Filename string
	Reader   io.Reader
}

type CreateReturnRequest struct {
	OrderID string
	Email   string
	Items   []model.ReturnItem
	Images  []ReturnImage
}

func (c *Client) Returns(ctx context.Context) ([]model.ReturnRequest, error) {
	var out []model.ReturnRequest
	if err := c.getJSON(ctx, "/api/returns", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReturn は返品リクエストをmultipartで送る。成功は201のみ。
// フォームのfieldは returnImages（複数） / orderId / email / items（JSON文字列）。
func (c *Client) CreateReturn(ctx context.Context, req CreateReturnRequest) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, img := range req.Images {
		part, err := w.CreateFormFile("returnImages", img.Filename)
		if err != nil {
			return errors.Wrap(err, "create image part")
		}
		if _, err := io.Copy(part, img.Reader); err != nil {
			return errors.Wrap(err, "copy image")
		}
	}

	if err := w.WriteField("orderId", req.OrderID); err != nil {
		return errors.Wrap(err, "write orderId")
	}
	if err := w.WriteField("email", req.Email); err != nil {
		return errors.Wrap(err, "write email")
	}

	itemsJSON, err := json.Marshal(req.Items)
	if err != nil {
		return errors.Wrap(err, "encode items")
	}
	if err := w.WriteField("items", string(itemsJSON)); err != nil {
		return errors.Wrap(err, "write items")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close multipart")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/returns", &buf)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	_, status, err := c.send(httpReq)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return errors.Wrapf(ErrUnexpectedShape, "create return: status=%d", status)
	}
	return nil
}
