package apiclient

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"
)

type CardPaymentRequest struct {
	OrderID string `json:"orderId"`
	Name    string `json:"name"`
	Number  string `json:"number"`
	Expiry  string `json:"expiry"`
	CVV     string `json:"cvv"`
}

func (c *Client) PayByCard(ctx context.Context, req CardPaymentRequest) error {
	return c.doJSON(ctx, http.MethodPost, "/api/payments/card", req, nil)
}

// UploadSlip は振込伝票をmultipartで送る。fieldは slip / orderId。
func (c *Client) UploadSlip(ctx context.Context, orderID string, filename string, r io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("slip", filename)
	if err != nil {
		return errors.Wrap(err, "create slip part")
	}
	if _, err := io.Copy(part, r); err != nil {
		return errors.Wrap(err, "copy slip")
	}
	if err := w.WriteField("orderId", orderID); err != nil {
		return errors.Wrap(err, "write orderId")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "close multipart")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/payments/upload-slip", &buf)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	_, _, err = c.send(req)
	return err
}
