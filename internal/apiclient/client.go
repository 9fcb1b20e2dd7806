package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// レスポンスが既知のどの形にも合わない
var ErrUnexpectedShape = errors.New("unexpected response shape")

// TokenSource はAuthorizationヘッダに付けるトークンの供給元（SessionStoreが実装）。
// 空文字なら匿名リクエスト。
type TokenSource interface {
	Token() string
}

// サーバーがエラーを返したときのエラー
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d message=%s", e.Status, e.Message)
}

// AsAPIError はラップ済みerrからAPIErrorを取り出す。
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Client はバックエンドAPIへの薄いHTTPラッパー。
// レスポンス形の正規化はすべてここで行い、storeにはcanonicalな型だけを渡す。
// リトライはしない（再試行はユーザー操作）。
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *logrus.Logger
}

func New(baseURL string, timeout time.Duration, tokens TokenSource, log *logrus.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
		log:     log,
	}
}

// getJSON はGETして2xxのbodyをoutにデコードする。
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

// doJSON はJSONリクエストを送り、2xxのbodyをoutにデコードする。
// bodyとoutはnil可。
func (c *Client) doJSON(ctx context.Context, method string, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	data, _, err := c.send(req)
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(ErrUnexpectedShape, "decode %s %s: %v", method, path, err)
		}
	}
	return nil
}

// send はAuthorizationを付けて送信し、2xx以外をAPIErrorに変換する。
func (c *Client) send(req *http.Request) ([]byte, int, error) {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.WithFields(logrus.Fields{
		"method": req.Method,
		"url":    req.URL.String(),
	}).Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "%s %s", req.Method, req.URL.Path)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrapf(err, "read %s %s", req.Method, req.URL.Path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, errors.WithStack(&APIError{
			Status:  resp.StatusCode,
			Message: decodeErrorMessage(data),
		})
	}

	return data, resp.StatusCode, nil
}

// decodeErrorMessage はエラーbodyからメッセージを拾う。
// {"error": "..."} と {"message": "..."} の両方を許容する。
func decodeErrorMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(data))
}
