package apiclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/internal/domain/model"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (t staticToken) Token() string { return string(t) }

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestClient(t *testing.T, h http.HandlerFunc, token string) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, staticToken(token), quietLogger()), srv
}

func TestClient_Products_WrappedShape(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/getAll", r.URL.Path)
		_, _ = w.Write([]byte(`{"products":[{"_id":"p1","name":"A"},{"_id":"p2","name":"B"}]}`))
	}, "")

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
}

func TestClient_Products_BareArrayShape(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"_id":"p1","name":"A"}]`))
	}, "")

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "p1", products[0].ID)
}

func TestClient_Products_UnknownShape(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items":[]}`))
	}, "")

	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestClient_Product_Detail(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/getAll/p1", r.URL.Path)
		_, _ = w.Write([]byte(`{"product":{"_id":"p1","name":"A","pricing":{"basePrice":120}}}`))
	}, "")

	p, err := c.Product(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, float64(120), p.Pricing.BasePrice)
}

func TestClient_SendsBearerToken(t *testing.T) {
	var gotAuthz string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuthz = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, "tok123")

	_, err := c.Orders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuthz)
}

func TestClient_AnonymousHasNoAuthzHeader(t *testing.T) {
	var gotAuthz string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuthz = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, "")

	_, err := c.Orders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuthz)
}

func TestClient_NonOKBecomesAPIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"order not found"}`))
	}, "")

	_, err := c.Order(context.Background(), "ghost")
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "order not found", apiErr.Message)
}

func TestClient_ErrorMessageFieldVariants(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"bad idea"}`))
	}, "")

	_, err := c.Order(context.Background(), "x")
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "bad idea", apiErr.Message)
}

func TestClient_CreateOrder(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Pending Payment", body["status"])
		assert.NotEmpty(t, body["idempotencyKey"])

		_, _ = w.Write([]byte(`{"success":true,"order":{"_id":"o1","status":"Pending Payment"}}`))
	}, "tok")

	order, err := c.CreateOrder(context.Background(), CreateOrderRequest{
		Fname:          "Taro",
		Email:          "taro@test.com",
		OrderItems:     []model.OrderItem{{Name: "A", Quantity: 1, Price: 10}},
		TotalAmount:    210,
		Status:         model.OrderStatusPendingPayment,
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
}

func TestClient_CreateOrder_SuccessFalse(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}, "tok")

	_, err := c.CreateOrder(context.Background(), CreateOrderRequest{})
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestClient_CreateReturn_MultipartFields(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "o1", r.FormValue("orderId"))
		assert.Equal(t, "user@test.com", r.FormValue("email"))

		var items []model.ReturnItem
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("items")), &items))
		require.Len(t, items, 1)
		assert.Equal(t, "Rice", items[0].Name)

		files := r.MultipartForm.File["returnImages"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.jpg", files[0].Filename)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true}`))
	}, "tok")

	err := c.CreateReturn(context.Background(), CreateReturnRequest{
		OrderID: "o1",
		Email:   "user@test.com",
		Items:   []model.ReturnItem{{Name: "Rice", Quantity: 1, Reason: "damaged"}},
		Images: []ReturnImage{
			{Filename: "a.jpg", Reader: strings.NewReader("img-a")},
			{Filename: "b.jpg", Reader: strings.NewReader("img-b")},
		},
	})
	assert.NoError(t, err)
}

func TestClient_CreateReturn_Requires201(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`)) // 200
	}, "tok")

	err := c.CreateReturn(context.Background(), CreateReturnRequest{OrderID: "o1", Email: "e"})
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}

func TestClient_UploadSlip_MultipartFields(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "o1", r.FormValue("orderId"))

		files := r.MultipartForm.File["slip"]
		require.Len(t, files, 1)
		assert.Equal(t, "slip.png", files[0].Filename)

		_, _ = w.Write([]byte(`{"success":true}`))
	}, "tok")

	err := c.UploadSlip(context.Background(), "o1", "slip.png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
}
