package e2e

import (
	"context"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"storefront/internal/apiclient"
	"storefront/internal/devserver"
	"storefront/internal/devserver/infra"
	"storefront/internal/store"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// devserver＋クライアント一式をin-processで組み立てる
type testEnv struct {
	Server  *httptest.Server
	Session *store.SessionStore
	Catalog *store.CatalogStore
	Cart    *store.CartStore
	API     *apiclient.Client

	Auth     *usecase.AuthUsecase
	Checkout *usecase.CheckoutUsecase
	Payment  *usecase.PaymentUsecase
	Orders   *usecase.OrderUsecase
	Returns  *usecase.ReturnUsecase
}

type uuidGen struct{}

func (g *uuidGen) NewID() string { return uuid.NewString() }

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := infra.Connect("file:" + filepath.Join(t.TempDir(), "e2e.db"))
	require.NoError(t, err)
	require.NoError(t, devserver.Seed(context.Background(), infra.NewProductGormRepository(db)))

	srv := httptest.NewServer(devserver.New(db, "e2e-secret", log).Handler())
	t.Cleanup(srv.Close)

	session, err := store.NewSessionStore(store.NewFileTokenStorage(filepath.Join(t.TempDir(), "token")))
	require.NoError(t, err)

	api := apiclient.New(srv.URL, 10*time.Second, session, log)
	catalog := store.NewCatalogStore(api, log)
	cart := store.NewCartStore(catalog)

	return &testEnv{
		Server:  srv,
		Session: session,
		Catalog: catalog,
		Cart:    cart,
		API:     api,

		Auth:     usecase.NewAuthUsecase(api, session, validator.NewAuthValidator(), log),
		Checkout: usecase.NewCheckoutUsecase(api, cart, validator.NewDeliveryValidator(), &uuidGen{}, log),
		Payment:  usecase.NewPaymentUsecase(api, validator.NewCardValidator(), log),
		Orders:   usecase.NewOrderUsecase(api, log),
		Returns:  usecase.NewReturnUsecase(api, validator.NewReturnValidator(), log),
	}
}

// 会員登録してログイン済みにする
func registerAndLogin(t *testing.T, env *testEnv, email string) {
	t.Helper()

	ctx := context.Background()
	require.NoError(t, env.Auth.Register(ctx, usecase.RegisterInput{
		Name:            "E2E User",
		Email:           email,
		Password:        "pw123456",
		ConfirmPassword: "pw123456",
	}))
	require.NoError(t, env.Auth.Login(ctx, email, "pw123456"))
	require.True(t, env.Session.Authenticated())
}

func deliveryDetails(email string) usecase.DeliveryDetails {
	return usecase.DeliveryDetails{
		Fname:   "Taro",
		Lname:   "Yamada",
		Email:   email,
		Address: "1-2-3 Galle Road",
		State:   "Western",
		City:    "Colombo",
		ZipCode: "00300",
		Country: "Sri Lanka",
		Phone:   "0771234567",
	}
}
