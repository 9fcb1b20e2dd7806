package app

import (
	"io"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"storefront/internal/apiclient"
	"storefront/internal/config"
	"storefront/internal/screen"
	"storefront/internal/store"
	"storefront/internal/usecase"
	"storefront/internal/validator"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// App はプロセス起動時に1回だけ組み立てるコンテナ。
// store（session/catalog/cart）はここで生成され、画面に参照で渡される。
type App struct {
	Log *logrus.Logger

	Session *store.SessionStore
	Catalog *store.CatalogStore
	Cart    *store.CartStore

	API *apiclient.Client

	CatalogScreen       *screen.CatalogScreen
	ProductDetailScreen *screen.ProductDetailScreen
	CartScreen          *screen.CartScreen
	CheckoutScreen      *screen.CheckoutScreen
	OrderListScreen     *screen.OrderListScreen
	OrderDetailScreen   *screen.OrderDetailScreen
	PaymentScreen       *screen.PaymentScreen
	ReturnCreateScreen  *screen.ReturnCreateScreen
	ReturnListScreen    *screen.ReturnListScreen
	AuthScreen          *screen.AuthScreen
}

// New は設定→logger→store→APIクライアント→usecase→画面の順に組み立てる。
func New(out io.Writer) (*App, error) {
	//.envは無くてもよい
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	//セッション復元（トークンが無ければAnonymous）
	session, err := store.NewSessionStore(store.NewFileTokenStorage(cfg.TokenPath))
	if err != nil {
		return nil, err
	}

	api := apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, session, log)

	catalog := store.NewCatalogStore(api, log)
	cart := store.NewCartStore(catalog)

	idGen := &uuidGenerator{}

	authUC := usecase.NewAuthUsecase(api, session, validator.NewAuthValidator(), log)
	checkoutUC := usecase.NewCheckoutUsecase(api, cart, validator.NewDeliveryValidator(), idGen, log)
	paymentUC := usecase.NewPaymentUsecase(api, validator.NewCardValidator(), log)
	returnUC := usecase.NewReturnUsecase(api, validator.NewReturnValidator(), log)
	orderUC := usecase.NewOrderUsecase(api, log)

	return &App{
		Log:     log,
		Session: session,
		Catalog: catalog,
		Cart:    cart,
		API:     api,

		CatalogScreen:       screen.NewCatalogScreen(catalog, cart, out),
		ProductDetailScreen: screen.NewProductDetailScreen(api, cart, out),
		CartScreen:          screen.NewCartScreen(cart, out),
		CheckoutScreen:      screen.NewCheckoutScreen(checkoutUC, session, out),
		OrderListScreen:     screen.NewOrderListScreen(orderUC, out),
		OrderDetailScreen:   screen.NewOrderDetailScreen(orderUC, out),
		PaymentScreen:       screen.NewPaymentScreen(paymentUC, orderUC, out),
		ReturnCreateScreen:  screen.NewReturnCreateScreen(returnUC, out),
		ReturnListScreen:    screen.NewReturnListScreen(returnUC, out),
		AuthScreen:          screen.NewAuthScreen(authUC, session, out),
	}, nil
}
