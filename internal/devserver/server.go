// Package devserver はAPIコントラクトを満たすローカルスタブサーバー。
// クライアント開発とE2Eテストのために本番サーバーの挙動を再現する。
package devserver

import (
	"net/http"

	"storefront/internal/devserver/handler"
	"storefront/internal/devserver/infra"
	"storefront/internal/devserver/middleware"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Server struct {
	e *echo.Echo
}

// New はrepository/handlerを組み立てたServerを返す。
func New(db *gorm.DB, jwtSecret string, log *logrus.Logger) *Server {
	userRepo := infra.NewUserGormRepository(db)
	productRepo := infra.NewProductGormRepository(db)
	orderRepo := infra.NewOrderGormRepository(db)
	paymentRepo := infra.NewPaymentGormRepository(db)
	returnRepo := infra.NewReturnGormRepository(db)

	issuer := NewJWTIssuer(jwtSecret)
	auth := middleware.AuthJWT(jwtSecret)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler.NewProductHandler(productRepo).RegisterRoutes(e)
	handler.NewUserHandler(userRepo, issuer).RegisterRoutes(e)
	handler.NewOrderHandler(orderRepo, auth).RegisterRoutes(e)
	handler.NewPaymentHandler(orderRepo, paymentRepo).RegisterRoutes(e)
	handler.NewReturnHandler(orderRepo, returnRepo).RegisterRoutes(e)

	if log != nil {
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				err := next(c)
				log.WithFields(logrus.Fields{
					"method": c.Request().Method,
					"path":   c.Request().URL.Path,
					"status": c.Response().Status,
				}).Debug("request")
				return err
			}
		})
	}

	return &Server{e: e}
}

// Handler はhttptestから使うためのhttp.Handler。
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
