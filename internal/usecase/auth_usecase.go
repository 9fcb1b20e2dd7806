package usecase

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"storefront/internal/apiclient"
)

var (
	//入力不備
	ErrValidation = errors.New("validation error")
	//サーバーがログインを拒否（messageを添えて返す）
	ErrLoginRejected = errors.New("login rejected")
	//サーバーが登録を拒否
	ErrRegisterRejected = errors.New("register rejected")
)

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateLogin(email string, password string) error
	ValidateRegister(in RegisterInput) error
}

// AuthUsecase が叩くAPI面
type AuthAPI interface {
	Login(ctx context.Context, email string, password string) (apiclient.LoginResponse, error)
	Register(ctx context.Context, req apiclient.RegisterRequest) (apiclient.RegisterResponse, error)
}

// セッションの書き込み面（SessionStoreが実装）
type SessionWriter interface {
	Login(token string) error
	Logout() error
}

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	BusinessName    string
	Location        string
	Address         string
	Contact         string
}

type AuthUsecase struct {
	api       AuthAPI
	session   SessionWriter
	validator AuthValidator
	log       *logrus.Logger
}

func NewAuthUsecase(api AuthAPI, session SessionWriter, validator AuthValidator, log *logrus.Logger) *AuthUsecase {
	return &AuthUsecase{
		api:       api,
		session:   session,
		validator: validator,
		log:       log,
	}
}

// Login は認証に成功したらトークンをSessionStoreに保存する。
// サーバーがsuccess=falseを返した場合はmessageをErrLoginRejectedに包んで返す。
func (u *AuthUsecase) Login(ctx context.Context, email string, password string) error {
	if err := u.validator.ValidateLogin(email, password); err != nil {
		return err
	}

	resp, err := u.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !resp.Success {
		u.log.WithField("message", resp.Message).Warn("login rejected")
		if resp.Message != "" {
			return errors.Wrap(ErrLoginRejected, resp.Message)
		}
		return ErrLoginRejected
	}

	return u.session.Login(resp.Token)
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) error {
	if err := u.validator.ValidateRegister(in); err != nil {
		return err
	}

	resp, err := u.api.Register(ctx, apiclient.RegisterRequest{
		Name:            in.Name,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
		BusinessName:    in.BusinessName,
		Location:        in.Location,
		Address:         in.Address,
		Contact:         in.Contact,
	})
	if err != nil {
		return err
	}
	if !resp.Success {
		if resp.Message != "" {
			return errors.Wrap(ErrRegisterRejected, resp.Message)
		}
		return ErrRegisterRejected
	}

	return nil
}

func (u *AuthUsecase) Logout() error {
	return u.session.Logout()
}
