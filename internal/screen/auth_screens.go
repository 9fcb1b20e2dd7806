package screen

import (
	"context"
	"fmt"
	"io"

	"storefront/internal/store"
	"storefront/internal/usecase"
)

// ログイン・会員登録・ログアウト（Login/Register/Logout相当）
type AuthScreen struct {
	auth    *usecase.AuthUsecase
	session *store.SessionStore
	out     io.Writer
}

func NewAuthScreen(auth *usecase.AuthUsecase, session *store.SessionStore, out io.Writer) *AuthScreen {
	return &AuthScreen{auth: auth, session: session, out: out}
}

func (s *AuthScreen) Login(ctx context.Context, email string, password string) error {
	if err := s.auth.Login(ctx, email, password); err != nil {
		errorLine(s.out, err.Error())
		return err
	}
	fmt.Fprintf(s.out, "Logged in as %s\n", s.session.Email())
	return nil
}

func (s *AuthScreen) Register(ctx context.Context, in usecase.RegisterInput) error {
	if err := s.auth.Register(ctx, in); err != nil {
		errorLine(s.out, err.Error())
		return err
	}
	fmt.Fprintln(s.out, "Registration successful! Please login.")
	return nil
}

func (s *AuthScreen) Logout() error {
	if err := s.auth.Logout(); err != nil {
		errorLine(s.out, err.Error())
		return err
	}
	fmt.Fprintln(s.out, "Logged out.")
	return nil
}

// Whoami は現在のセッション状態を表示する。
func (s *AuthScreen) Whoami() {
	if !s.session.Authenticated() {
		fmt.Fprintln(s.out, "Not logged in.")
		return
	}
	fmt.Fprintf(s.out, "Logged in as %s\n", s.session.Email())
}
