package store

import (
	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// SessionStore は認証トークンを管理する。
// 状態は Anonymous ⇄ Authenticated の2つだけで、
// 遷移は Login / Logout のみ。期限切れはクライアント側では判定しない。
//
// 全storeと同様、単一のコマンドループから操作される前提（goroutine安全ではない）。
type SessionStore struct {
	storage TokenStorage
	token   string
	email   string
}

// NewSessionStore は起動時にstorageからトークンを復元する。
// トークンが無いのは正常（Anonymous）でありエラーではない。
func NewSessionStore(storage TokenStorage) (*SessionStore, error) {
	token, err := storage.Read()
	if err != nil {
		return nil, errors.Wrap(err, "restore session")
	}

	return &SessionStore{
		storage: storage,
		token:   token,
		email:   emailFromToken(token),
	}, nil
}

// Login はトークンを永続化してAuthenticatedにする。
func (s *SessionStore) Login(token string) error {
	if err := s.storage.Write(token); err != nil {
		return errors.Wrap(err, "persist token")
	}
	s.token = token
	s.email = emailFromToken(token)
	return nil
}

// Logout はstorageを消してAnonymousに戻す。
func (s *SessionStore) Logout() error {
	if err := s.storage.Clear(); err != nil {
		return errors.Wrap(err, "clear token")
	}
	s.token = ""
	s.email = ""
	return nil
}

func (s *SessionStore) Authenticated() bool {
	return s.token != ""
}

func (s *SessionStore) Token() string {
	return s.token
}

func (s *SessionStore) Email() string {
	return s.email
}

// emailFromToken はJWTのemailクレームを取り出す。
// 署名鍵はクライアントに無いので検証はしない（検証はサーバーの責務）。
// JWTとしてパースできない・クレームが無い場合は空文字。
func emailFromToken(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return ""
	}

	email, _ := claims["email"].(string)
	return email
}
