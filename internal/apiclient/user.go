package apiclient

import (
	"context"
	"net/http"
)

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	BusinessName    string `json:"businessName"`
	Location        string `json:"location"`
	Address         string `json:"address"`
	Contact         string `json:"contact"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Login は認証してトークンを受け取る。
// success=false はHTTPエラーではなく、レスポンスのまま呼び出し側に返す。
func (c *Client) Login(ctx context.Context, email string, password string) (LoginResponse, error) {
	req := map[string]string{
		"email":    email,
		"password": password,
	}

	var out LoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/user/login", req, &out); err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	var out RegisterResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/user/register", req, &out); err != nil {
		return RegisterResponse{}, err
	}
	return out, nil
}
