package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"storefront/internal/devserver/entity"
	"storefront/internal/devserver/repository"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// ログイン成功時のトークン発行面（devserver.JWTIssuerが実装）
type TokenIssuer interface {
	Issue(userID string, email string, now time.Time) (string, error)
}

// /api/user の認証API
type UserHandler struct {
	users  repository.UserRepository
	issuer TokenIssuer
}

func NewUserHandler(users repository.UserRepository, issuer TokenIssuer) *UserHandler {
	return &UserHandler{users: users, issuer: issuer}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/user/register", h.register)
	e.POST("/api/user/login", h.login)
}

type registerRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	BusinessName    string `json:"businessName"`
	Location        string `json:"location"`
	Address         string `json:"address"`
	Contact         string `json:"contact"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message,omitempty"`
}

func (h *UserHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid body")
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusOK, SuccessResponse{Success: false, Message: "name, email and password are required"})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusOK, SuccessResponse{Success: false, Message: "passwords do not match"})
	}

	ctx := c.Request().Context()
	if _, err := h.users.FindByEmail(ctx, req.Email); err == nil {
		return c.JSON(http.StatusOK, SuccessResponse{Success: false, Message: "email already registered"})
	} else if !errors.Is(err, repository.ErrNotFound) {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		BusinessName: req.BusinessName,
		Location:     req.Location,
		Address:      req.Address,
		Contact:      req.Contact,
	}
	if err := h.users.Create(ctx, u); err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: "registered"})
}

func (h *UserHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, http.StatusBadRequest, "invalid body")
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	u, err := h.users.FindByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// 存在有無は伏せる
			return c.JSON(http.StatusOK, loginResponse{Success: false, Message: "invalid email or password"})
		}
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusOK, loginResponse{Success: false, Message: "invalid email or password"})
	}

	tok, err := h.issuer.Issue(u.ID, u.Email, time.Now())
	if err != nil {
		return writeError(c, http.StatusInternalServerError, "internal error")
	}

	return c.JSON(http.StatusOK, loginResponse{Success: true, Token: tok})
}
