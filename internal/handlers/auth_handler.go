package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/storefront-api/internal/domain/principal"
	"github.com/BruksfildServices01/storefront-api/internal/httperr"
	"github.com/BruksfildServices01/storefront-api/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/storefront-api/internal/usecase/auth"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgTooManyAttempts    = "Too many login attempts"
)

type AuthHandler struct {
	register *ucAuth.Register
	login    *ucAuth.Login
	log      *slog.Logger
}

func NewAuthHandler(register *ucAuth.Register, login *ucAuth.Login, log *slog.Logger) *AuthHandler {
	return &AuthHandler{register: register, login: login, log: log}
}

// --------- Requests ---------

type RegisterCustomerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=60"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,strongpassword,maxbytes=72"`
	Address  string `json:"address" binding:"omitempty,max=255"`
	Phone    string `json:"phone" binding:"omitempty,max=30"`
}

type RegisterStaffRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=60"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,strongpassword,maxbytes=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,maxbytes=72"`
}

// --------- Handlers ---------

// Register serves POST /auth/<kind>/register.
func (h *AuthHandler) Register(kind principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := ucAuth.RegisterInput{Kind: kind}

		if kind == principal.RoleCustomer {
			var req RegisterCustomerRequest
			if !bindJSON(c, &req) {
				return
			}
			in.Name, in.Email, in.Password = req.Name, req.Email, req.Password
			in.Address, in.Phone = req.Address, req.Phone
		} else {
			var req RegisterStaffRequest
			if !bindJSON(c, &req) {
				return
			}
			in.Name, in.Email, in.Password = req.Name, req.Email, req.Password
		}

		session, err := h.register.Execute(c.Request.Context(), in)
		if err != nil {
			storeError(c, h.log, string(kind), err)
			return
		}

		httpresp.Created(c, session)
	}
}

// Login serves POST /auth/<kind>/login.
func (h *AuthHandler) Login(kind principal.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if !bindJSON(c, &req) {
			return
		}

		session, err := h.login.Execute(c.Request.Context(), ucAuth.LoginInput{
			Kind:     kind,
			Email:    req.Email,
			Password: req.Password,
		})
		switch {
		case err == nil:
			httpresp.OK(c, session)
		case errors.Is(err, ucAuth.ErrInvalidCredentials):
			httperr.BadRequest(c, msgInvalidCredentials)
		case errors.Is(err, ucAuth.ErrTooManyAttempts):
			httperr.TooManyRequests(c, msgTooManyAttempts)
		default:
			internalError(c, h.log, err)
		}
	}
}
