package controllers

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/ridewithme/app/services"
	"github.com/shashiranjanraj/ridewithme/pkg/auth"
	"github.com/shashiranjanraj/ridewithme/pkg/bind"
	"github.com/shashiranjanraj/ridewithme/pkg/logger"
	"github.com/shashiranjanraj/ridewithme/pkg/response"
)

// AuthController exposes the /api/auth endpoints.
type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// Register handles POST /api/auth/register.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := c.svc.Register(r.Context(), in)
	if err != nil {
		logger.WithCtx(r.Context()).Warn("registration failed", "error", err)
		response.Fault(w, err)
		return
	}
	response.Created(w, session)
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	session, err := c.svc.Login(r.Context(), in)
	if err != nil {
		response.Fault(w, err)
		return
	}
	response.Success(w, session)
}

// Logout handles POST /api/auth/logout. The presented token is denylisted
// for the rest of its lifetime.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())
	if claims == nil {
		response.Unauthorized(w)
		return
	}

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if err := auth.RevokeToken(token, claims); err != nil {
		logger.WithCtx(r.Context()).Error("token revocation failed", "error", err)
	}
	response.Success(w, map[string]string{"message": "Logged out"})
}

// Me handles GET /api/auth/me.
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromCtx(r.Context())
	if claims == nil {
		response.Unauthorized(w)
		return
	}

	user, err := c.svc.Whoami(r.Context(), claims.UserID)
	if err != nil {
		response.Fault(w, err)
		return
	}
	response.Success(w, user)
}
