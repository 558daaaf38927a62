package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/auth-service/internal/application"
	"github.com/oksasatya/auth-service/internal/domain/apperr"
	"github.com/oksasatya/auth-service/internal/domain/entity"
	"github.com/oksasatya/auth-service/pkg/response"
	"github.com/oksasatya/auth-service/pkg/validation"
)

type AuthHandler struct {
	Register *application.RegisterService
	Login    *application.LoginService
	Logger   *logrus.Logger
}

func NewAuthHandler(register *application.RegisterService, login *application.LoginService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Register: register, Login: login, Logger: logger}
}

type registerRequest struct {
	FirstName            string `json:"first_name" binding:"required,singleword"`
	LastName             string `json:"last_name" binding:"required,singleword"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,strongpwd"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
}

type internalRegisterRequest struct {
	FirstName            string `json:"first_name" binding:"required,singleword"`
	LastName             string `json:"last_name" binding:"required,singleword"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,strongpwd"`
	PasswordConfirmation string `json:"password_confirmation" binding:"required,eqfield=Password"`
	Type                 string `json:"type" binding:"required,oneof=sudo admin audit client"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser handles POST /v1/register. Public endpoint, always creates a
// client user.
func (h *AuthHandler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.ToErrorItems(err))
		return
	}
	res, err := h.Register.Register(c.Request.Context(), application.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}, entity.UserTypeClient)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// RegisterInternal handles POST /v1/register/internal. Caller role is gated
// by the router; the requested type comes from the body.
func (h *AuthHandler) RegisterInternal(c *gin.Context) {
	var req internalRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.ToErrorItems(err))
		return
	}
	utype, ok := entity.ParseUserType(req.Type)
	if !ok {
		response.Fail(c, http.StatusBadRequest, []response.ErrorItem{
			{Code: apperr.CodeValidationError, Msg: "unknown user type", Field: "type"},
		})
		return
	}
	res, err := h.Register.Register(c.Request.Context(), application.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	}, utype)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, res)
}

// LoginUser handles POST /v1/login.
func (h *AuthHandler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, validation.ToErrorItems(err))
		return
	}
	res, err := h.Login.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
