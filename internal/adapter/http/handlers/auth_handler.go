package handlers

import (
	"errors"
	"net/http"

	request "autocare360/internal/adapter/http/dto/request"
	response "autocare360/internal/adapter/http/dto/response"
	"autocare360/internal/usecase"
	"autocare360/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler handles bearer-token login.

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	token, user, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			appErr := pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(token, user))
}
