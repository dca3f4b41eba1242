package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/rdewanto/storefront-service/internal/dto"
	"github.com/rdewanto/storefront-service/internal/service"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"github.com/rdewanto/storefront-service/pkg/errs"
	"github.com/rdewanto/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type UserController struct {
	service service.UserService
}

func CreateUserController(e *echo.Group, service service.UserService, isLoggedIn echo.MiddlewareFunc) {
	c := UserController{
		service: service,
	}
	e.POST("/users/register", c.AddUser)
	e.POST("/users/login", c.Login)
	e.POST("/users/logout", c.Logout, isLoggedIn)
}

func (c *UserController) AddUser(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddUser").Msg("")
	}

	err = c.service.AddUser(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteSuccessResponse(e, "", nil)
}

func (c *UserController) Login(e echo.Context) error {
	payload := dto.UserRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "Login").Msg("")
	}

	respPayload, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteSuccessResponse(e, "", respPayload)
}

func (c *UserController) Logout(e echo.Context) error {
	_, externalID, authenticated := utils.ExtractTokenUser(e)
	if !authenticated {
		return pkgdto.WriteErrorResponse(e, errs.ErrNotLoggedIn)
	}

	err := c.service.Logout(e.Request().Context(), externalID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteSuccessResponse(e, "successfully logged out", nil)
}
