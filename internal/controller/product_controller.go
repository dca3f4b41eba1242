package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rdewanto/storefront-service/internal/dto"
	"github.com/rdewanto/storefront-service/internal/service"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:productId", c.GetProduct)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.ProductFilter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, resp)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	id := e.Param("productId")

	resp, err := c.service.GetProduct(e.Request().Context(), id)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, dto.ProductDetailResponse{Product: resp})
}
