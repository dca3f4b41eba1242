package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rdewanto/storefront-service/internal/dto"
	"github.com/rdewanto/storefront-service/internal/service"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"github.com/rdewanto/storefront-service/pkg/utils"
	"github.com/rs/zerolog/log"
)

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(e *echo.Group, service service.ReviewService, isLoggedIn echo.MiddlewareFunc) {
	c := ReviewController{
		service: service,
	}
	e.GET("/products/:productId/reviews", c.GetReviews)
	e.POST("/products/:productId/reviews", c.AddReview, isLoggedIn)
	e.PUT("/products/:productId/reviews/:reviewId", c.UpdateReview, isLoggedIn)
	e.DELETE("/products/:productId/reviews/:reviewId", c.DeleteReview, isLoggedIn)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	productID := e.Param("productId")

	payload := dto.ReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
	}

	_, _, authenticated := utils.ExtractTokenUser(e)

	err = c.service.AddReview(e.Request().Context(), authenticated, productID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return e.String(http.StatusCreated, "Review added successfully")
}

func (c *ReviewController) GetReviews(e echo.Context) error {
	productID := e.Param("productId")

	resp, err := c.service.GetReviews(e.Request().Context(), productID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return e.JSON(http.StatusOK, dto.ReviewListResponse{Reviews: resp})
}

func (c *ReviewController) UpdateReview(e echo.Context) error {
	productID := e.Param("productId")
	reviewID := e.Param("reviewId")

	payload := dto.ReviewUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateReview").Msg("")
	}

	_, _, authenticated := utils.ExtractTokenUser(e)

	err = c.service.UpdateReview(e.Request().Context(), authenticated, productID, reviewID, payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteSuccessResponse(e, "Review updated successfully", nil)
}

func (c *ReviewController) DeleteReview(e echo.Context) error {
	productID := e.Param("productId")
	reviewID := e.Param("reviewId")

	_, _, authenticated := utils.ExtractTokenUser(e)

	err := c.service.DeleteReview(e.Request().Context(), authenticated, productID, reviewID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err)
	}

	return pkgdto.WriteSuccessResponse(e, "Review deleted successfully", nil)
}
