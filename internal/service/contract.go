package service

import (
	"context"

	"github.com/rdewanto/storefront-service/internal/dto"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (resp dto.ProductListResponse, err error)
	GetProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error)
}

type ReviewService interface {
	AddReview(ctx context.Context, authenticated bool, productID string, payload dto.ReviewRequest) (err error)
	GetReviews(ctx context.Context, productID string) (resp []dto.ReviewResponse, err error)
	UpdateReview(ctx context.Context, authenticated bool, productID string, reviewID string, payload dto.ReviewUpdateRequest) (err error)
	DeleteReview(ctx context.Context, authenticated bool, productID string, reviewID string) (err error)
	ConsumeEvent()
	ReconcileProductRatings()
}

type UserService interface {
	AddUser(ctx context.Context, data dto.UserRequest) (err error)
	Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error)
	Logout(ctx context.Context, externalID string) (err error)
}
