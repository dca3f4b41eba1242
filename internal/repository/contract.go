package repository

import (
	"context"

	"github.com/rdewanto/storefront-service/internal/domain"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	GetProducts(ctx context.Context, filter pkgdto.ProductFilter, skip int64, limit int64) (data []domain.Product, err error)
	CountProducts(ctx context.Context, filter pkgdto.ProductFilter) (count int64, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (err error)
	SetProductRating(ctx context.Context, id string, rating float64) (err error)
}

type ReviewRepository interface {
	AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error)
	GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error)
	UpdateReviewComment(ctx context.Context, productID string, reviewID primitive.ObjectID, comment string) (err error)
	DeleteReview(ctx context.Context, productID string, reviewID primitive.ObjectID) (err error)
	GetAverageRating(ctx context.Context, productID string) (avg float64, err error)
	GetReviewedProductIDs(ctx context.Context) (ids []string, err error)
}

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (res domain.User, err error)
	AddUser(ctx context.Context, data domain.User) (id primitive.ObjectID, err error)
}
