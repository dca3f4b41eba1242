package service

import (
	"context"

	"github.com/rdewanto/storefront-service/internal/domain"
	"github.com/rdewanto/storefront-service/internal/dto"
	"github.com/rdewanto/storefront-service/internal/repository"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"github.com/rdewanto/storefront-service/pkg/errs"
)

const productsPerPage = 20

const (
	defaultTitle       = "Title Not Available"
	defaultDescription = "Description Not Available"
	defaultCategory    = "Category Not Available"
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	reviewRepo  repository.ReviewRepository
}

func CreateProductService(productRepo repository.ProductRepository, reviewRepo repository.ReviewRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, reviewRepo: reviewRepo}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.ProductFilter) (resp dto.ProductListResponse, err error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}

	count, err := s.productRepo.CountProducts(ctx, filter)
	if err != nil {
		return resp, errs.ErrFetchProducts
	}

	offset := int64(page-1) * productsPerPage
	if offset >= count {
		resp.Products = []dto.ProductResponse{}
		resp.Message = "No products found"
		return resp, nil
	}

	data, err := s.productRepo.GetProducts(ctx, filter, offset, productsPerPage)
	if err != nil {
		return resp, errs.ErrFetchProducts
	}

	products := make([]dto.ProductResponse, 0, len(data))
	for _, product := range data {
		products = append(products, mapProductResponse(product))
	}

	resp.Products = products
	resp.CurrentPage = page
	resp.TotalPages = int((count + productsPerPage - 1) / productsPerPage)
	return resp, nil
}

func (s *ProductServiceImpl) GetProduct(ctx context.Context, id string) (resp dto.ProductResponse, err error) {
	if id == "" {
		return resp, errs.ErrClient
	}

	normalizedID := normalizeProductID(id)

	product, err := s.productRepo.GetProductByID(ctx, normalizedID)
	if err != nil {
		return resp, err
	}

	resp = mapProductResponse(product)

	// Reviews are read from their own collection; an embedded array on the
	// product document is treated as a stale cache and ignored.
	reviews, err := s.reviewRepo.GetReviewsByProductID(ctx, normalizedID)
	if err != nil {
		return resp, errs.ErrInternalServer
	}

	for _, review := range reviews {
		resp.Reviews = append(resp.Reviews, mapReviewResponse(review))
	}

	return resp, nil
}

// normalizeProductID zero-pads 1-2 digit numeric ids to the store's 3 digit
// convention, so "7" and "007" resolve the same record. Anything else passes
// through unchanged.
func normalizeProductID(id string) string {
	if len(id) >= 3 {
		return id
	}

	for _, c := range id {
		if c < '0' || c > '9' {
			return id
		}
	}

	padded := id
	for len(padded) < 3 {
		padded = "0" + padded
	}
	return padded
}

// mapProductResponse substitutes documented defaults for any attribute the
// stored document is missing; consumers never see absent fields.
func mapProductResponse(product domain.Product) dto.ProductResponse {
	resp := dto.ProductResponse{
		ID:          product.ID,
		Title:       product.Title,
		Description: product.Description,
		Category:    product.Category,
		Price:       product.Price,
		Rating:      product.Rating,
		Images:      product.Images,
		Stock:       product.Stock,
		Tags:        product.Tags,
		Reviews:     []dto.ReviewResponse{},
	}

	if resp.Title == "" {
		resp.Title = defaultTitle
	}
	if resp.Description == "" {
		resp.Description = defaultDescription
	}
	if resp.Category == "" {
		resp.Category = defaultCategory
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}

	return resp
}

func mapReviewResponse(review domain.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:            review.ID.Hex(),
		Rating:        review.Rating,
		Comment:       review.Comment,
		ReviewerName:  review.ReviewerName,
		ReviewerEmail: review.ReviewerEmail,
		Date:          review.Date,
	}
}
