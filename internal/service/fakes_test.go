package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rdewanto/storefront-service/internal/domain"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"github.com/rdewanto/storefront-service/pkg/errs"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeProductRepo mirrors the store's query semantics in memory: prefix
// range on title, category equality, price or title sort, skip/limit.
type fakeProductRepo struct {
	products []domain.Product
	err      error
}

func (f *fakeProductRepo) matching(filter pkgdto.ProductFilter) []domain.Product {
	var out []domain.Product
	for _, p := range f.products {
		if filter.SearchTerm != "" {
			if p.Title < filter.SearchTerm || p.Title > filter.SearchTerm+"" {
				continue
			}
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, p)
	}

	switch filter.SortByPrice {
	case "asc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "desc":
		sort.Slice(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	default:
		sort.Slice(out, func(i, j int) bool { return strings.Compare(out[i].Title, out[j].Title) < 0 })
	}

	return out
}

func (f *fakeProductRepo) GetProducts(ctx context.Context, filter pkgdto.ProductFilter, skip int64, limit int64) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}

	m := f.matching(filter)
	if skip >= int64(len(m)) {
		return nil, nil
	}

	end := skip + limit
	if end > int64(len(m)) {
		end = int64(len(m))
	}

	return m[skip:end], nil
}

func (f *fakeProductRepo) CountProducts(ctx context.Context, filter pkgdto.ProductFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.matching(filter))), nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id string) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}

	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}

	return domain.Product{}, errs.ErrProductNotFound
}

func (f *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) error {
	f.products = append(f.products, data)
	return nil
}

func (f *fakeProductRepo) SetProductRating(ctx context.Context, id string, rating float64) error {
	for i := range f.products {
		if f.products[i].ID == id {
			f.products[i].Rating = rating
			return nil
		}
	}
	return errs.ErrProductNotFound
}

type fakeReviewRepo struct {
	reviews  []domain.Review
	addCalls int
	err      error
}

func (f *fakeReviewRepo) AddReview(ctx context.Context, data domain.Review) (primitive.ObjectID, error) {
	f.addCalls++
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}

	data.ID = primitive.NewObjectID()
	f.reviews = append(f.reviews, data)
	return data.ID, nil
}

func (f *fakeReviewRepo) GetReviewsByProductID(ctx context.Context, productID string) ([]domain.Review, error) {
	if f.err != nil {
		return nil, f.err
	}

	var out []domain.Review
	for _, r := range f.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) UpdateReviewComment(ctx context.Context, productID string, reviewID primitive.ObjectID, comment string) error {
	if f.err != nil {
		return f.err
	}

	for i := range f.reviews {
		if f.reviews[i].ID == reviewID && f.reviews[i].ProductID == productID {
			f.reviews[i].Comment = comment
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeReviewRepo) DeleteReview(ctx context.Context, productID string, reviewID primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}

	for i := range f.reviews {
		if f.reviews[i].ID == reviewID && f.reviews[i].ProductID == productID {
			f.reviews = append(f.reviews[:i], f.reviews[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeReviewRepo) GetAverageRating(ctx context.Context, productID string) (float64, error) {
	if f.err != nil {
		return 0, f.err
	}

	var sum float64
	var n int
	for _, r := range f.reviews {
		if r.ProductID == productID {
			sum += r.Rating
			n++
		}
	}

	if n == 0 {
		return 0, nil
	}
	return sum / float64(n), nil
}

func (f *fakeReviewRepo) GetReviewedProductIDs(ctx context.Context) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}

	seen := map[string]bool{}
	var ids []string
	for _, r := range f.reviews {
		if !seen[r.ProductID] {
			seen[r.ProductID] = true
			ids = append(ids, r.ProductID)
		}
	}
	return ids, nil
}

type fakeMailer struct {
	sendCalls int
	err       error
}

func (f *fakeMailer) Send(to string, subject string, body string) error {
	f.sendCalls++
	return f.err
}

type fakeUserRepo struct {
	users []domain.User
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, nil
}

func (f *fakeUserRepo) AddUser(ctx context.Context, data domain.User) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	f.users = append(f.users, data)
	return data.ID, nil
}

type fakeEventWriter struct {
	msgs []kafka.Message
}

func (f *fakeEventWriter) WriteMessages(msgs ...kafka.Message) (int, error) {
	f.msgs = append(f.msgs, msgs...)
	return len(msgs), nil
}
