package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rdewanto/storefront-service/internal/domain"
	"github.com/rdewanto/storefront-service/internal/dto"
	"github.com/rdewanto/storefront-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func reviewRequestFixture() dto.ReviewRequest {
	return dto.ReviewRequest{
		Rating:        4.5,
		Comment:       "Great lamp",
		ReviewerEmail: "iin@example.com",
		ReviewerName:  "Iin",
	}
}

func TestAddReviewValidation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(r *dto.ReviewRequest)
	}{
		{name: "missing rating", mutate: func(r *dto.ReviewRequest) { r.Rating = 0 }},
		{name: "missing comment", mutate: func(r *dto.ReviewRequest) { r.Comment = "" }},
		{name: "missing reviewer email", mutate: func(r *dto.ReviewRequest) { r.ReviewerEmail = "" }},
		{name: "missing reviewer name", mutate: func(r *dto.ReviewRequest) { r.ReviewerName = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reviewRepo := &fakeReviewRepo{}
			svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, nil)

			payload := reviewRequestFixture()
			tc.mutate(&payload)

			err := svc.AddReview(context.Background(), true, "001", payload)
			assert.ErrorIs(t, err, errs.ErrMissingReviewFields)
			assert.Zero(t, reviewRepo.addCalls, "store must not be contacted on validation failure")
		})
	}
}

func TestAddReviewRequiresAuthentication(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, nil)

	err := svc.AddReview(context.Background(), false, "001", reviewRequestFixture())
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
	assert.Zero(t, reviewRepo.addCalls)
}

func TestAddReviewAssignsServerDate(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	writer := &fakeEventWriter{}
	svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, writer)

	before := time.Now()
	err := svc.AddReview(context.Background(), true, "001", reviewRequestFixture())
	require.NoError(t, err)

	require.Len(t, reviewRepo.reviews, 1)
	stored := reviewRepo.reviews[0]
	assert.False(t, stored.Date.Before(before))
	assert.False(t, stored.Date.After(time.Now()))
	assert.Equal(t, "001", stored.ProductID)

	require.Len(t, writer.msgs, 1)
	var msg dto.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.msgs[0].Value, &msg))
	assert.Equal(t, "review_added", msg.EventType)
}

func TestUpdateReviewMutatesOnlyComment(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, nil)

	require.NoError(t, svc.AddReview(context.Background(), true, "001", reviewRequestFixture()))
	stored := reviewRepo.reviews[0]

	err := svc.UpdateReview(context.Background(), true, "001", stored.ID.Hex(), dto.ReviewUpdateRequest{Comment: "Edited"})
	require.NoError(t, err)

	updated := reviewRepo.reviews[0]
	assert.Equal(t, "Edited", updated.Comment)
	assert.Equal(t, stored.Rating, updated.Rating)
	assert.Equal(t, stored.ReviewerName, updated.ReviewerName)
	assert.Equal(t, stored.Date, updated.Date)
}

func TestUpdateReviewPublishesEvent(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	writer := &fakeEventWriter{}
	svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, writer)

	require.NoError(t, svc.AddReview(context.Background(), true, "001", reviewRequestFixture()))
	stored := reviewRepo.reviews[0]

	err := svc.UpdateReview(context.Background(), true, "001", stored.ID.Hex(), dto.ReviewUpdateRequest{Comment: "Edited"})
	require.NoError(t, err)

	require.Len(t, writer.msgs, 2)
	var msg dto.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.msgs[1].Value, &msg))
	assert.Equal(t, "review_updated", msg.EventType)

	// A rejected update must not emit anything.
	err = svc.UpdateReview(context.Background(), true, "001", primitive.NewObjectID().Hex(), dto.ReviewUpdateRequest{Comment: "x"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Len(t, writer.msgs, 2)
}

func TestUpdateReviewErrors(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, nil)

	err := svc.UpdateReview(context.Background(), false, "001", primitive.NewObjectID().Hex(), dto.ReviewUpdateRequest{Comment: "x"})
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)

	err = svc.UpdateReview(context.Background(), true, "001", primitive.NewObjectID().Hex(), dto.ReviewUpdateRequest{})
	assert.ErrorIs(t, err, errs.ErrMissingReviewFields)

	err = svc.UpdateReview(context.Background(), true, "001", "not-a-hex-id", dto.ReviewUpdateRequest{Comment: "x"})
	assert.ErrorIs(t, err, errs.ErrClient)

	err = svc.UpdateReview(context.Background(), true, "001", primitive.NewObjectID().Hex(), dto.ReviewUpdateRequest{Comment: "x"})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteReview(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	writer := &fakeEventWriter{}
	svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, writer)

	require.NoError(t, svc.AddReview(context.Background(), true, "001", reviewRequestFixture()))
	stored := reviewRepo.reviews[0]

	err := svc.DeleteReview(context.Background(), true, "001", stored.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, reviewRepo.reviews)

	require.Len(t, writer.msgs, 2)
	var msg dto.KafkaMessage
	require.NoError(t, json.Unmarshal(writer.msgs[1].Value, &msg))
	assert.Equal(t, "review_deleted", msg.EventType)

	// Deleting an id that no longer exists is a distinct not-found outcome,
	// never a silent success.
	err = svc.DeleteReview(context.Background(), true, "001", stored.ID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDeleteReviewRequiresAuthentication(t *testing.T) {
	reviewRepo := &fakeReviewRepo{}
	svc := CreateReviewService(reviewRepo, &fakeProductRepo{}, nil, nil)

	err := svc.DeleteReview(context.Background(), false, "001", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, errs.ErrNotLoggedIn)
}

func TestGetReviewsReturnsEmptySliceForUnreviewedProduct(t *testing.T) {
	svc := CreateReviewService(&fakeReviewRepo{}, &fakeProductRepo{}, nil, nil)

	resp, err := svc.GetReviews(context.Background(), "001")
	require.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestRefreshProductRating(t *testing.T) {
	productRepo := &fakeProductRepo{products: []domain.Product{{ID: "001", Title: "Lamp"}}}
	reviewRepo := &fakeReviewRepo{}
	svc := CreateReviewService(reviewRepo, productRepo, nil, nil).(*ReviewServiceImpl)

	for _, rating := range []float64{3, 4, 5} {
		payload := reviewRequestFixture()
		payload.Rating = rating
		require.NoError(t, svc.AddReview(context.Background(), true, "001", payload))
	}

	require.NoError(t, svc.RefreshProductRating(context.Background(), "001"))
	assert.InDelta(t, 4.0, productRepo.products[0].Rating, 1e-9)
}

func TestReconcileProductRatings(t *testing.T) {
	productRepo := &fakeProductRepo{products: []domain.Product{
		{ID: "001", Title: "Lamp"},
		{ID: "002", Title: "Chair"},
	}}
	reviewRepo := &fakeReviewRepo{}
	svc := CreateReviewService(reviewRepo, productRepo, nil, nil)

	for productID, ratings := range map[string][]float64{
		"001": {2, 4},
		"002": {5},
	} {
		for _, rating := range ratings {
			payload := reviewRequestFixture()
			payload.Rating = rating
			require.NoError(t, svc.AddReview(context.Background(), true, productID, payload))
		}
	}

	svc.ReconcileProductRatings()

	assert.InDelta(t, 3.0, productRepo.products[0].Rating, 1e-9)
	assert.InDelta(t, 5.0, productRepo.products[1].Rating, 1e-9)
}
