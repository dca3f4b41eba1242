package repository

import (
	"context"

	"github.com/rdewanto/storefront-service/internal/domain"
	"github.com/rdewanto/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Reviews live in their own collection keyed by product_id. The reviews
// collection is the source of truth; products.rating is a derived value
// refreshed through GetAverageRating.
type MongoDBReviewRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewReviewRepository(db *mongo.Database) ReviewRepository {
	return &MongoDBReviewRepositoryImpl{db: db}
}

func (r *MongoDBReviewRepositoryImpl) AddReview(ctx context.Context, data domain.Review) (id primitive.ObjectID, err error) {
	result, err := r.db.Collection("reviews").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddReview").Msg("")
		return id, errs.ErrInternalServer
	}

	return result.InsertedID.(primitive.ObjectID), nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewsByProductID(ctx context.Context, productID string) (data []domain.Review, err error) {
	filter := bson.D{{Key: "product_id", Value: productID}}

	cursor, err := r.db.Collection("reviews").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return nil, errs.ErrInternalServer
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewsByProductID").Msg("")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (r *MongoDBReviewRepositoryImpl) UpdateReviewComment(ctx context.Context, productID string, reviewID primitive.ObjectID, comment string) (err error) {
	filter := bson.D{{Key: "_id", Value: reviewID}, {Key: "product_id", Value: productID}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "comment", Value: comment}}}}

	result, err := r.db.Collection("reviews").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateReviewComment").Msg("")
		return errs.ErrInternalServer
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBReviewRepositoryImpl) DeleteReview(ctx context.Context, productID string, reviewID primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: reviewID}, {Key: "product_id", Value: productID}}

	result, err := r.db.Collection("reviews").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteReview").Msg("")
		return errs.ErrInternalServer
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBReviewRepositoryImpl) GetAverageRating(ctx context.Context, productID string) (avg float64, err error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "product_id", Value: productID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
		}}},
	}

	cursor, err := r.db.Collection("reviews").Aggregate(ctx, pipeline)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAverageRating").Msg("")
		return 0, errs.ErrInternalServer
	}

	defer cursor.Close(ctx)

	var results []struct {
		Rating float64 `bson:"rating"`
	}
	if err = cursor.All(ctx, &results); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAverageRating").Msg("")
		return 0, errs.ErrInternalServer
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Rating, nil
}

func (r *MongoDBReviewRepositoryImpl) GetReviewedProductIDs(ctx context.Context) (ids []string, err error) {
	values, err := r.db.Collection("reviews").Distinct(ctx, "product_id", bson.D{})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetReviewedProductIDs").Msg("")
		return nil, errs.ErrInternalServer
	}

	ids = make([]string, 0, len(values))
	for _, value := range values {
		if id, ok := value.(string); ok {
			ids = append(ids, id)
		}
	}

	return ids, nil
}
