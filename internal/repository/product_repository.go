package repository

import (
	"context"

	"github.com/rdewanto/storefront-service/internal/domain"
	pkgdto "github.com/rdewanto/storefront-service/pkg/dto"
	"github.com/rdewanto/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// prefixUpperBound is the sentinel high character closing the lexicographic
// range [term, term+prefixUpperBound] that emulates prefix matching on title.
const prefixUpperBound = ""

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func buildProductQuery(filter pkgdto.ProductFilter) bson.D {
	query := bson.D{}

	if filter.SearchTerm != "" {
		query = append(query, bson.E{Key: "title", Value: bson.D{
			{Key: "$gte", Value: filter.SearchTerm},
			{Key: "$lte", Value: filter.SearchTerm + prefixUpperBound},
		}})
	}

	if filter.Category != "" {
		query = append(query, bson.E{Key: "category", Value: filter.Category})
	}

	return query
}

func buildProductSort(filter pkgdto.ProductFilter) bson.D {
	switch filter.SortByPrice {
	case "asc":
		return bson.D{{Key: "price", Value: 1}}
	case "desc":
		return bson.D{{Key: "price", Value: -1}}
	default:
		return bson.D{{Key: "title", Value: 1}}
	}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, filter pkgdto.ProductFilter, skip int64, limit int64) (data []domain.Product, err error) {
	findOptions := options.Find().
		SetSort(buildProductSort(filter)).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.db.Collection("products").Find(ctx, buildProductQuery(filter), findOptions)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrFetchProducts
	}

	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, errs.ErrFetchProducts
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) CountProducts(ctx context.Context, filter pkgdto.ProductFilter) (count int64, err error) {
	count, err = r.db.Collection("products").CountDocuments(ctx, buildProductQuery(filter))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CountProducts").Msg("")
		return 0, errs.ErrFetchProducts
	}

	return count, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, errs.ErrInternalServer
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (err error) {
	_, err = r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return errs.ErrInternalServer
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) SetProductRating(ctx context.Context, id string, rating float64) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "rating", Value: rating}}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SetProductRating").Msg("")
		return errs.ErrInternalServer
	}

	if result.MatchedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}
