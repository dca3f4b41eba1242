package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product documents use string IDs following the store convention of
// zero-padded numeric identifiers, e.g. "002".
type Product struct {
	ID          string   `bson:"_id,omitempty" json:"id"`
	Title       string   `bson:"title" json:"title"`
	Description string   `bson:"description" json:"description"`
	Category    string   `bson:"category" json:"category"`
	Price       float64  `bson:"price" json:"price"`
	Rating      float64  `bson:"rating" json:"rating"`
	Images      []string `bson:"images" json:"images"`
	Stock       uint64   `bson:"stock" json:"stock"`
	Tags        []string `bson:"tags" json:"tags"`
}

type Review struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProductID     string             `bson:"product_id" json:"-"`
	Rating        float64            `bson:"rating" json:"rating"`
	Comment       string             `bson:"comment" json:"comment"`
	ReviewerName  string             `bson:"reviewer_name" json:"reviewerName"`
	ReviewerEmail string             `bson:"reviewer_email" json:"reviewerEmail"`
	Date          time.Time          `bson:"date" json:"date"`
}
