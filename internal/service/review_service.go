package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rdewanto/storefront-service/internal/domain"
	"github.com/rdewanto/storefront-service/internal/dto"
	"github.com/rdewanto/storefront-service/internal/repository"
	"github.com/rdewanto/storefront-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventWriter is the producer side of the review event stream. *kafka.Conn
// satisfies it.
type EventWriter interface {
	WriteMessages(msgs ...kafka.Message) (int, error)
}

type ReviewServiceImpl struct {
	reviewRepo    repository.ReviewRepository
	productRepo   repository.ProductRepository
	kafkaReader   *kafka.Reader
	kafkaProducer EventWriter
}

func CreateReviewService(reviewRepo repository.ReviewRepository, productRepo repository.ProductRepository, kafkaReader *kafka.Reader, kafkaProducer EventWriter) ReviewService {
	return &ReviewServiceImpl{reviewRepo: reviewRepo, productRepo: productRepo, kafkaReader: kafkaReader, kafkaProducer: kafkaProducer}
}

func (s *ReviewServiceImpl) AddReview(ctx context.Context, authenticated bool, productID string, payload dto.ReviewRequest) (err error) {
	if !authenticated {
		return errs.ErrNotLoggedIn
	}

	if payload.Rating == 0 || payload.Comment == "" || payload.ReviewerEmail == "" || payload.ReviewerName == "" {
		return errs.ErrMissingReviewFields
	}

	_, err = s.reviewRepo.AddReview(ctx, domain.Review{
		ProductID:     productID,
		Rating:        payload.Rating,
		Comment:       payload.Comment,
		ReviewerName:  payload.ReviewerName,
		ReviewerEmail: payload.ReviewerEmail,
		Date:          time.Now(),
	})
	if err != nil {
		return err
	}

	s.publishReviewEvent(ctx, "review_added", productID)

	return nil
}

func (s *ReviewServiceImpl) GetReviews(ctx context.Context, productID string) (resp []dto.ReviewResponse, err error) {
	data, err := s.reviewRepo.GetReviewsByProductID(ctx, productID)
	if err != nil {
		return nil, err
	}

	resp = make([]dto.ReviewResponse, 0, len(data))
	for _, review := range data {
		resp = append(resp, mapReviewResponse(review))
	}

	return resp, nil
}

func (s *ReviewServiceImpl) UpdateReview(ctx context.Context, authenticated bool, productID string, reviewID string, payload dto.ReviewUpdateRequest) (err error) {
	if !authenticated {
		return errs.ErrNotLoggedIn
	}

	if payload.Comment == "" {
		return errs.ErrMissingReviewFields
	}

	objectID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return errs.ErrClient
	}

	// Only the comment is mutable through this path; rating edits go through
	// delete and re-create.
	err = s.reviewRepo.UpdateReviewComment(ctx, productID, objectID, payload.Comment)
	if err != nil {
		return err
	}

	s.publishReviewEvent(ctx, "review_updated", productID)

	return nil
}

func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, authenticated bool, productID string, reviewID string) (err error) {
	if !authenticated {
		return errs.ErrNotLoggedIn
	}

	objectID, err := primitive.ObjectIDFromHex(reviewID)
	if err != nil {
		return errs.ErrClient
	}

	err = s.reviewRepo.DeleteReview(ctx, productID, objectID)
	if err != nil {
		return err
	}

	s.publishReviewEvent(ctx, "review_deleted", productID)

	return nil
}

// publishReviewEvent emits the rating-refresh trigger. Publish failure is
// logged but does not fail the caller's write; the stored review is already
// durable and the rating cache catches up on the next event.
func (s *ReviewServiceImpl) publishReviewEvent(ctx context.Context, eventType string, productID string) {
	if s.kafkaProducer == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      dto.ReviewEvent{ProductID: productID},
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishReviewEvent").Msg("")
		return
	}

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		err = s.writeKafkaMessage(jsonMsg)
		if err == nil {
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "publishReviewEvent").Msg("")
		time.Sleep(time.Second * time.Duration(i+1))
	}
}

func (s *ReviewServiceImpl) writeKafkaMessage(msg []byte) error {
	_, err := s.kafkaProducer.WriteMessages(
		kafka.Message{
			Value: msg,
		},
	)
	return err
}

func (s *ReviewServiceImpl) ConsumeEvent() {
	for {
		msg, err := s.kafkaReader.ReadMessage(context.Background())
		if err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		var receivedMsg dto.KafkaMessage
		if err := json.Unmarshal(msg.Value, &receivedMsg); err != nil {
			log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
			continue
		}

		switch receivedMsg.EventType {
		case "review_added", "review_updated", "review_deleted":
			var event dto.ReviewEvent
			dataBytes, err := json.Marshal(receivedMsg.Data)
			if err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}

			if err := json.Unmarshal(dataBytes, &event); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}

			if err := s.RefreshProductRating(context.Background(), event.ProductID); err != nil {
				log.Error().Err(err).Str("component", "ConsumeEvent").Msg("")
				continue
			}
		default:
			log.Info().Str("component", "ConsumeEvent").Str("event_type", receivedMsg.EventType).Msg("Unknown event type")
		}
	}
}

// ReconcileProductRatings recomputes the rating cache for every reviewed
// product. It backs the event-driven refresh in case a publish was dropped.
func (s *ReviewServiceImpl) ReconcileProductRatings() {
	log.Info().Str("component", "ReconcileProductRatings").Msg("cron starts")
	ids, err := s.reviewRepo.GetReviewedProductIDs(context.Background())
	if err != nil {
		return
	}

	for _, id := range ids {
		if err := s.RefreshProductRating(context.Background(), id); err != nil {
			log.Error().Err(err).Str("component", "ReconcileProductRatings").Str("product_id", id).Msg("")
		}
	}
}

// RefreshProductRating recomputes the product's average rating from the
// reviews collection and writes it back to the product document.
func (s *ReviewServiceImpl) RefreshProductRating(ctx context.Context, productID string) error {
	avg, err := s.reviewRepo.GetAverageRating(ctx, productID)
	if err != nil {
		return err
	}

	return s.productRepo.SetProductRating(ctx, productID, avg)
}
