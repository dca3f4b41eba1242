package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type ReviewEvent struct {
	ProductID string `json:"product_id"`
}
