package dto

import "time"

type ReviewResponse struct {
	ID            string    `json:"id"`
	Rating        float64   `json:"rating"`
	Comment       string    `json:"comment"`
	ReviewerName  string    `json:"reviewerName"`
	ReviewerEmail string    `json:"reviewerEmail"`
	Date          time.Time `json:"date"`
}

type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}
