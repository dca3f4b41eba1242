package dto

type ReviewRequest struct {
	Rating        float64 `json:"rating"`
	Comment       string  `json:"comment"`
	ReviewerEmail string  `json:"reviewerEmail"`
	ReviewerName  string  `json:"reviewerName"`
}

type ReviewUpdateRequest struct {
	Comment string `json:"comment"`
}
