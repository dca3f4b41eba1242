package dto

type ProductResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    string           `json:"category"`
	Price       float64          `json:"price"`
	Rating      float64          `json:"rating"`
	Images      []string         `json:"images"`
	Stock       uint64           `json:"stock"`
	Tags        []string         `json:"tags"`
	Reviews     []ReviewResponse `json:"reviews"`
}

type ProductListResponse struct {
	Products    []ProductResponse `json:"products"`
	CurrentPage int               `json:"currentPage,omitempty"`
	TotalPages  int               `json:"totalPages,omitempty"`
	Message     string            `json:"message,omitempty"`
}

type ProductDetailResponse struct {
	Product ProductResponse `json:"product"`
}
