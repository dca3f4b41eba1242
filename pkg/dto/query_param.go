package dto

type ProductFilter struct {
	SearchTerm  string `query:"searchTerm"`
	Category    string `query:"category"`
	SortByPrice string `query:"sortByPrice"`
	Page        int    `query:"page"`
}
