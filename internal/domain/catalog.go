package domain

import "strings"

type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"urlImage"`
}

type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Details    string `json:"details"`
	ImageURL   string `json:"urlImage"`
	Price      Money  `json:"price"`
	Popular    bool   `json:"popular"`
	BestSeller bool   `json:"bestSeller"`
	Stock      int    `json:"stock"`
	Available  bool   `json:"available"`
	CategoryID int64  `json:"categoryId"`
}

type ProductListing string

const (
	ListingByCategory ProductListing = "category"
	ListingPopular    ProductListing = "popular"
	ListingBestSeller ProductListing = "bestselling"
)

func ParseProductListing(s string) (ProductListing, error) {
	switch l := ProductListing(strings.ToLower(strings.TrimSpace(s))); l {
	case ListingByCategory, ListingPopular, ListingBestSeller:
		return l, nil
	default:
		return "", ErrInvalidListing
	}
}
