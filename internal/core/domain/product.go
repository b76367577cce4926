package domain

import "time"

type (
	Product struct {
		ID               string           `json:"id"`
		Handle           string           `json:"handle"`
		AvailableForSale bool             `json:"availableForSale"`
		Title            string           `json:"title"`
		Description      string           `json:"description"`
		DescriptionHTML  string           `json:"descriptionHtml"`
		Vendor           string           `json:"vendor"`
		ProductType      string           `json:"productType"`
		Options          []ProductOption  `json:"options"`
		Variants         []ProductVariant `json:"variants"`
		Images           []Image          `json:"images"`
		FeaturedImage    *Image           `json:"featuredImage,omitempty"`
		PriceRange       PriceRange       `json:"priceRange"`
		SEO              SEO              `json:"seo"`
		Tags             []string         `json:"tags"`
		UpdatedAt        time.Time        `json:"updatedAt"`
	}

	ProductOption struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	ProductVariant struct {
		ID               string           `json:"id"`
		Title            string           `json:"title"`
		AvailableForSale bool             `json:"availableForSale"`
		SelectedOptions  []SelectedOption `json:"selectedOptions"`
		Price            Money            `json:"price"`
		CompareAtPrice   *Money           `json:"compareAtPrice,omitempty"`
	}

	PriceRange struct {
		MinVariantPrice Money `json:"minVariantPrice"`
		MaxVariantPrice Money `json:"maxVariantPrice"`
	}
)

// Product sort keys understood by every backend.
const (
	SortRelevance   = "RELEVANCE"
	SortBestSelling = "BEST_SELLING"
	SortCreatedAt   = "CREATED_AT"
	SortPrice       = "PRICE"
	SortTitle       = "TITLE"
)
