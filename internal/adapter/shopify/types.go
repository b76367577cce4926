package shopify

import (
	"time"

	"github.com/niksmo/storefront/internal/adapter/upstream"
)

type (
	money struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	}

	image struct {
		URL     string `json:"url"`
		AltText string `json:"altText"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
	}

	seo struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	selectedOption struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	productOption struct {
		ID     string   `json:"id"`
		Name   string   `json:"name"`
		Values []string `json:"values"`
	}

	variant struct {
		ID               string           `json:"id"`
		Title            string           `json:"title"`
		AvailableForSale bool             `json:"availableForSale"`
		SelectedOptions  []selectedOption `json:"selectedOptions"`
		Price            money            `json:"price"`
		CompareAtPrice   *money           `json:"compareAtPrice"`
	}

	product struct {
		ID               string          `json:"id"`
		Handle           string          `json:"handle"`
		AvailableForSale bool            `json:"availableForSale"`
		Title            string          `json:"title"`
		Description      string          `json:"description"`
		DescriptionHTML  string          `json:"descriptionHtml"`
		Vendor           string          `json:"vendor"`
		ProductType      string          `json:"productType"`
		Options          []productOption `json:"options"`
		PriceRange       struct {
			MaxVariantPrice money `json:"maxVariantPrice"`
			MinVariantPrice money `json:"minVariantPrice"`
		} `json:"priceRange"`
		Variants      *upstream.Connection[variant] `json:"variants"`
		FeaturedImage *image                        `json:"featuredImage"`
		Images        *upstream.Connection[image]   `json:"images"`
		SEO           seo                           `json:"seo"`
		Tags          []string                      `json:"tags"`
		UpdatedAt     time.Time                     `json:"updatedAt"`
	}

	collection struct {
		Handle      string    `json:"handle"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		SEO         seo       `json:"seo"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}

	menuItem struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		URL   string `json:"url"`
	}

	page struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Handle      string    `json:"handle"`
		Body        string    `json:"body"`
		BodySummary string    `json:"bodySummary"`
		SEO         *seo      `json:"seo"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
)

type (
	cartLine struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
		Cost     struct {
			AmountPerQuantity money `json:"amountPerQuantity"`
			TotalAmount       money `json:"totalAmount"`
		} `json:"cost"`
		Merchandise struct {
			ID              string           `json:"id"`
			Title           string           `json:"title"`
			SelectedOptions []selectedOption `json:"selectedOptions"`
			Product         struct {
				ID            string `json:"id"`
				Handle        string `json:"handle"`
				Title         string `json:"title"`
				FeaturedImage *image `json:"featuredImage"`
			} `json:"product"`
		} `json:"merchandise"`
	}

	cart struct {
		ID          string `json:"id"`
		CheckoutURL string `json:"checkoutUrl"`
		Cost        struct {
			SubtotalAmount money  `json:"subtotalAmount"`
			TotalAmount    money  `json:"totalAmount"`
			TotalTaxAmount *money `json:"totalTaxAmount"`
		} `json:"cost"`
		Lines         *upstream.Connection[cartLine] `json:"lines"`
		TotalQuantity int                            `json:"totalQuantity"`
	}
)

// Operation payloads.
type (
	cartPayload struct {
		Cart *cart `json:"cart"`
	}

	createCartData struct {
		CartCreate cartPayload `json:"cartCreate"`
	}

	addToCartData struct {
		CartLinesAdd cartPayload `json:"cartLinesAdd"`
	}

	removeFromCartData struct {
		CartLinesRemove cartPayload `json:"cartLinesRemove"`
	}

	updateCartData struct {
		CartLinesUpdate cartPayload `json:"cartLinesUpdate"`
	}

	cartQuery struct {
		Cart *cart `json:"cart"`
	}

	collectionQuery struct {
		Collection *collection `json:"collection"`
	}

	collectionsQuery struct {
		Collections *upstream.Connection[collection] `json:"collections"`
	}

	collectionProductsQuery struct {
		Collection *struct {
			Products *upstream.Connection[product] `json:"products"`
		} `json:"collection"`
	}

	menuQuery struct {
		Menu *struct {
			Items []menuItem `json:"items"`
		} `json:"menu"`
	}

	pageQuery struct {
		Page *page `json:"page"`
	}

	pagesQuery struct {
		Pages *upstream.Connection[page] `json:"pages"`
	}

	productQuery struct {
		Product *product `json:"product"`
	}

	productRecommendationsQuery struct {
		ProductRecommendations []product `json:"productRecommendations"`
	}

	productsQuery struct {
		Products *upstream.Connection[product] `json:"products"`
	}
)
