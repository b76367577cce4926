package bigcommerce

import (
	"encoding/json"

	"github.com/niksmo/storefront/internal/adapter/upstream"
)

// An amount keeps the literal text of a decimal sent either as a JSON number
// or as a JSON string.
type amount string

func (a *amount) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = amount(s)
		return nil
	}
	*a = amount(b)
	return nil
}

type (
	money struct {
		Value        amount `json:"value"`
		CurrencyCode string `json:"currencyCode"`
	}

	seo struct {
		PageTitle       string `json:"pageTitle"`
		MetaDescription string `json:"metaDescription"`
	}

	image struct {
		URLOriginal string `json:"urlOriginal"`
		AltText     string `json:"altText"`
		IsDefault   bool   `json:"isDefault"`
	}

	optionValue struct {
		Label string `json:"label"`
	}

	productOption struct {
		EntityID    int                                `json:"entityId"`
		DisplayName string                             `json:"displayName"`
		Values      *upstream.Connection[optionValue] `json:"values"`
	}

	variant struct {
		ID            string                               `json:"id"`
		EntityID      int                                  `json:"entityId"`
		IsPurchasable bool                                 `json:"isPurchasable"`
		Options       *upstream.Connection[productOption] `json:"options"`
		Prices        *struct {
			Price       *money `json:"price"`
			RetailPrice *money `json:"retailPrice"`
		} `json:"prices"`
	}

	priceRange struct {
		Min *money `json:"min"`
		Max *money `json:"max"`
	}

	product struct {
		ID                   string `json:"id"`
		EntityID             int    `json:"entityId"`
		Name                 string `json:"name"`
		Path                 string `json:"path"`
		Description          string `json:"description"`
		PlainTextDescription string `json:"plainTextDescription"`
		Brand                *struct {
			Name string `json:"name"`
		} `json:"brand"`
		AvailabilityV2 *struct {
			Status string `json:"status"`
		} `json:"availabilityV2"`
		SEO    seo `json:"seo"`
		Prices *struct {
			PriceRange *priceRange `json:"priceRange"`
		} `json:"prices"`
		Images         *upstream.Connection[image]         `json:"images"`
		ProductOptions *upstream.Connection[productOption] `json:"productOptions"`
		Variants       *upstream.Connection[variant]       `json:"variants"`
	}
)

type (
	category struct {
		EntityID    int    `json:"entityId"`
		Name        string `json:"name"`
		Path        string `json:"path"`
		Description string `json:"description"`
		SEO         *seo   `json:"seo"`
	}

	categoryTreeItem struct {
		EntityID    int                `json:"entityId"`
		Name        string             `json:"name"`
		Path        string             `json:"path"`
		Description string             `json:"description"`
		Children    []categoryTreeItem `json:"children"`
	}

	page struct {
		EntityID         int    `json:"entityId"`
		Name             string `json:"name"`
		Path             string `json:"path"`
		HTMLBody         string `json:"htmlBody"`
		PlainTextSummary string `json:"plainTextSummary"`
		SEO              seo    `json:"seo"`
	}
)

type (
	cartMoney struct {
		Amount       amount `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	}

	cartImage struct {
		URL     string `json:"url"`
		AltText string `json:"altText"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
	}

	selectedOption struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}

	cartLine struct {
		ID       string `json:"id"`
		Quantity int    `json:"quantity"`
		Cost     struct {
			AmountPerQuantity cartMoney `json:"amountPerQuantity"`
			TotalAmount       cartMoney `json:"totalAmount"`
		} `json:"cost"`
		Merchandise struct {
			ID              string           `json:"id"`
			Title           string           `json:"title"`
			SelectedOptions []selectedOption `json:"selectedOptions"`
			Product         struct {
				ID            string     `json:"id"`
				Handle        string     `json:"handle"`
				Title         string     `json:"title"`
				FeaturedImage *cartImage `json:"featuredImage"`
			} `json:"product"`
		} `json:"merchandise"`
	}

	cart struct {
		ID          string `json:"id"`
		CheckoutURL string `json:"checkoutUrl"`
		Cost        struct {
			SubtotalAmount cartMoney  `json:"subtotalAmount"`
			TotalAmount    cartMoney  `json:"totalAmount"`
			TotalTaxAmount *cartMoney `json:"totalTaxAmount"`
		} `json:"cost"`
		Lines         *upstream.Connection[cartLine] `json:"lines"`
		TotalQuantity int                            `json:"totalQuantity"`
	}
)

// Storefront REST cart.
type (
	restCartItem struct {
		ID                string `json:"id"`
		ProductID         int    `json:"productId"`
		VariantID         int    `json:"variantId"`
		Name              string `json:"name"`
		Quantity          int    `json:"quantity"`
		SalePrice         amount `json:"salePrice"`
		ExtendedSalePrice amount `json:"extendedSalePrice"`
		ImageURL          string `json:"imageUrl"`
		Options           []struct {
			Name  string `json:"name"`
			Value string `json:"value"`
		} `json:"options"`
	}

	restCart struct {
		ID       string `json:"id"`
		Currency struct {
			Code string `json:"code"`
		} `json:"currency"`
		BaseAmount amount `json:"baseAmount"`
		CartAmount amount `json:"cartAmount"`
		LineItems  struct {
			PhysicalItems []restCartItem `json:"physicalItems"`
			DigitalItems  []restCartItem `json:"digitalItems"`
		} `json:"lineItems"`
		RedirectURLs *struct {
			CheckoutURL string `json:"checkoutUrl"`
		} `json:"redirectUrls"`
	}
)

// Operation payloads.
type (
	routeNode struct {
		Typename string `json:"__typename"`
	}

	productRoute struct {
		Site struct {
			Route struct {
				Node *struct {
					routeNode
					product
				} `json:"node"`
			} `json:"route"`
		} `json:"site"`
	}

	productsSearch struct {
		Site struct {
			Search struct {
				SearchProducts struct {
					Products *upstream.Connection[product] `json:"products"`
				} `json:"searchProducts"`
			} `json:"search"`
		} `json:"site"`
	}

	productRecommendations struct {
		Site struct {
			Product *struct {
				RelatedProducts *upstream.Connection[product] `json:"relatedProducts"`
			} `json:"product"`
		} `json:"site"`
	}

	categoryRoute struct {
		Site struct {
			Route struct {
				Node *struct {
					routeNode
					category
				} `json:"node"`
			} `json:"route"`
		} `json:"site"`
	}

	categoryProductsRoute struct {
		Site struct {
			Route struct {
				Node *struct {
					routeNode
					Products *upstream.Connection[product] `json:"products"`
				} `json:"node"`
			} `json:"route"`
		} `json:"site"`
	}

	categoryTree struct {
		Site struct {
			CategoryTree []categoryTreeItem `json:"categoryTree"`
		} `json:"site"`
	}

	pageRoute struct {
		Site struct {
			Route struct {
				Node *struct {
					routeNode
					page
				} `json:"node"`
			} `json:"route"`
		} `json:"site"`
	}

	pagesContent struct {
		Site struct {
			Content struct {
				Pages *upstream.Connection[page] `json:"pages"`
			} `json:"content"`
		} `json:"site"`
	}

	cartQuery struct {
		Cart *cart `json:"cart"`
	}

	cartPayload struct {
		Cart *cart `json:"cart"`
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
)
