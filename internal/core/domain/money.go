package domain

type (
	Money struct {
		Amount       string `json:"amount"`
		CurrencyCode string `json:"currencyCode"`
	}

	Image struct {
		URL     string `json:"url"`
		AltText string `json:"altText"`
		Width   int    `json:"width,omitempty"`
		Height  int    `json:"height,omitempty"`
	}

	SEO struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}

	SelectedOption struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
)

// ZeroTax is substituted for a cart tax amount the backend did not report.
//
// The literal format is relied upon by price formatting in the storefront.
func ZeroTax() Money {
	return Money{Amount: "0.0", CurrencyCode: "USD"}
}
