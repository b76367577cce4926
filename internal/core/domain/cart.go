package domain

type (
	Cart struct {
		ID            string     `json:"id"`
		CheckoutURL   string     `json:"checkoutUrl"`
		Cost          CartCost   `json:"cost"`
		Lines         []CartLine `json:"lines"`
		TotalQuantity int        `json:"totalQuantity"`
	}

	CartCost struct {
		SubtotalAmount Money `json:"subtotalAmount"`
		TotalAmount    Money `json:"totalAmount"`
		TotalTaxAmount Money `json:"totalTaxAmount"`
	}

	CartLine struct {
		ID          string          `json:"id"`
		Quantity    int             `json:"quantity"`
		Cost        CartLineCost    `json:"cost"`
		Merchandise CartMerchandise `json:"merchandise"`
	}

	CartLineCost struct {
		AmountPerQuantity Money `json:"amountPerQuantity"`
		TotalAmount       Money `json:"totalAmount"`
	}

	CartMerchandise struct {
		ID              string           `json:"id"`
		Title           string           `json:"title"`
		SelectedOptions []SelectedOption `json:"selectedOptions"`
		Product         CartProduct      `json:"product"`
	}

	CartProduct struct {
		ID            string `json:"id"`
		Handle        string `json:"handle"`
		Title         string `json:"title"`
		FeaturedImage *Image `json:"featuredImage,omitempty"`
	}
)

type (
	// CartLineInput adds a merchandise item to a cart.
	CartLineInput struct {
		MerchandiseID string `json:"merchandiseId"`
		Quantity      int    `json:"quantity"`
	}

	// CartLineUpdate changes the quantity of an existing cart line.
	CartLineUpdate struct {
		ID            string `json:"id"`
		MerchandiseID string `json:"merchandiseId"`
		Quantity      int    `json:"quantity"`
	}
)
