package schema

import (
	"time"

	"github.com/hamba/avro/v2"
)

const ProductSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront.products",
	"name": "product",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "handle", "type": "string"},
		{"name": "title", "type": "string"},
		{"name": "description", "type": "string"},
		{"name": "vendor", "type": "string"},
		{"name": "product_type", "type": "string"},
		{"name": "available_for_sale", "type": "boolean"},
		{"name": "price_range", "type": {
			"type": "record",
			"name": "price_range",
			"fields": [
				{"name": "min", "type": {
					"type": "record",
					"name": "money",
					"fields": [
						{"name": "amount", "type": "string"},
						{"name": "currency_code", "type": "string"}
					]
				}},
				{"name": "max", "type": "money"}
			]
		}},
		{"name": "featured_image", "type": ["null", {
			"type": "record",
			"name": "image",
			"fields": [
				{"name": "url", "type": "string"},
				{"name": "alt_text", "type": "string"}
			]
		}], "default": null},
		{"name": "images", "type": {"type": "array", "items": "image"}},
		{"name": "variants", "type": {"type": "array", "items": {
			"type": "record",
			"name": "variant",
			"fields": [
				{"name": "id", "type": "string"},
				{"name": "title", "type": "string"},
				{"name": "available_for_sale", "type": "boolean"},
				{"name": "price", "type": "money"},
				{"name": "compare_at_price", "type": ["null", "money"], "default": null}
			]
		}}},
		{"name": "tags", "type": {"type": "array", "items": "string"}},
		{"name": "updated_at", "type": {"type": "long", "logicalType": "timestamp-millis"}}
	]
}`

// ProductV1Avro parses [ProductSchemaTextV1]. It panics if the schema text
// is broken.
func ProductV1Avro() avro.Schema {
	return avro.MustParse(ProductSchemaTextV1)
}

type (
	ProductV1 struct {
		ID               string              `avro:"id"`
		Handle           string              `avro:"handle"`
		Title            string              `avro:"title"`
		Description      string              `avro:"description"`
		Vendor           string              `avro:"vendor"`
		ProductType      string              `avro:"product_type"`
		AvailableForSale bool                `avro:"available_for_sale"`
		PriceRange       ProductPriceRangeV1 `avro:"price_range"`
		FeaturedImage    *ProductImageV1     `avro:"featured_image"`
		Images           []ProductImageV1    `avro:"images"`
		Variants         []ProductVariantV1  `avro:"variants"`
		Tags             []string            `avro:"tags"`
		UpdatedAt        time.Time           `avro:"updated_at"`
	}

	ProductPriceRangeV1 struct {
		Min MoneyV1 `avro:"min"`
		Max MoneyV1 `avro:"max"`
	}

	MoneyV1 struct {
		Amount       string `avro:"amount"`
		CurrencyCode string `avro:"currency_code"`
	}

	ProductImageV1 struct {
		URL     string `avro:"url"`
		AltText string `avro:"alt_text"`
	}

	ProductVariantV1 struct {
		ID               string   `avro:"id"`
		Title            string   `avro:"title"`
		AvailableForSale bool     `avro:"available_for_sale"`
		Price            MoneyV1  `avro:"price"`
		CompareAtPrice   *MoneyV1 `avro:"compare_at_price"`
	}
)
