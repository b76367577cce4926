package domain

import (
	"strings"
	"time"
)

// HiddenCollectionPrefix marks collections kept out of public listings.
const HiddenCollectionPrefix = "hidden"

type Collection struct {
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SEO         SEO       `json:"seo"`
	Path        string    `json:"path"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c Collection) Hidden() bool {
	return strings.HasPrefix(c.Handle, HiddenCollectionPrefix)
}

// CollectionPath is the browsing path of the collection with the given handle.
func CollectionPath(handle string) string {
	return "/search/" + handle
}

// AllCollection is the synthetic entry listing every product.
func AllCollection(now time.Time) Collection {
	return Collection{
		Handle:      "",
		Title:       "All",
		Description: "All products",
		SEO: SEO{
			Title:       "All",
			Description: "All products",
		},
		Path:      "/search",
		UpdatedAt: now,
	}
}

// VisibleCollections prepends the synthetic "All" entry and drops hidden
// collections, keeping upstream order.
func VisibleCollections(cs []Collection, now time.Time) []Collection {
	res := make([]Collection, 0, len(cs)+1)
	res = append(res, AllCollection(now))
	for _, c := range cs {
		if c.Hidden() {
			continue
		}
		res = append(res, c)
	}
	return res
}
