package domain

import "time"

type (
	Menu struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Path  string `json:"path"`
	}

	Page struct {
		ID          string    `json:"id"`
		Handle      string    `json:"handle"`
		Title       string    `json:"title"`
		Body        string    `json:"body"`
		BodySummary string    `json:"bodySummary"`
		SEO         SEO       `json:"seo"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
)
