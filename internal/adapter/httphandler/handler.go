package httphandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/metrics"
)

var errInvalidQuery = errors.New("invalid query parameter")

var sortKeys = map[string]bool{
	"":                     true,
	domain.SortRelevance:   true,
	domain.SortBestSelling: true,
	domain.SortCreatedAt:   true,
	domain.SortPrice:       true,
	domain.SortTitle:       true,
}

// NewRouter returns the storefront API. A nil publisher leaves the catalog
// routes out.
func NewRouter(sf port.Storefront, publisher port.CatalogPublisher) *mux.Router {
	r := mux.NewRouter()
	r.Use(WithRequestID, WithObservability, AllowJSON)

	v1 := r.PathPrefix("/v1").Subrouter()
	RegisterStorefront(v1, sf)
	if publisher != nil {
		RegisterCatalog(v1, publisher)
	}

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	return r
}

type StorefrontHandler struct {
	sf port.Storefront
}

func RegisterStorefront(r *mux.Router, sf port.Storefront) {
	h := StorefrontHandler{sf}

	r.HandleFunc("/products", h.GetProducts).Methods(http.MethodGet)
	r.HandleFunc("/products/{handle}", h.GetProduct).Methods(http.MethodGet)
	r.HandleFunc("/products/{id}/recommendations", h.GetProductRecommendations).
		Methods(http.MethodGet)

	r.HandleFunc("/collections", h.GetCollections).Methods(http.MethodGet)
	r.HandleFunc("/collections/{handle}", h.GetCollection).Methods(http.MethodGet)
	r.HandleFunc("/collections/{handle}/products", h.GetCollectionProducts).
		Methods(http.MethodGet)

	r.HandleFunc("/menus/{handle}", h.GetMenu).Methods(http.MethodGet)
	r.HandleFunc("/pages", h.GetPages).Methods(http.MethodGet)
	r.HandleFunc("/pages/{handle}", h.GetPage).Methods(http.MethodGet)

	r.HandleFunc("/carts", h.CreateCart).Methods(http.MethodPost)
	r.HandleFunc("/carts/{id}", h.GetCart).Methods(http.MethodGet)
	r.HandleFunc("/carts/{id}/lines", h.AddToCart).Methods(http.MethodPost)
	r.HandleFunc("/carts/{id}/lines", h.UpdateCart).Methods(http.MethodPut)
	r.HandleFunc("/carts/{id}/lines", h.RemoveFromCart).Methods(http.MethodDelete)
}

func (h StorefrontHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProducts"
	log := slog.With("op", op)

	sortKey, reverse, err := sortParams(r)
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ps, err := h.sf.GetProducts(r.Context(), port.ProductsQuery{
		Query:   r.URL.Query().Get("q"),
		SortKey: sortKey,
		Reverse: reverse,
	})
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h StorefrontHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProduct"
	log := slog.With("op", op)

	p, err := h.sf.GetProduct(r.Context(), mux.Vars(r)["handle"])
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	if p == nil {
		writeMessage(w, r, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h StorefrontHandler) GetProductRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetProductRecommendations"
	log := slog.With("op", op)

	ps, err := h.sf.GetProductRecommendations(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h StorefrontHandler) GetCollections(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetCollections"
	log := slog.With("op", op)

	cs, err := h.sf.GetCollections(r.Context())
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h StorefrontHandler) GetCollection(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetCollection"
	log := slog.With("op", op)

	c, err := h.sf.GetCollection(r.Context(), mux.Vars(r)["handle"])
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	if c == nil {
		writeMessage(w, r, http.StatusNotFound, "collection not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h StorefrontHandler) GetCollectionProducts(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetCollectionProducts"
	log := slog.With("op", op)

	sortKey, reverse, err := sortParams(r)
	if err != nil {
		writeMessage(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var limit int
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil || limit < 0 {
			writeMessage(w, r, http.StatusBadRequest, errInvalidQuery.Error()+": limit")
			return
		}
	}

	ps, err := h.sf.GetCollectionProducts(r.Context(), port.CollectionProductsQuery{
		Handle:  mux.Vars(r)["handle"],
		SortKey: sortKey,
		Reverse: reverse,
		Limit:   limit,
	})
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h StorefrontHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetMenu"
	log := slog.With("op", op)

	m, err := h.sf.GetMenu(r.Context(), mux.Vars(r)["handle"])
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h StorefrontHandler) GetPages(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetPages"
	log := slog.With("op", op)

	ps, err := h.sf.GetPages(r.Context())
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h StorefrontHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetPage"
	log := slog.With("op", op)

	p, err := h.sf.GetPage(r.Context(), mux.Vars(r)["handle"])
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	if p == nil {
		writeMessage(w, r, http.StatusNotFound, "page not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h StorefrontHandler) CreateCart(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.CreateCart"
	log := slog.With("op", op)

	c, err := h.sf.CreateCart(r.Context())
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	log.Info("cart created", "cartID", c.ID)
	writeJSON(w, http.StatusCreated, c)
}

func (h StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.GetCart"
	log := slog.With("op", op)

	c, err := h.sf.GetCart(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	if c == nil {
		writeMessage(w, r, http.StatusNotFound, "cart not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h StorefrontHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.AddToCart"
	log := slog.With("op", op)

	var req AddLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Lines) == 0 {
		writeMessage(w, r, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c, err := h.sf.AddToCart(r.Context(), mux.Vars(r)["id"], req.Lines)
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h StorefrontHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.UpdateCart"
	log := slog.With("op", op)

	var req UpdateLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Lines) == 0 {
		writeMessage(w, r, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c, err := h.sf.UpdateCart(r.Context(), mux.Vars(r)["id"], req.Lines)
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h StorefrontHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.RemoveFromCart"
	log := slog.With("op", op)

	var req RemoveLinesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.LineIDs) == 0 {
		writeMessage(w, r, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	c, err := h.sf.RemoveFromCart(r.Context(), mux.Vars(r)["id"], req.LineIDs)
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type CatalogHandler struct {
	publisher port.CatalogPublisher
}

func RegisterCatalog(r *mux.Router, publisher port.CatalogPublisher) {
	h := CatalogHandler{publisher}
	r.HandleFunc("/catalog/publish", h.PostPublish).Methods(http.MethodPost)
}

// PostPublish sends the selected products to the products topic. An empty
// body publishes the first page of the catalog.
func (h CatalogHandler) PostPublish(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.PostPublish"
	log := slog.With("op", op)

	var req PublishRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeMessage(w, r, http.StatusBadRequest, "invalid JSON data")
			log.Warn("failed to parse JSON", "err", err)
			return
		}
	}
	if !sortKeys[req.SortKey] {
		writeMessage(w, r, http.StatusBadRequest, errInvalidQuery.Error()+": sortKey")
		return
	}

	n, err := h.publisher.PublishCatalog(r.Context(), port.ProductsQuery(req))
	if err != nil {
		writeError(w, r, log, err)
		return
	}

	log.Info("accepted", "nProducts", n)
	writeJSON(w, http.StatusAccepted, PublishResponse{Published: n})
}

func sortParams(r *http.Request) (sortKey string, reverse bool, err error) {
	q := r.URL.Query()

	sortKey = q.Get("sort")
	if !sortKeys[sortKey] {
		return "", false, fmt.Errorf("%w: sort", errInvalidQuery)
	}

	if v := q.Get("reverse"); v != "" {
		reverse, err = strconv.ParseBool(v)
		if err != nil {
			return "", false, fmt.Errorf("%w: reverse", errInvalidQuery)
		}
	}
	return sortKey, reverse, nil
}
