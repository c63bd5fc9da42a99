package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
	"github.com/guicpereira/LojaVOKA/internal/core/port"
)

// StorefrontHandler serves the shopper-facing API: the filtered catalog,
// the category list, like toggling and the cart.
type StorefrontHandler struct {
	viewer    port.StorefrontViewer
	liker     port.LikeToggler
	cart      port.CartManager
	imageBase string
}

func RegisterStorefront(
	mux *http.ServeMux,
	viewer port.StorefrontViewer,
	liker port.LikeToggler,
	cart port.CartManager,
	imageBase string,
) {
	h := StorefrontHandler{viewer, liker, cart, imageBase}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("POST /v1/products/{id}/like", h.PostLike)
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostCartItem)
	mux.HandleFunc("DELETE /v1/cart/items/{index}", h.DeleteCartItem)
	mux.HandleFunc("POST /v1/cart/checkout", h.PostCheckout)
}

func (h StorefrontHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := domain.FilterCategory(r.URL.Query().Get("categoria"))
	if category == "" {
		category = domain.CategoryAll
	}

	view := h.viewer.View(query, category)

	resp := CatalogResponse{
		Loading:  view.Loading,
		Products: make([]Product, 0, len(view.Products)),
	}
	for _, p := range view.Products {
		resp.Products = append(resp.Products, h.toWire(p, view.Liked))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h StorefrontHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	cs := h.viewer.Categories()

	resp := CategoriesResponse{Categories: make([]Category, 0, len(cs))}
	for _, c := range cs {
		resp.Categories = append(resp.Categories, Category{ID: c.ID, Name: c.Name})
	}

	writeJSON(w, http.StatusOK, resp)
}

// PostLike responds 200 even when the remote write fails: the local
// toggle already happened and the body's sincronizado flag carries the
// drift.
func (h StorefrontHandler) PostLike(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostLike"
	log := slog.With("op", op)

	productID := r.PathValue("id")

	res, err := h.liker.ToggleLike(r.Context(), productID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, LikeResponse{
			Likes: res.Likes, Liked: res.Liked, Synced: true,
		})
	case errors.Is(err, domain.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "produto nao encontrado")
	case errors.Is(err, domain.ErrRemoteSync):
		log.Warn("like applied locally only", "productID", productID)
		writeJSON(w, http.StatusOK, LikeResponse{
			Likes: res.Likes, Liked: res.Liked, Synced: false,
		})
	default:
		log.Error("failed to toggle like", "err", err)
		writeError(w, http.StatusInternalServerError, "erro interno")
	}
}

func (h StorefrontHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.cartResponse())
}

func (h StorefrontHandler) PostCartItem(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostCartItem"
	log := slog.With("op", op)

	var req CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "JSON invalido")
		return
	}

	p, err := h.cart.CartAdd(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "produto nao encontrado")
			return
		}
		log.Error("failed to add to cart", "err", err)
		writeError(w, http.StatusInternalServerError, "erro interno")
		return
	}

	writeJSON(w, http.StatusCreated, h.toWire(p, nil))
}

func (h StorefrontHandler) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "indice invalido")
		return
	}

	if !h.cart.CartRemoveAt(index) {
		writeError(w, http.StatusNotFound, "item nao encontrado")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h StorefrontHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PostCheckout"

	total, items := h.cart.CartCheckout()
	slog.With("op", op).Info("checkout", "total", total, "nItems", items)

	writeJSON(w, http.StatusOK, CheckoutResponse{
		Message: "Compra finalizada",
		Total:   total,
		Items:   items,
	})
}

func (h StorefrontHandler) cartResponse() CartResponse {
	items := h.cart.CartItems()

	resp := CartResponse{
		Items: make([]Product, 0, len(items)),
		Total: h.cart.CartTotal(),
	}
	for _, p := range items {
		resp.Items = append(resp.Items, h.toWire(p, nil))
	}
	return resp
}

func (h StorefrontHandler) toWire(p domain.Product, liked domain.LikedSet) Product {
	return Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Image:       domain.ResolveImage(p.Image, h.imageBase),
		Category:    p.Category,
		Description: p.Description,
		Likes:       p.Likes,
		Liked:       liked.Has(p.ID),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	const op = "httphandler.writeJSON"

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.With("op", op).Error("failed to write response body", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
