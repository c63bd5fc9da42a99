package httphandler

import "github.com/guicpereira/LojaVOKA/internal/core/domain"

// Wire types keep the Portuguese field names the storefront UI expects.

type (
	Product struct {
		ID          string  `json:"id"`
		Name        string  `json:"nome"`
		Price       float64 `json:"preco"`
		Image       string  `json:"imagem"`
		Category    string  `json:"categoria"`
		Description string  `json:"descricao"`
		Likes       int     `json:"likes"`
		Liked       bool    `json:"gostei"`
	}

	Category struct {
		ID   string `json:"id"`
		Name string `json:"nome"`
	}
)

type CatalogResponse struct {
	Loading  bool      `json:"carregando"`
	Products []Product `json:"produtos"`
}

type CategoriesResponse struct {
	Categories []Category `json:"categorias"`
}

type LikeResponse struct {
	Likes  int  `json:"likes"`
	Liked  bool `json:"gostei"`
	Synced bool `json:"sincronizado"`
}

type CartAddRequest struct {
	ProductID string `json:"id"`
}

type CartResponse struct {
	Items []Product `json:"itens"`
	Total float64   `json:"total"`
}

type CheckoutResponse struct {
	Message string  `json:"mensagem"`
	Total   float64 `json:"total"`
	Items   int     `json:"itens"`
}

type LoginRequest struct {
	Password string `json:"senha"`
}

type ProductDraft struct {
	Name        string  `json:"nome"`
	Price       float64 `json:"preco"`
	Image       string  `json:"imagem"`
	Category    string  `json:"categoria"`
	Gender      string  `json:"genero"`
	Description string  `json:"descricao"`
}

func (d ProductDraft) toDomain() domain.ProductDraft {
	return domain.ProductDraft{
		Name:        d.Name,
		Price:       d.Price,
		Image:       d.Image,
		Category:    d.Category,
		Gender:      d.Gender,
		Description: d.Description,
	}
}

type ErrorResponse struct {
	Error string `json:"erro"`
}
