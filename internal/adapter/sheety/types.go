package sheety

import (
	"github.com/spf13/cast"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
)

// The remote sheet API is loose about casing and numeric types: envelope
// keys show up as "produtos" or "Produtos" depending on sheet naming, and
// ids, prices and like counts arrive as numbers or strings. Records keep
// fields untyped and coerce on conversion.

type productsEnvelope struct {
	Lower []productRecord `json:"produtos"`
	Upper []productRecord `json:"Produtos"`
}

func (e productsEnvelope) records() []productRecord {
	if e.Lower != nil {
		return e.Lower
	}
	if e.Upper != nil {
		return e.Upper
	}
	return nil
}

type categoriesEnvelope struct {
	Lower []categoryRecord `json:"categorias"`
	Upper []categoryRecord `json:"Categorias"`
}

func (e categoriesEnvelope) records() []categoryRecord {
	if e.Lower != nil {
		return e.Lower
	}
	if e.Upper != nil {
		return e.Upper
	}
	return nil
}

type productRecord struct {
	ID        any    `json:"id"`
	Name      string `json:"nome"`
	Price     any    `json:"preco"`
	Image     string `json:"imagem"`
	Category  string `json:"categoria"`
	Details   string `json:"descricao"`
	LikeCount any    `json:"likes"`
}

func (r productRecord) toDomain() domain.Product {
	likes := cast.ToInt(r.LikeCount)
	if likes < 0 {
		likes = 0
	}
	return domain.Product{
		ID:          cast.ToString(r.ID),
		Name:        r.Name,
		Price:       cast.ToFloat64(r.Price),
		Image:       r.Image,
		Category:    r.Category,
		Description: r.Details,
		Likes:       likes,
	}
}

type categoryRecord struct {
	ID   any    `json:"id"`
	Name string `json:"nome"`
}

func (r categoryRecord) toDomain() domain.Category {
	return domain.Category{
		ID:   cast.ToString(r.ID),
		Name: r.Name,
	}
}

// Write payloads. The API wraps every mutation in a "produto" object.

type createBody struct {
	Product createFields `json:"produto"`
}

type createFields struct {
	Name     string  `json:"nome"`
	Price    float64 `json:"preco"`
	Image    string  `json:"imagem"`
	Category string  `json:"categoria"`
	Details  string  `json:"descricao"`
}

type likeBody struct {
	Product likeFields `json:"produto"`
}

type likeFields struct {
	LikeCount int `json:"likes"`
}
