package port

import (
	"context"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
)

// Outbound ports: collaborators the catalog service drives.

type CatalogReader interface {
	FetchProducts(context.Context) ([]domain.Product, error)
	FetchCategories(context.Context) ([]domain.Category, error)
}

type CatalogWriter interface {
	CreateProduct(context.Context, domain.ProductDraft) error
	DeleteProduct(ctx context.Context, productID string) error
	UpdateLikeCount(ctx context.Context, productID string, likes int) error
}

type CatalogClient interface {
	CatalogReader
	CatalogWriter
}

// A LikedSetRepository is the durable local storage slot for the
// session's liked-set. Malformed contents load as the empty set.
type LikedSetRepository interface {
	Load() (domain.LikedSet, error)
	Save(domain.LikedSet) error
}

type InteractionEventsProducer interface {
	ProduceEvent(context.Context, domain.InteractionEvent) error
	Close()
}

// Inbound ports: the surface the presentation layer drives.

type CatalogLoader interface {
	Load(context.Context)
	Refresh(context.Context)
}

type StorefrontViewer interface {
	View(query string, category domain.FilterCategory) domain.CatalogView
	Categories() []domain.Category
}

type LikeToggler interface {
	ToggleLike(ctx context.Context, productID string) (domain.LikeToggle, error)
}

type CartManager interface {
	CartAdd(ctx context.Context, productID string) (domain.Product, error)
	CartRemoveAt(index int) bool
	CartItems() []domain.Product
	CartTotal() float64
	CartCheckout() (total float64, items int)
}

type CatalogAdmin interface {
	CreateProduct(context.Context, domain.ProductDraft) error
	DeleteProduct(ctx context.Context, productID string) error
}
