package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
	"github.com/guicpereira/LojaVOKA/internal/core/port"
	"github.com/guicpereira/LojaVOKA/pkg/retry"
)

var _ port.CatalogLoader = (*CatalogService)(nil)
var _ port.StorefrontViewer = (*CatalogService)(nil)
var _ port.LikeToggler = (*CatalogService)(nil)
var _ port.CartManager = (*CatalogService)(nil)
var _ port.CatalogAdmin = (*CatalogService)(nil)

// writeRetry covers idempotent remote writes only (like-count update,
// delete). Create is never retried: the store has no duplicate check, so
// a retried create could silently double-insert.
var writeRetry = retry.RetryConfig{
	MaxAttempts: 3,
	Backoff:     retry.LinearBackoff(200 * time.Millisecond),
}

// CatalogService is the single source of truth for the in-memory catalog:
// the cached product and category lists, the loading flag, the session's
// liked-set and the cart. The cache is eventually consistent with the
// remote store and is authoritative for presentation only.
type CatalogService struct {
	mu         sync.RWMutex
	products   []domain.Product
	categories []domain.Category
	loading    bool
	liked      domain.LikedSet
	cart       domain.Cart

	catalog port.CatalogClient
	likes   port.LikedSetRepository
	events  port.InteractionEventsProducer
}

// New builds the service. events may be nil when telemetry is disabled.
func New(
	catalog port.CatalogClient,
	likes port.LikedSetRepository,
	events port.InteractionEventsProducer,
) *CatalogService {
	return &CatalogService{
		liked:   domain.NewLikedSet(),
		catalog: catalog,
		likes:   likes,
		events:  events,
	}
}

// RestoreLikes loads the persisted liked-set. Called once at startup,
// before the first catalog load.
func (s *CatalogService) RestoreLikes() {
	const op = "CatalogService.RestoreLikes"
	log := slog.With("op", op)

	set, err := s.likes.Load()
	if err != nil {
		log.Warn("failed to restore liked set, starting empty", "err", err)
		set = domain.NewLikedSet()
	}

	s.mu.Lock()
	s.liked = set
	s.mu.Unlock()

	log.Info("liked set restored", "nLiked", len(set))
}

// Load fetches products and categories from the remote store and replaces
// the cached lists. The two fetches are independent: a products failure
// does not block categories from being set, and vice versa. Failures are
// logged and leave the previous cache in place; there is no retry.
func (s *CatalogService) Load(ctx context.Context) {
	const op = "CatalogService.Load"
	log := slog.With("op", op)

	s.setLoading(true)
	defer s.setLoading(false)

	ps, psErr := s.catalog.FetchProducts(ctx)
	cs, csErr := s.catalog.FetchCategories(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if psErr != nil {
		log.Error("failed to load products", "err", psErr)
	} else {
		s.products = ps
	}

	if csErr != nil {
		log.Error("failed to load categories", "err", csErr)
	} else {
		s.categories = cs
	}

	if psErr == nil && csErr == nil {
		log.Info("catalog loaded", "nProducts", len(ps), "nCategories", len(cs))
	}
}

// Refresh is Load under its post-mutation name: it runs after every
// successful create, delete and like write so the visible list reflects
// the latest remote state.
func (s *CatalogService) Refresh(ctx context.Context) {
	s.Load(ctx)
}

// View returns the derived storefront view for the given search query and
// category selector.
func (s *CatalogService) View(
	query string, category domain.FilterCategory,
) domain.CatalogView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.CatalogView{
		Loading:  s.loading,
		Products: domain.FilterProducts(s.products, query, category),
		Liked:    s.liked.Clone(),
	}
}

func (s *CatalogService) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

// ToggleLike flips the session's like on a cached product. The new count
// is applied optimistically to the cache and the liked-set is persisted
// before the remote write resolves; none of it is rolled back when the
// remote write fails. In that case the result is still returned, together
// with [domain.ErrRemoteSync] so the caller can surface the drift.
func (s *CatalogService) ToggleLike(
	ctx context.Context, productID string,
) (domain.LikeToggle, error) {
	const op = "CatalogService.ToggleLike"
	log := slog.With("op", op, "productID", productID)

	if err := ctx.Err(); err != nil {
		return domain.LikeToggle{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	p, ok := s.findProduct(productID)
	if !ok {
		s.mu.Unlock()
		return domain.LikeToggle{}, fmt.Errorf(
			"%s: %w", op, domain.ErrProductNotFound,
		)
	}
	res := s.liked.Toggle(p)
	s.applyLocalLikeUpdate(productID, res.Likes)
	set := s.liked.Clone()
	s.mu.Unlock()

	if err := s.likes.Save(set); err != nil {
		log.Error("failed to persist liked set", "err", err)
	}

	err := retry.Do(ctx, writeRetry, func() error {
		return s.catalog.UpdateLikeCount(ctx, productID, res.Likes)
	})
	s.emit(ctx, likeEvent(p, res))
	if err != nil {
		log.Error("failed to sync like count with remote store", "err", err)
		return res, fmt.Errorf("%s: %w", op, domain.ErrRemoteSync)
	}

	s.Refresh(ctx)
	return res, nil
}

// CartAdd appends a snapshot of the cached product to the cart. No
// deduplication: adding twice yields two entries.
func (s *CatalogService) CartAdd(
	ctx context.Context, productID string,
) (domain.Product, error) {
	const op = "CatalogService.CartAdd"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	p, ok := s.findProduct(productID)
	if !ok {
		s.mu.Unlock()
		return domain.Product{}, fmt.Errorf(
			"%s: %w", op, domain.ErrProductNotFound,
		)
	}
	s.cart.Add(p)
	s.mu.Unlock()

	s.emit(ctx, cartEvent(p))
	return p, nil
}

func (s *CatalogService) CartRemoveAt(index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.RemoveAt(index)
}

func (s *CatalogService) CartItems() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Items()
}

func (s *CatalogService) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Total()
}

// CartCheckout empties the cart and reports what it held. The purchase
// itself is simulated; there is no transaction behind it.
func (s *CatalogService) CartCheckout() (total float64, items int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total = s.cart.Total()
	items = s.cart.Len()
	s.cart.Clear()
	return total, items
}

// CreateProduct validates an admin draft and writes it to the remote
// store. Creates are not retried (no duplicate check server-side). A
// successful write triggers a refresh.
func (s *CatalogService) CreateProduct(
	ctx context.Context, d domain.ProductDraft,
) error {
	const op = "CatalogService.CreateProduct"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := d.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.catalog.CreateProduct(ctx, d); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product created", "name", d.Name, "category", d.FinalCategory())
	s.Refresh(ctx)
	return nil
}

// DeleteProduct removes a product from the remote store. Deletes are
// idempotent, so transient failures are retried. A successful delete
// triggers a refresh.
func (s *CatalogService) DeleteProduct(
	ctx context.Context, productID string,
) error {
	const op = "CatalogService.DeleteProduct"
	log := slog.With("op", op, "productID", productID)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err := retry.Do(ctx, writeRetry, func() error {
		return s.catalog.DeleteProduct(ctx, productID)
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("product deleted")
	s.Refresh(ctx)
	return nil
}

// findProduct expects s.mu held.
func (s *CatalogService) findProduct(id string) (domain.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// applyLocalLikeUpdate replaces the like count of the matching cached
// product. Expects s.mu held.
func (s *CatalogService) applyLocalLikeUpdate(id string, likes int) {
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Likes = likes
			return
		}
	}
}

func (s *CatalogService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *CatalogService) emit(ctx context.Context, evt domain.InteractionEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.Warn("failed to produce interaction event",
			"kind", evt.Kind, "err", err)
	}
}

func likeEvent(p domain.Product, res domain.LikeToggle) domain.InteractionEvent {
	kind := domain.InteractionLike
	if !res.Liked {
		kind = domain.InteractionUnlike
	}
	return domain.InteractionEvent{
		Kind:        kind,
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Likes:       res.Likes,
		OccurredAt:  time.Now(),
	}
}

func cartEvent(p domain.Product) domain.InteractionEvent {
	return domain.InteractionEvent{
		Kind:        domain.InteractionCartAdd,
		ProductID:   p.ID,
		ProductName: p.Name,
		Category:    p.Category,
		Likes:       p.Likes,
		OccurredAt:  time.Now(),
	}
}
