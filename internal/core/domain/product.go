package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrProductNotFound = errors.New("product not found")

	// ErrRemoteSync marks an optimistic local update whose remote write
	// failed. Local state is kept; the cache drifts until the next refresh.
	ErrRemoteSync = errors.New("remote store is out of sync")
)

// A Product is a cached snapshot of a remote catalog record. The remote
// store owns the authoritative copy; the only field the storefront ever
// writes back is Likes.
type Product struct {
	ID          string
	Name        string
	Price       float64
	Image       string
	Category    string
	Description string
	Likes       int
}

// A Category is read-only reference data for the admin category selector.
type Category struct {
	ID   string
	Name string
}

// ResolveImage resolves a product image reference for presentation:
// absolute URLs pass through verbatim, anything else is a filename under
// the local image-asset base path.
func ResolveImage(image, base string) string {
	if strings.HasPrefix(image, "http") {
		return image
	}
	return base + image
}

// IsNeutralCategory reports whether a base category carries no gender
// qualifier.
func IsNeutralCategory(category string) bool {
	return category == "Tecnologia" || category == "Casa"
}

// A ValidationError blocks an admin submission before any remote call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// A ProductDraft is an admin create-form submission. Gender is only
// meaningful for clothing categories; neutral categories ignore it.
type ProductDraft struct {
	Name        string
	Price       float64
	Image       string
	Category    string
	Gender      string
	Description string
}

func (d ProductDraft) Validate() error {
	if d.Category == "" {
		return &ValidationError{Field: "categoria", Reason: "category is required"}
	}
	if !IsNeutralCategory(d.Category) && d.Gender == "" {
		return &ValidationError{
			Field:  "genero",
			Reason: "gender is required for clothing categories",
		}
	}
	return nil
}

// FinalCategory composes the category string stored remotely. Clothing
// gets the gender prefix, e.g. "Mulher Roupa".
func (d ProductDraft) FinalCategory() string {
	if IsNeutralCategory(d.Category) || d.Gender == "" {
		return d.Category
	}
	return d.Gender + " " + d.Category
}

// A CatalogView is the derived storefront view handed to the presentation
// layer: the filtered product list, the loading flag for the initial
// catalog load, and the session's liked-set for heart rendering.
type CatalogView struct {
	Loading  bool
	Products []Product
	Liked    LikedSet
}
