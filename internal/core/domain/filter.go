package domain

import "strings"

// A FilterCategory is one of the fixed storefront filter selectors.
type FilterCategory string

const (
	CategoryAll       FilterCategory = "Todos"
	CategoryWomenWear FilterCategory = "Roupa Mulher"
	CategoryMenWear   FilterCategory = "Roupa Homem"
	CategoryTech      FilterCategory = "Tecnologia"
	CategoryHome      FilterCategory = "Casa"
)

// FilterProducts evaluates the storefront search and category predicates
// over ps. Pure and stable: input order is preserved, ps is never mutated.
//
// A product passes when its name contains the query (case-insensitive,
// empty query passes everything) and its category matches the selector.
// Category matching is substring-based: the store builds category strings
// by concatenating gender and type ("Mulher Roupa", "Homem Roupa").
func FilterProducts(ps []Product, query string, category FilterCategory) []Product {
	q := strings.ToLower(query)

	var out []Product
	for _, p := range ps {
		if !strings.Contains(strings.ToLower(p.Name), q) {
			continue
		}
		if !matchCategory(strings.ToLower(p.Category), category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchCategory(category string, selector FilterCategory) bool {
	switch selector {
	case CategoryMenWear:
		return strings.Contains(category, "homem") &&
			strings.Contains(category, "roupa")
	case CategoryWomenWear:
		hasGender := strings.Contains(category, "mulher") ||
			strings.Contains(category, "feminina")
		return hasGender && strings.Contains(category, "roupa")
	case CategoryTech:
		return strings.Contains(category, "tecnologia")
	case CategoryHome:
		return strings.Contains(category, "casa")
	default:
		// CategoryAll, and any unknown selector, passes everything.
		return true
	}
}
