package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
)

func TestResolveImage(t *testing.T) {
	t.Run("AbsoluteURLPassesThrough", func(t *testing.T) {
		got := domain.ResolveImage("http://cdn.example.com/a.png", "/img/")
		assert.Equal(t, "http://cdn.example.com/a.png", got)

		got = domain.ResolveImage("https://cdn.example.com/a.png", "/img/")
		assert.Equal(t, "https://cdn.example.com/a.png", got)
	})

	t.Run("FilenameGetsBase", func(t *testing.T) {
		got := domain.ResolveImage("camisa.png", "/img/")
		assert.Equal(t, "/img/camisa.png", got)
	})

	t.Run("EmptyNameYieldsBase", func(t *testing.T) {
		got := domain.ResolveImage("", "/img/")
		assert.Equal(t, "/img/", got)
	})
}

func TestProductDraftValidate(t *testing.T) {
	t.Run("MissingCategory", func(t *testing.T) {
		d := domain.ProductDraft{Name: "Camisa"}

		err := d.Validate()
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "categoria", validationErr.Field)
	})

	t.Run("ClothingWithoutGender", func(t *testing.T) {
		d := domain.ProductDraft{Name: "Camisa", Category: "Roupa"}

		err := d.Validate()
		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "genero", validationErr.Field)
	})

	t.Run("NeutralCategorySkipsGender", func(t *testing.T) {
		d := domain.ProductDraft{Name: "Router", Category: "Tecnologia"}
		assert.NoError(t, d.Validate())

		d.Category = "Casa"
		assert.NoError(t, d.Validate())
	})

	t.Run("ClothingWithGender", func(t *testing.T) {
		d := domain.ProductDraft{Name: "Vestido", Category: "Roupa", Gender: "Mulher"}
		assert.NoError(t, d.Validate())
	})
}

func TestFinalCategory(t *testing.T) {
	t.Run("ClothingGetsGenderPrefix", func(t *testing.T) {
		d := domain.ProductDraft{Category: "Roupa", Gender: "Mulher"}
		assert.Equal(t, "Mulher Roupa", d.FinalCategory())

		d.Gender = "Homem"
		assert.Equal(t, "Homem Roupa", d.FinalCategory())
	})

	t.Run("NeutralStaysBare", func(t *testing.T) {
		d := domain.ProductDraft{Category: "Tecnologia", Gender: "Mulher"}
		assert.Equal(t, "Tecnologia", d.FinalCategory())
	})
}
