package sheety

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, time.Second)
}

func TestFetchProducts(t *testing.T) {
	t.Run("LowercaseEnvelope", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, productsPath, r.URL.Path)
			io.WriteString(w, `{"produtos":[
				{"id":1,"nome":"Camisa","preco":49.9,"imagem":"camisa.png",
				 "categoria":"Homem Roupa","descricao":"Algodao","likes":3}
			]}`)
		})

		got, err := c.FetchProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, domain.Product{
			ID:          "1",
			Name:        "Camisa",
			Price:       49.9,
			Image:       "camisa.png",
			Category:    "Homem Roupa",
			Description: "Algodao",
			Likes:       3,
		}, got[0])
	})

	t.Run("CapitalizedEnvelope", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"Produtos":[{"id":"p-2","nome":"Router"}]}`)
		})

		got, err := c.FetchProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p-2", got[0].ID)
	})

	t.Run("StringNumbersCoerced", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"produtos":[
				{"id":7,"nome":"Mesa","preco":"120.5","likes":"8"}
			]}`)
		})

		got, err := c.FetchProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 120.5, got[0].Price)
		assert.Equal(t, 8, got[0].Likes)
	})

	t.Run("NegativeLikesClamped", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"produtos":[{"id":1,"nome":"X","likes":-4}]}`)
		})

		got, err := c.FetchProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Zero(t, got[0].Likes)
	})

	t.Run("MissingEnvelopeKey", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `{"algo":[]}`)
		})

		got, err := c.FetchProducts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("RemoteError", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.FetchProducts(context.Background())
		var remoteErr *RemoteError
		require.ErrorAs(t, err, &remoteErr)
		assert.Equal(t, http.StatusInternalServerError, remoteErr.Status)
	})
}

func TestFetchCategories(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, categoriesPath, r.URL.Path)
		io.WriteString(w, `{"categorias":[{"id":1,"nome":"Roupa"},{"id":2,"nome":"Tecnologia"}]}`)
	})

	got, err := c.FetchCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{
		{ID: "1", Name: "Roupa"},
		{ID: "2", Name: "Tecnologia"},
	}, got)
}

func TestCreateProduct(t *testing.T) {
	var captured map[string]map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, productsPath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.WriteHeader(http.StatusCreated)
	})

	draft := domain.ProductDraft{
		Name:        "Vestido",
		Price:       89.9,
		Image:       "vestido.png",
		Category:    "Roupa",
		Gender:      "Mulher",
		Description: "Floral",
	}
	require.NoError(t, c.CreateProduct(context.Background(), draft))

	fields, ok := captured["produto"]
	require.True(t, ok)
	assert.Equal(t, "Vestido", fields["nome"])
	assert.Equal(t, "Mulher Roupa", fields["categoria"])
	assert.NotContains(t, fields, "likes")
}

func TestDeleteProduct(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, productsPath+"/42", r.URL.Path)
	})

	require.NoError(t, c.DeleteProduct(context.Background(), "42"))
}

func TestUpdateLikeCount(t *testing.T) {
	var captured map[string]map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, productsPath+"/7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
	})

	require.NoError(t, c.UpdateLikeCount(context.Background(), "7", 5))
	assert.Equal(t, float64(5), captured["produto"]["likes"])
}
