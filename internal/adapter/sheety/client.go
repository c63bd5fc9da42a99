package sheety

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/guicpereira/LojaVOKA/internal/core/domain"
	"github.com/guicpereira/LojaVOKA/internal/core/port"
)

var _ port.CatalogClient = (*Client)(nil)

const (
	productsPath   = "/produtos"
	categoriesPath = "/categorias"
)

// A RemoteError reports a non-2xx response from the sheet API.
type RemoteError struct {
	Status int
	URL    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote store returned %d for %s", e.Status, e.URL)
}

// Client talks to the Sheety-style REST facade in front of the product
// sheet: list endpoints return row envelopes, mutations address rows by id.
type Client struct {
	baseURL string
	hc      *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		hc:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "sheety.Client.FetchProducts"

	var env productsEnvelope
	if err := c.getJSON(ctx, productsPath, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := env.records()
	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.toDomain())
	}
	return products, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "sheety.Client.FetchCategories"

	var env categoriesEnvelope
	if err := c.getJSON(ctx, categoriesPath, &env); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records := env.records()
	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, r.toDomain())
	}
	return categories, nil
}

// CreateProduct inserts a row. The like count is omitted from the payload;
// the sheet initializes it.
func (c *Client) CreateProduct(ctx context.Context, d domain.ProductDraft) error {
	const op = "sheety.Client.CreateProduct"

	body := createBody{
		Product: createFields{
			Name:     d.Name,
			Price:    d.Price,
			Image:    d.Image,
			Category: d.FinalCategory(),
			Details:  d.Description,
		},
	}
	if err := c.send(ctx, http.MethodPost, productsPath, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	const op = "sheety.Client.DeleteProduct"

	path := productsPath + "/" + productID
	if err := c.send(ctx, http.MethodDelete, path, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) UpdateLikeCount(
	ctx context.Context, productID string, likes int,
) error {
	const op = "sheety.Client.UpdateLikeCount"

	path := productsPath + "/" + productID
	body := likeBody{Product: likeFields{LikeCount: likes}}
	if err := c.send(ctx, http.MethodPut, path, body); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, dst any) error {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Status: resp.StatusCode, URL: url}
	}

	return json.NewDecoder(resp.Body).Decode(dst)
}

func (c *Client) send(ctx context.Context, method, path string, body any) error {
	url := c.baseURL + path

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Status: resp.StatusCode, URL: url}
	}
	return nil
}
