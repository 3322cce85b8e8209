package client

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Resource is the typed API surface for one entity collection.
type Resource[T any] struct {
	c    *Client
	path string
}

func NewResource[T any](c *Client, path string) *Resource[T] {
	return &Resource[T]{c: c, path: path}
}

// List fetches one page matching the given query parameters.
func (r *Resource[T]) List(ctx context.Context, query url.Values) (*Page[T], error) {
	var page Page[T]
	if err := r.c.do(ctx, http.MethodGet, r.path+"/paginated", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Autocomplete looks up short {id, name} suggestions. An empty search (after
// trimming) clears results locally and never hits the network.
func (r *Resource[T]) Autocomplete(ctx context.Context, search string, limit int) ([]Suggestion, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return nil, nil
	}

	q := url.Values{}
	q.Set("search", search)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var out struct {
		Data         []Suggestion `json:"data"`
		SearchQuery  string       `json:"search_query"`
		ResultCount  int          `json:"result_count"`
		LimitApplied int          `json:"limit_applied"`
	}
	if err := r.c.do(ctx, http.MethodGet, r.path+"/autocomplete", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (r *Resource[T]) Create(ctx context.Context, input interface{}) (*T, error) {
	var rec T
	if err := r.c.do(ctx, http.MethodPost, r.path, nil, input, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Update saves a full record; input carries the id.
func (r *Resource[T]) Update(ctx context.Context, input interface{}) (*T, error) {
	var rec T
	if err := r.c.do(ctx, http.MethodPut, r.path, nil, input, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record with the given id.
func (r *Resource[T]) Delete(ctx context.Context, id uint) error {
	body := map[string]uint{"id": id}
	return r.c.do(ctx, http.MethodDelete, r.path, nil, body, nil)
}

// ---------- typed resources ----------

func (c *Client) Banks() *Resource[Bank] {
	return NewResource[Bank](c, "/api/v1/banks")
}

func (c *Client) Clients() *Resource[ClientRecord] {
	return NewResource[ClientRecord](c, "/api/v1/clients")
}

func (c *Client) Cards() *Resource[Card] {
	return NewResource[Card](c, "/api/v1/cards")
}

func (c *Client) Transactions() *TransactionResource {
	return &TransactionResource{Resource[Transaction]{c: c, path: "/api/v1/transactions"}}
}

func (c *Client) ProfilerProfiles() *Resource[Profile] {
	return NewResource[Profile](c, "/api/v1/profiler/profiles")
}

func (c *Client) ProfilerTransactions() *Resource[ProfileTransaction] {
	return NewResource[ProfileTransaction](c, "/api/v1/profiler/transactions")
}

// TransactionResource adds the report export on top of the generic surface.
type TransactionResource struct {
	Resource[Transaction]
}

// ReportFile is a decoded PDF export.
type ReportFile struct {
	Filename string
	Content  []byte
}

// Report generates a PDF for the filtered transaction list.
func (r *TransactionResource) Report(ctx context.Context, filters TransactionFilters, search string) (*ReportFile, error) {
	body := struct {
		TransactionFilters
		Search string `json:"search,omitempty"`
	}{filters, search}

	var out struct {
		PDFContent string `json:"pdfContent"`
		Filename   string `json:"filename"`
	}
	if err := r.c.do(ctx, http.MethodPost, r.path+"/report", nil, body, &out); err != nil {
		return nil, err
	}

	content, err := base64.StdEncoding.DecodeString(out.PDFContent)
	if err != nil {
		return nil, fmt.Errorf("decode report content: %w", err)
	}
	return &ReportFile{Filename: out.Filename, Content: content}, nil
}
