package client

import (
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filters is an entity-specific, strongly-typed filter record. Keeping
// filters typed (instead of an open map) stops invalid keys from ever
// reaching the server.
type Filters interface {
	// Apply adds the filter's wire parameters to v.
	Apply(v url.Values)
	// IsZero reports whether no filter is set.
	IsZero() bool
}

// NoFilters is the empty filter set used by lists without extra filters.
type NoFilters struct{}

func (NoFilters) Apply(url.Values) {}
func (NoFilters) IsZero() bool     { return true }

// TransactionFilters is the transaction list filter form.
type TransactionFilters struct {
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
	StartDate string           `json:"start_date,omitempty"`
	EndDate   string           `json:"end_date,omitempty"`
	ClientIDs []uint           `json:"client_ids,omitempty"`
	BankIDs   []uint           `json:"bank_ids,omitempty"`
	Type      *int             `json:"transaction_type,omitempty"`
}

func joinUints(ids []uint) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	return strings.Join(parts, ",")
}

func (f TransactionFilters) Apply(v url.Values) {
	if f.MinAmount != nil {
		v.Set("min_amount", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		v.Set("max_amount", f.MaxAmount.String())
	}
	if f.StartDate != "" {
		v.Set("start_date", f.StartDate)
	}
	if f.EndDate != "" {
		v.Set("end_date", f.EndDate)
	}
	if len(f.ClientIDs) > 0 {
		v.Set("client_ids", joinUints(f.ClientIDs))
	}
	if len(f.BankIDs) > 0 {
		v.Set("bank_ids", joinUints(f.BankIDs))
	}
	if f.Type != nil {
		v.Set("transaction_type", strconv.Itoa(*f.Type))
	}
}

func (f TransactionFilters) IsZero() bool {
	return f.MinAmount == nil && f.MaxAmount == nil &&
		f.StartDate == "" && f.EndDate == "" &&
		len(f.ClientIDs) == 0 && len(f.BankIDs) == 0 && f.Type == nil
}

// ProfileTransactionFilters is the profiler transaction list filter form.
type ProfileTransactionFilters struct {
	ProfileID *uint            `json:"profile_id,omitempty"`
	Type      *int             `json:"transaction_type,omitempty"`
	MinAmount *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount *decimal.Decimal `json:"max_amount,omitempty"`
}

func (f ProfileTransactionFilters) Apply(v url.Values) {
	if f.ProfileID != nil {
		v.Set("profile_id", strconv.FormatUint(uint64(*f.ProfileID), 10))
	}
	if f.Type != nil {
		v.Set("transaction_type", strconv.Itoa(*f.Type))
	}
	if f.MinAmount != nil {
		v.Set("min_amount", f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		v.Set("max_amount", f.MaxAmount.String())
	}
}

func (f ProfileTransactionFilters) IsZero() bool {
	return f.ProfileID == nil && f.Type == nil &&
		f.MinAmount == nil && f.MaxAmount == nil
}

// QueryState holds the current search, sort, and filter parameters for one
// entity list view and derives the wire query from them.
type QueryState struct {
	mu        sync.Mutex
	search    string
	sortBy    string
	sortOrder SortOrder
	limit     int
	filters   Filters
}

func NewQueryState(defaultSortBy string, defaultOrder SortOrder) *QueryState {
	return &QueryState{
		sortBy:    defaultSortBy,
		sortOrder: defaultOrder,
		filters:   NoFilters{},
	}
}

func (q *QueryState) SetLimit(n int) {
	q.mu.Lock()
	q.limit = n
	q.mu.Unlock()
}

// SetSearch replaces the free-text search term.
func (q *QueryState) SetSearch(s string) {
	q.mu.Lock()
	q.search = s
	q.mu.Unlock()
}

func (q *QueryState) Search() string {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.search
}

// ApplyFilters replaces the filter set wholesale, as a submitted filter form
// does.
func (q *QueryState) ApplyFilters(f Filters) {
	q.mu.Lock()
	q.filters = f
	q.mu.Unlock()
}

// ClearFilters restores the unfiltered view.
func (q *QueryState) ClearFilters() {
	q.mu.Lock()
	q.filters = NoFilters{}
	q.mu.Unlock()
}

func (q *QueryState) Filters() Filters {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.filters
}

// ToggleSort implements the column-header click: an already-active column
// flips its order, a new column starts ascending.
func (q *QueryState) ToggleSort(column string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.sortBy == column {
		if q.sortOrder == SortAsc {
			q.sortOrder = SortDesc
		} else {
			q.sortOrder = SortAsc
		}
		return
	}
	q.sortBy = column
	q.sortOrder = SortAsc
}

func (q *QueryState) Sort() (string, SortOrder) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.sortBy, q.sortOrder
}

// SetApplied overwrites local state with the values the server echoed back.
// The server is authoritative on normalization.
func (q *QueryState) SetApplied(search string, sort SortApplied) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.search = search
	if sort.SortBy != "" {
		q.sortBy = sort.SortBy
	}
	if sort.SortOrder == string(SortAsc) || sort.SortOrder == string(SortDesc) {
		q.sortOrder = SortOrder(sort.SortOrder)
	}
}

// Values builds the wire query parameters for the given page.
func (q *QueryState) Values(page int) url.Values {
	q.mu.Lock()
	defer q.mu.Unlock()

	v := url.Values{}
	v.Set("page", strconv.Itoa(page))
	if q.limit > 0 {
		v.Set("limit", strconv.Itoa(q.limit))
	}
	if q.search != "" {
		v.Set("search", q.search)
	}
	v.Set("sort_by", q.sortBy)
	v.Set("sort_order", string(q.sortOrder))
	q.filters.Apply(v)
	return v
}
