package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dhavanikgithub/fin-ops-sub000/internal/config"
	"github.com/dhavanikgithub/fin-ops-sub000/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Shared plumbing for the paginated list endpoints. Every entity list goes
// through the same page/limit/search/sort parsing and the same response
// payload shape, so it lives here once instead of inline per handler.

const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

type PageParams struct {
	Page  int
	Limit int
}

func parsePageParams(c *gin.Context, app config.AppSubConfig) PageParams {
	def := app.PageSize
	if def <= 0 {
		def = 10
	}
	max := app.MaxPageSize
	if max <= 0 {
		max = 100
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if limit <= 0 || limit > max {
		limit = def
	}
	return PageParams{Page: page, Limit: limit}
}

// SortParams is echoed back to the caller as sort_applied.
type SortParams struct {
	By    string `json:"sort_by"`
	Order string `json:"sort_order"`
}

// parseSort resolves sort_by against the entity's allow-list. Unknown keys
// and orders fall back to the defaults; the caller learns the outcome from
// the echoed sort_applied.
func parseSort(c *gin.Context, allowed map[string]string, defaultBy, defaultOrder string) SortParams {
	by := c.DefaultQuery("sort_by", defaultBy)
	if _, ok := allowed[by]; !ok {
		by = defaultBy
	}
	order := strings.ToLower(c.DefaultQuery("sort_order", defaultOrder))
	if order != SortAsc && order != SortDesc {
		order = defaultOrder
	}
	return SortParams{By: by, Order: order}
}

// orderClause builds the SQL order expression, with id as tiebreaker.
func (s SortParams) orderClause(allowed map[string]string) string {
	col := allowed[s.By]
	dir := "ASC"
	if s.Order == SortDesc {
		dir = "DESC"
	}
	return col + " " + dir + ", id " + dir
}

type Pagination struct {
	CurrentPage     int   `json:"current_page"`
	PageSize        int   `json:"page_size"`
	TotalRecords    int64 `json:"total_records"`
	TotalPages      int   `json:"total_pages"`
	HasNextPage     bool  `json:"has_next_page"`
	HasPreviousPage bool  `json:"has_previous_page"`
}

func paginate(pp PageParams, total int64) Pagination {
	pages := int(total) / pp.Limit
	if int(total)%pp.Limit != 0 {
		pages++
	}
	return Pagination{
		CurrentPage:     pp.Page,
		PageSize:        pp.Limit,
		TotalRecords:    total,
		TotalPages:      pages,
		HasNextPage:     pp.Page < pages,
		HasPreviousPage: pp.Page > 1,
	}
}

// runList counts and fetches one page into out, writing the error response
// itself on failure.
func runList(c *gin.Context, base *gorm.DB, pp PageParams, order string, out interface{}) (Pagination, bool) {
	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return Pagination{}, false
	}

	if err := base.Session(&gorm.Session{}).
		Order(order).
		Limit(pp.Limit).
		Offset((pp.Page - 1) * pp.Limit).
		Find(out).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "query failed")
		return Pagination{}, false
	}

	return paginate(pp, total), true
}

func listPayload(data interface{}, pg Pagination, filters gin.H, search string, sort SortParams) util.Response {
	if filters == nil {
		filters = gin.H{}
	}
	return util.Response{
		"data":            data,
		"pagination":      pg,
		"filters_applied": filters,
		"search_applied":  search,
		"sort_applied":    sort,
	}
}

// ---------- autocomplete ----------

type Suggestion struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type acParams struct {
	Search string
	Limit  int
}

func parseAutocomplete(c *gin.Context, app config.AppSubConfig) acParams {
	def := app.AutocompleteLimit
	if def <= 0 {
		def = 5
	}
	max := app.AutocompleteMax
	if max <= 0 {
		max = 25
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if limit <= 0 || limit > max {
		limit = def
	}
	return acParams{
		Search: strings.TrimSpace(c.Query("search")),
		Limit:  limit,
	}
}

// autocompleteQuery runs a short name lookup over the given model.
func autocompleteQuery(db *gorm.DB, model interface{}, nameCol string, searchCols []string, p acParams) ([]Suggestion, error) {
	q := db.Model(model).Select("id, " + nameCol + " AS name")
	if p.Search != "" {
		pat := likePattern(p.Search)
		clause := make([]string, 0, len(searchCols))
		args := make([]interface{}, 0, len(searchCols))
		for _, col := range searchCols {
			clause = append(clause, col+" LIKE ?")
			args = append(args, pat)
		}
		q = q.Where(strings.Join(clause, " OR "), args...)
	}

	items := make([]Suggestion, 0, p.Limit)
	err := q.Order(nameCol + " ASC").Limit(p.Limit).Find(&items).Error
	return items, err
}

func respondAutocomplete(c *gin.Context, items []Suggestion, p acParams) {
	util.Success(c, util.Response{
		"data":          items,
		"search_query":  p.Search,
		"result_count":  len(items),
		"limit_applied": p.Limit,
	}, "")
}

func likePattern(s string) string {
	return "%" + s + "%"
}

// idReq is the body of update-free operations that address one record.
type idReq struct {
	ID uint `json:"id" binding:"required"`
}
