package api

import (
	"net/url"
	"strconv"
	"time"

	"github.com/Ramizraj19/B2B-nexus-sub001/internal/entity"

	"github.com/shopspring/decimal"
)

// Zero-valued fields stay out of the encoded query, so the zero params
// value means "no filters".
type (
	OrderListParams struct {
		Page   int
		Limit  int
		Status entity.OrderStatus
	}

	StatsParams struct {
		StartDate time.Time
		EndDate   time.Time
	}

	UserListParams struct {
		Page   int
		Limit  int
		Role   entity.Role
		Search string
	}

	ProductListParams struct {
		Skip     int
		Limit    int
		Category string
		Search   string
		MinPrice *decimal.Decimal
		MaxPrice *decimal.Decimal
	}
)

func (p OrderListParams) Values() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Status != "" {
		values.Set("status", string(p.Status))
	}
	return values
}

func (p StatsParams) Values() url.Values {
	values := url.Values{}
	if !p.StartDate.IsZero() {
		values.Set("start_date", p.StartDate.Format(time.RFC3339))
	}
	if !p.EndDate.IsZero() {
		values.Set("end_date", p.EndDate.Format(time.RFC3339))
	}
	return values
}

func (p UserListParams) Values() url.Values {
	values := url.Values{}
	if p.Page > 0 {
		values.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Role != "" {
		values.Set("role", string(p.Role))
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	return values
}

func (p ProductListParams) Values() url.Values {
	values := url.Values{}
	if p.Skip > 0 {
		values.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		values.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Category != "" {
		values.Set("category", p.Category)
	}
	if p.Search != "" {
		values.Set("search", p.Search)
	}
	if p.MinPrice != nil {
		values.Set("min_price", p.MinPrice.String())
	}
	if p.MaxPrice != nil {
		values.Set("max_price", p.MaxPrice.String())
	}
	return values
}
