package pagination

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"rokto-connect/internal/core/domain"
)

// Params represents pagination parameters. Page is zero-based; Offset is
// always Page * Limit.
type Params struct {
	Page   int `json:"page"`
	Limit  int `json:"limit"`
	Offset int `json:"-"`
}

// Meta represents pagination metadata
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// DefaultLimit is the default number of items per page
const DefaultLimit = 20

// MaxLimit is the maximum number of items per page
const MaxLimit = 100

// New validates raw page/limit values. A non-positive or oversized limit and
// a negative page index are rejected rather than silently clamped.
func New(page, limit int) (*Params, error) {
	if page < 0 {
		return nil, fmt.Errorf("%w: page index must not be negative", domain.ErrInvalidArgument)
	}
	if limit < 1 {
		return nil, fmt.Errorf("%w: page size must be a positive integer", domain.ErrInvalidArgument)
	}
	if limit > MaxLimit {
		return nil, fmt.Errorf("%w: page size must not exceed %d", domain.ErrInvalidArgument, MaxLimit)
	}

	return &Params{
		Page:   page,
		Limit:  limit,
		Offset: page * limit,
	}, nil
}

// GetParams extracts pagination parameters from the request query
func GetParams(c *fiber.Ctx) (*Params, error) {
	page, err := strconv.Atoi(c.Query("page", "0"))
	if err != nil {
		return nil, fmt.Errorf("%w: page must be an integer", domain.ErrInvalidArgument)
	}

	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultLimit)))
	if err != nil {
		return nil, fmt.Errorf("%w: limit must be an integer", domain.ErrInvalidArgument)
	}

	return New(page, limit)
}

// GetMeta calculates pagination metadata with TotalPages = ceil(total/limit)
func GetMeta(params *Params, total int64) *Meta {
	totalPages := int(total) / params.Limit
	if int(total)%params.Limit > 0 {
		totalPages++
	}

	return &Meta{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    params.Page+1 < totalPages,
		HasPrev:    params.Page > 0,
	}
}

// Response represents a paginated response
type Response struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta"`
}

// NewResponse creates a new paginated response
func NewResponse(data interface{}, params *Params, total int64) *Response {
	return &Response{
		Data: data,
		Meta: GetMeta(params, total),
	}
}
