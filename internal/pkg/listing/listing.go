package listing

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"rokto-connect/internal/core/domain"
)

// DonorFilter collects the exact-match dimensions and the free-text search
// clause for donor listings. Empty fields are simply not applied.
type DonorFilter struct {
	Status     string
	Available  *bool
	BloodGroup string
	Division   string
	District   string
	Upazila    string
	Union      string
	Village    string
	Search     string
}

// donorSearchColumns are OR-ed together for the free-text clause
var donorSearchColumns = []string{
	"LOWER(name)",
	"CAST(age AS CHAR)",
	"LOWER(district)",
	"LOWER(upazila)",
	"LOWER(`union`)",
	"LOWER(village)",
	"LOWER(gender)",
	"contact_number",
}

// Scope returns a GORM scope applying every supplied dimension AND the
// case-insensitive substring search across the donor search columns.
func (f *DonorFilter) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.Available != nil {
			db = db.Where("available = ?", *f.Available)
		}
		if f.BloodGroup != "" {
			db = db.Where("blood_group = ?", f.BloodGroup)
		}
		if f.Division != "" {
			db = db.Where("division = ?", f.Division)
		}
		if f.District != "" {
			db = db.Where("district = ?", f.District)
		}
		if f.Upazila != "" {
			db = db.Where("upazila = ?", f.Upazila)
		}
		if f.Union != "" {
			db = db.Where("`union` = ?", f.Union)
		}
		if f.Village != "" {
			db = db.Where("village = ?", f.Village)
		}

		if q := strings.TrimSpace(f.Search); q != "" {
			like := "%" + strings.ToLower(q) + "%"
			clauses := make([]string, len(donorSearchColumns))
			args := make([]interface{}, len(donorSearchColumns))
			for i, col := range donorSearchColumns {
				clauses[i] = col + " LIKE ?"
				args[i] = like
			}
			db = db.Where(strings.Join(clauses, " OR "), args...)
		}

		return db
	}
}

// Sort directions
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// donorSortColumns is the enumerated set of caller-selectable sort fields.
// Caller strings never reach the storage sort specification directly.
var donorSortColumns = map[string]string{
	"name":          "name",
	"age":           "age",
	"donationCount": "donation_count",
	"acceptedTime":  "accepted_time",
	"createdAt":     "created_at",
}

// DefaultDonorSort orders by most recently registered first
const DefaultDonorSort = "createdAt"

// Sort is a validated sort specification
type Sort struct {
	column    string
	direction string
}

// NewDonorSort validates a caller-supplied sort field and direction against
// the donor whitelist. Empty field falls back to DefaultDonorSort; empty
// direction falls back to descending. Unrecognized values are rejected.
func NewDonorSort(field, direction string) (*Sort, error) {
	if field == "" {
		field = DefaultDonorSort
	}
	column, ok := donorSortColumns[field]
	if !ok {
		return nil, fmt.Errorf("%w: unknown sort field %q", domain.ErrInvalidArgument, field)
	}

	switch direction {
	case "":
		direction = DirectionDesc
	case DirectionAsc, DirectionDesc:
	default:
		return nil, fmt.Errorf("%w: sort direction must be %q or %q", domain.ErrInvalidArgument, DirectionAsc, DirectionDesc)
	}

	return &Sort{column: column, direction: direction}, nil
}

// OrderClause returns the ORDER BY expression for the storage layer
func (s *Sort) OrderClause() string {
	if s.direction == DirectionAsc {
		return s.column + " ASC"
	}
	return s.column + " DESC"
}
