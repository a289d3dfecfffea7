package query

import (
	"errors"
	"fmt"
	"time"

	"github.com/fintechmx/validations/pkg/enums"
	"github.com/fintechmx/validations/pkg/resource"
	"github.com/fintechmx/validations/pkg/sanitize"
)

// MaxPageSize caps how many items a single page may request.
const MaxPageSize = 100

var (
	// ErrPageSizeRange is returned when the page size is outside 1..MaxPageSize.
	ErrPageSizeRange = errors.New("page size out of range")

	// ErrNegativeLimit is returned when the limit is negative.
	ErrNegativeLimit = errors.New("limit must be positive")
)

// Params is the common filter set for listing endpoints. The zero value of a
// field means "not set" and is omitted from ToMap.
type Params struct {
	Count              bool
	PageSize           int
	Limit              int
	UserID             string
	PlatformID         string
	RelatedTransaction string
	Status             enums.TransactionStatus
	CreatedBefore      time.Time
	CreatedAfter       time.Time
}

// Validate checks paging bounds, the status enum and the related-transaction
// URI. A zero PageSize is allowed and treated as MaxPageSize by ToMap.
func (p Params) Validate() error {
	if p.PageSize < 0 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: %d", ErrPageSizeRange, p.PageSize)
	}
	if p.Limit < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLimit, p.Limit)
	}
	if p.Status != "" && !p.Status.Valid() {
		return fmt.Errorf("invalid status %q", p.Status)
	}
	if p.RelatedTransaction != "" {
		if _, err := resource.Parse(p.RelatedTransaction); err != nil {
			return err
		}
	}
	return nil
}

// ToMap renders the set fields as a sanitized map keyed by wire names. Count
// becomes the literal 1 the listing API expects.
func (p Params) ToMap() (map[string]any, error) {
	out := map[string]any{
		"page_size": p.PageSize,
	}
	if p.PageSize == 0 {
		out["page_size"] = MaxPageSize
	}
	if p.Count {
		out["count"] = 1
	}
	if p.Limit > 0 {
		out["limit"] = p.Limit
	}
	if p.UserID != "" {
		out["user_id"] = p.UserID
	}
	if p.PlatformID != "" {
		out["platform_id"] = p.PlatformID
	}
	if p.RelatedTransaction != "" {
		out["related_transaction"] = p.RelatedTransaction
	}
	if p.Status != "" {
		out["status"] = p.Status
	}
	if !p.CreatedBefore.IsZero() {
		out["created_before"] = p.CreatedBefore
	}
	if !p.CreatedAfter.IsZero() {
		out["created_after"] = p.CreatedAfter
	}
	return sanitize.Map(out)
}
