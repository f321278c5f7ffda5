package product

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the availability state of a catalog item.
// Only Available items can be placed into an order; the other states exist so
// listings can show items that are temporarily or permanently not orderable.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available means the item can be ordered.
	Available

	// OutOfStock means the item is listed but temporarily not orderable.
	OutOfStock

	// Draft means the item is not yet published and never orderable.
	Draft
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Available:  "available",
		OutOfStock: "out_of_stock",
		Draft:      "draft",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:  "available",
		OutOfStock: "out_of_stock",
		Draft:      "draft",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are: Available, OutOfStock, Draft.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsOrderable reports whether items in this status may enter an order.
// Only Available qualifies.
func (s Status) IsOrderable() bool {
	return s == Available
}
