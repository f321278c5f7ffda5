package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"shop/internal/pkg/errs"
)

const (
	humanIDDateLayout = "20060102"

	minSequence = 1
	maxSequence = 999999
)

// ErrHumanIDIsNotConstructed indicates that a HumanID was not created through
// one of the constructor functions.
var ErrHumanIDIsNotConstructed = errs.NewValueIsRequiredError(
	"HumanID must be created via NewHumanID, FirstHumanIDOfDay, or ParseHumanID",
)

// HumanID is the human-readable sequential order identifier, formatted as
// "<YYYYMMDD>-<NNNNNN>". The date prefix is the server-local calendar day of
// creation; the six-digit suffix starts at 000001 each day and strictly
// increases within the day. Once assigned to an order it never changes.
//
// HumanID is a value object; it carries no allocation logic. Allocation,
// meaning finding the day's next free sequence under concurrency, is the order
// repository's job.
type HumanID struct {
	// day is the calendar day the identifier belongs to, normalized to midnight
	day time.Time

	// sequence is the 1-based position within the day
	sequence int

	// isConstructed ensures the identifier was created via a constructor
	isConstructed bool
}

// NewHumanID creates an identifier for the given day and sequence number.
// The time component of day is discarded; sequence must be in [1, 999999].
func NewHumanID(day time.Time, sequence int) (HumanID, error) {
	if day.IsZero() {
		return HumanID{}, errs.NewValueIsRequiredError("day")
	}
	if sequence < minSequence || sequence > maxSequence {
		return HumanID{}, errs.NewValueIsOutOfRangeError("sequence", sequence, minSequence, maxSequence)
	}

	return HumanID{
		day:           normalizeDay(day),
		sequence:      sequence,
		isConstructed: true,
	}, nil
}

// FirstHumanIDOfDay returns the first identifier of the given day, suffix 000001.
func FirstHumanIDOfDay(day time.Time) (HumanID, error) {
	return NewHumanID(day, minSequence)
}

// ParseHumanID parses the canonical "<YYYYMMDD>-<NNNNNN>" form.
// Used when reconstructing orders from persistence and when resolving
// identifiers arriving over HTTP.
func ParseHumanID(s string) (HumanID, error) {
	datePart, seqPart, found := strings.Cut(s, "-")
	if !found || len(datePart) != len(humanIDDateLayout) || len(seqPart) != 6 {
		return HumanID{}, errs.NewValueIsInvalidErrorWithCause(
			"humanId",
			fmt.Errorf("%q does not match YYYYMMDD-NNNNNN", s),
		)
	}

	day, err := time.ParseInLocation(humanIDDateLayout, datePart, time.Local)
	if err != nil {
		return HumanID{}, errs.NewValueIsInvalidErrorWithCause("humanId", err)
	}

	sequence, err := strconv.Atoi(seqPart)
	if err != nil {
		return HumanID{}, errs.NewValueIsInvalidErrorWithCause("humanId", err)
	}

	return NewHumanID(day, sequence)
}

// Day returns the calendar day the identifier belongs to, at midnight
// server-local time.
func (h HumanID) Day() time.Time {
	return h.day
}

// Sequence returns the 1-based position within the day.
func (h HumanID) Sequence() int {
	return h.sequence
}

// DayPrefix returns the "YYYYMMDD" date part.
func (h HumanID) DayPrefix() string {
	return h.day.Format(humanIDDateLayout)
}

// Next returns the identifier that follows this one on the same day.
// Returns an out-of-range error when the day's sequence space is exhausted.
func (h HumanID) Next() (HumanID, error) {
	return NewHumanID(h.day, h.sequence+1)
}

// String renders the canonical "<YYYYMMDD>-<NNNNNN>" form.
func (h HumanID) String() string {
	return fmt.Sprintf("%s-%06d", h.DayPrefix(), h.sequence)
}

// IsEqual compares two identifiers by day and sequence.
func (h HumanID) IsEqual(other HumanID) bool {
	return h.day.Equal(other.day) && h.sequence == other.sequence
}

// Validate checks that the HumanID was properly constructed.
func (h HumanID) Validate() error {
	if !h.isConstructed {
		return ErrHumanIDIsNotConstructed
	}
	return nil
}

func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
