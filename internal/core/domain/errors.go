package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrValidation indicates malformed or invalid caller input.
	ErrValidation = errors.New("validation failed")

	// ErrUnsupportedType indicates an unknown content type tag.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDomainSearch indicates a single content type's backend call failed.
	// It never fails a unified search; the type degrades to empty results.
	ErrDomainSearch = errors.New("domain search failed")

	// ErrCache indicates a result cache read or write failed.
	// Cache failures are treated as misses.
	ErrCache = errors.New("cache failure")

	// ErrAggregation indicates an internal fault while combining results.
	ErrAggregation = errors.New("aggregation failed")

	// ErrCacheUnavailable indicates no cache backend is configured.
	ErrCacheUnavailable = errors.New("cache unavailable")
)

// ValidationError reports an invalid caller option.
// It matches ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Unwrap returns the underlying cause, if any.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// DomainSearchError reports the failure of one content type's search.
type DomainSearchError struct {
	ContentType ContentType
	Err         error
}

func (e *DomainSearchError) Error() string {
	return fmt.Sprintf("search %s: %v", e.ContentType, e.Err)
}

// Is reports whether target is ErrDomainSearch.
func (e *DomainSearchError) Is(target error) bool {
	return target == ErrDomainSearch
}

// Unwrap returns the underlying cause.
func (e *DomainSearchError) Unwrap() error {
	return e.Err
}

// CacheError reports a failed cache operation.
type CacheError struct {
	Op  string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s: %v", e.Op, e.Err)
}

// Is reports whether target is ErrCache.
func (e *CacheError) Is(target error) bool {
	return target == ErrCache
}

// Unwrap returns the underlying cause.
func (e *CacheError) Unwrap() error {
	return e.Err
}

// AggregationError reports an unexpected fault while combining results.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("unified search failed: %v", e.Err)
}

// Is reports whether target is ErrAggregation.
func (e *AggregationError) Is(target error) bool {
	return target == ErrAggregation
}

// Unwrap returns the underlying cause.
func (e *AggregationError) Unwrap() error {
	return e.Err
}
