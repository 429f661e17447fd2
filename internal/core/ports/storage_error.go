package ports

import (
	"errors"
	"fmt"
	"strings"
)

// StorageError wraps a store failure for records of type E.
//
//	var notFound *ports.StorageError[delivery.Recipient]
//	if errors.As(err, &notFound) { ... }
type StorageError[E any] struct {
	Op    string
	Cause error
}

func NewStorageError[E any](op string, cause error) *StorageError[E] {
	return &StorageError[E]{Op: op, Cause: cause}
}

// Kind names the entity type, e.g. "Delivery".
func (e *StorageError[E]) Kind() string {
	var zero E
	name := fmt.Sprintf("%T", zero)
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (e *StorageError[E]) Error() string {
	return fmt.Sprintf("%s storage: %s failed: %v", e.Kind(), e.Op, e.Cause)
}

func (e *StorageError[E]) Unwrap() error {
	return e.Cause
}

// IsStorageError reports whether err wraps a *StorageError for records of type E.
func IsStorageError[E any](err error) bool {
	var se *StorageError[E]
	return errors.As(err, &se)
}
