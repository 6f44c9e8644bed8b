// Package patch resolves partial-update request fields against current values.
package patch

import "strings"

// Coalesce returns *ptr when the field was sent, otherwise current.
func Coalesce[T any](ptr *T, current T) T {
	if ptr != nil {
		return *ptr
	}
	return current
}

// CoalescePtr is Coalesce for fields that are themselves optional.
func CoalescePtr[T any](ptr, current *T) *T {
	if ptr != nil {
		return ptr
	}
	return current
}

// ClearableString treats an explicitly sent blank string as a request to
// clear the field, and an omitted one as "keep current".
func ClearableString(ptr, current *string) *string {
	if ptr == nil {
		return current
	}
	if strings.TrimSpace(*ptr) == "" {
		return nil
	}
	return ptr
}
