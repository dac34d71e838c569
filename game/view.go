package game

import "strings"

// View is implemented by state that has both a ground truth (private) form
// and a redacted (public) form.
type View[T any] interface {
	// EqualPrivate reports whether two values are equal in ground truth
	EqualPrivate(other T) bool
	// EqualPublic reports whether two values look the same to outsiders
	EqualPublic(other T) bool
	RenderPrivate() string
	RenderPublic() string
}

// Composite values derive their view element-wise with the helpers below.

func EqualPrivateAll[T View[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].EqualPrivate(b[i]) {
			return false
		}
	}
	return true
}

func EqualPublicAll[T View[T]](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].EqualPublic(b[i]) {
			return false
		}
	}
	return true
}

func RenderPrivateAll[T View[T]](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.RenderPrivate()
	}
	return strings.Join(parts, sep)
}

func RenderPublicAll[T View[T]](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.RenderPublic()
	}
	return strings.Join(parts, sep)
}
