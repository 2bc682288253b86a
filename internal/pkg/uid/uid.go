// Package uid provides unique string identifier generators.
package uid

// StringID generates unique string identifiers.
type StringID interface {
	Generate() string
}
