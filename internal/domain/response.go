package domain

// Response is the envelope returned by lookups. Data is nil unless Success is
// true; Error is set otherwise.
type Response[T any] struct {
	Success bool
	Data    *T
	Error   string
}
