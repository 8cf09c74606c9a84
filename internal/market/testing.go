package market

import "context"

// StaticSource is a test helper serving fixed prices, or a fixed error when
// Err is set.
type StaticSource struct {
	Close float64
	Open  float64
	Err   error
}

// ClosePrice returns the configured closing price.
func (s StaticSource) ClosePrice(_ context.Context, _ string) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Close, nil
}

// OpenPrice returns the configured opening price.
func (s StaticSource) OpenPrice(_ context.Context, _ string) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Open, nil
}
