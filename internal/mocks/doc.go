// Package mocks provides centralized mock implementations for testing.
//
// The store mocks are working in-memory implementations of the store
// interfaces. Each method can be overridden through a function field, so a
// test can inject a failure for one call while the rest of the store keeps
// its normal behavior:
//
//	acronyms := mocks.NewMockAcronymStore()
//	acronyms.SearchFn = func(ctx context.Context, term string) ([]*domain.Acronym, error) {
//	    return nil, errors.New("database unavailable")
//	}
package mocks
