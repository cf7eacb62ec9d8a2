// Package ports holds the contracts between the UV and location use cases and
// their adapters. Mocks for every interface listed in .mockery.yaml live in
// internal/mocks.
//
//go:generate mockery --config ../../.mockery.yaml
package ports
