package testutil

import (
	"context"
	"sync"

	"logistics/internal/core/domain/model/kernel"
)

// StubGeocoder answers from a fixed table keyed by address text. Unknown
// addresses resolve to no match.
type StubGeocoder struct {
	mu      sync.Mutex
	Results map[string]kernel.GeoPoint
	Err     error
	Calls   []string
}

func NewStubGeocoder() *StubGeocoder {
	return &StubGeocoder{Results: make(map[string]kernel.GeoPoint), Calls: []string{}}
}

// Set registers the coordinates returned for address.
func (g *StubGeocoder) Set(address string, lat, lon float64) {
	p, err := kernel.NewGeoPoint(lat, lon)
	if err != nil {
		panic(err)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Results[address] = p
}

func (g *StubGeocoder) Resolve(_ context.Context, address string) (*kernel.GeoPoint, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Calls = append(g.Calls, address)
	if g.Err != nil {
		return nil, g.Err
	}
	p, ok := g.Results[address]
	if !ok {
		return nil, nil
	}
	return &p, nil
}
