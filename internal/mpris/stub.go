//go:build !linux

package mpris

import "github.com/llehouerou/soundearth/internal/player"

// Service is unused on non-Linux platforms.
type Service any

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ Service, _ player.Mixer) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
