package content

import (
	"sync/atomic"

	"github.com/openwave/mobcore/logger"
	"github.com/openwave/mobcore/registry"
)

// Service owns the current registry generation. Reload builds a fresh
// registry and swaps it in atomically; readers holding the previous
// snapshot see a consistent generation until they re-read.
type Service struct {
	manager *Manager

	current    atomic.Pointer[registry.Registry]
	generation atomic.Int64
}

// NewService creates a content service over the given roots. The
// registry is empty until the first Reload.
func NewService(assetsRoot, extendedRoot string) *Service {
	s := &Service{
		manager: NewManager(assetsRoot, extendedRoot),
	}
	s.current.Store(registry.Build(nil, nil, nil))
	return s
}

// Reload rediscovers all documents and rebuilds the registry. On
// failure the previous registry stays current.
func (s *Service) Reload() error {
	docs, err := s.manager.LoadDocuments()
	if err != nil {
		logger.Log.Errorf("content reload failed: %v, keeping current registry", err)
		return err
	}

	reg := registry.Build(docs.Base, docs.Extended, docs.Patches)
	s.current.Store(reg)
	gen := s.generation.Add(1)
	logger.Log.Infof("content reload complete: generation %d, %d mob(s)", gen, reg.Len())
	return nil
}

// Registry returns the current registry snapshot. Callers should hold
// one snapshot per frame or edit pass rather than re-reading.
func (s *Service) Registry() *registry.Registry {
	return s.current.Load()
}

// Generation returns the reload counter. It changes exactly when the
// registry snapshot changes.
func (s *Service) Generation() int64 {
	return s.generation.Load()
}
