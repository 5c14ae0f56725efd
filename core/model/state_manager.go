// Package model provides fitted-state management shared by all estimators.
package model

import (
	"sync"

	"github.com/YuminosukeSato/lingrad/pkg/errors"
)

// StateManager tracks whether a model has been fitted, together with the
// dimensions seen during fitting, in a thread-safe manner. Estimators hold it
// by composition rather than embedding.
type StateManager struct {
	fitted bool
	mu     sync.RWMutex

	nFeatures int
	nSamples  int
	nTargets  int
}

// NewStateManager creates a new StateManager instance.
func NewStateManager() *StateManager {
	return &StateManager{}
}

// IsFitted returns whether the model has been fitted.
func (s *StateManager) IsFitted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fitted
}

// SetFitted marks the model as fitted.
func (s *StateManager) SetFitted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = true
}

// Reset clears the fitted state and recorded dimensions.
func (s *StateManager) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fitted = false
	s.nFeatures = 0
	s.nSamples = 0
	s.nTargets = 0
}

// SetDimensions records the data shape seen during fitting.
func (s *StateManager) SetDimensions(nSamples, nFeatures, nTargets int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nSamples = nSamples
	s.nFeatures = nFeatures
	s.nTargets = nTargets
}

// Dimensions returns the data shape seen during fitting.
func (s *StateManager) Dimensions() (nSamples, nFeatures, nTargets int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nSamples, s.nFeatures, s.nTargets
}

// RequireFitted returns a NotFittedError naming the model and method if the
// model has not been fitted yet.
func (s *StateManager) RequireFitted(modelName, method string) error {
	if !s.IsFitted() {
		return errors.NewNotFittedError(modelName, method)
	}
	return nil
}
