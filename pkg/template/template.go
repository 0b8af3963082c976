// Package template defines pre-generation structural modifiers applied
// to a coordinator before a Generator runs.
package template

import "github.com/latticeforge/mazelib/pkg/coordinator"

// Template mutates a coordinator's cell space before generation.
type Template interface {
	Apply(coord coordinator.Coordinator)
}
