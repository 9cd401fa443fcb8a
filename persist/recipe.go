package persist

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/on-the-ground/recurs_ive_go/fix"
)

// Shape names the combinator construction used to tie a callable's knot.
type Shape string

const (
	// ShapeSelfApply rebuilds with fix.Fix (recursive function type).
	ShapeSelfApply Shape = "self-apply"

	// ShapeKnot rebuilds with fix.FixKnot (one-field struct encoding).
	ShapeKnot Shape = "knot"
)

// Recipe is the serializer-agnostic representation of a recursive
// callable: enough to re-derive the callable in any process holding
// the same template registry, and nothing more.
type Recipe struct {
	ID       string
	Template string
	Shape    Shape
	Written  time.Time
}

var (
	ErrUnknownTemplate = fmt.Errorf("template not registered")
	ErrUnknownShape    = fmt.Errorf("unknown combinator shape")
)

// Registry maps template names to templates. Both ends of a
// persistence exchange must register the same templates under the
// same names; that shared registration is how the template's code
// crosses the process boundary.
type Registry[A, R any] struct {
	templates map[string]fix.Base[A, R]
}

// NewRegistry returns an empty registry.
func NewRegistry[A, R any]() *Registry[A, R] {
	return &Registry[A, R]{templates: make(map[string]fix.Base[A, R])}
}

// Register installs or replaces the template under name.
// Function literals register the same way as named functions.
func (reg *Registry[A, R]) Register(name string, base fix.Base[A, R]) {
	reg.templates[name] = base
}

// NewRecipe captures a callable built from the named template with the
// given shape. Fails if the template is not registered — a recipe that
// cannot be rebuilt locally should never be written out.
func (reg *Registry[A, R]) NewRecipe(template string, shape Shape) (Recipe, error) {
	if _, ok := reg.templates[template]; !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, template)
	}
	switch shape {
	case ShapeSelfApply, ShapeKnot:
	default:
		return Recipe{}, fmt.Errorf("%w: %q", ErrUnknownShape, shape)
	}
	return Recipe{
		ID:       uuid.New().String(),
		Template: template,
		Shape:    shape,
		Written:  time.Now(),
	}, nil
}

// Rebuild reconstitutes the callable a recipe describes by applying
// the recorded combinator shape to the registered template.
func (reg *Registry[A, R]) Rebuild(r Recipe) (fix.Func[A, R], error) {
	base, ok := reg.templates[r.Template]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, r.Template)
	}
	switch r.Shape {
	case ShapeSelfApply:
		return fix.Fix(base), nil
	case ShapeKnot:
		return fix.FixKnot(base), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, r.Shape)
	}
}
