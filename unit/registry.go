package unit

import "fmt"

// Entity is a top-level registry entry: a *Case, *Group or *Module. The
// interface is sealed; renderers branch on the dynamic type for structure.
type Entity interface {
	Name() string
	Location() Location
	Stats() Stats
	entity()
}

// Registry records the top-level entities of one run, in execution order.
// It is append-only and bounded by MaxRootItems; the aggregate counters and
// the renderers read from it once the run is over.
type Registry struct {
	project string
	items   []Entity
}

// NewRegistry returns an empty registry for the named project.
func NewRegistry(project string) *Registry {
	return &Registry{project: project}
}

// Project returns the project name shown in report headers.
func (r *Registry) Project() string { return r.project }

// Append records e for reporting. It fails when e is nil or the registry is
// full; both are setup defects and the run must not continue past them.
func (r *Registry) Append(e Entity) error {
	if e == nil {
		return fmt.Errorf("registry: nil entity")
	}
	if len(r.items) >= MaxRootItems {
		return fmt.Errorf("registry holds %d items, capacity is %d", len(r.items), MaxRootItems)
	}
	r.items = append(r.items, e)
	return nil
}

// Items returns a copy of the recorded entities in append order.
func (r *Registry) Items() []Entity {
	return append([]Entity(nil), r.items...)
}

// WalkCases visits every case under e in declaration order.
func WalkCases(e Entity, fn func(*Case)) {
	switch v := e.(type) {
	case *Case:
		fn(v)
	case *Group:
		for _, c := range v.cases {
			fn(c)
		}
	case *Module:
		for _, g := range v.groups {
			for _, c := range g.cases {
				fn(c)
			}
		}
	}
}

// WalkCases visits every recorded case in registry traversal order: entities
// in append order, cases within each entity in declaration order.
func (r *Registry) WalkCases(fn func(*Case)) {
	for _, e := range r.items {
		WalkCases(e, fn)
	}
}
