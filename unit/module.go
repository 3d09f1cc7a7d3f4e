package unit

import "fmt"

// Module is a fixed, ordered collection of groups, usually mirroring one
// compilation unit of the code under test.
type Module struct {
	name   string
	loc    Location
	groups []*Group
}

// NewModule builds a module over the given groups. The child list is fixed
// at construction; it fails when the list exceeds MaxModuleGroups or
// contains a nil group.
func NewModule(name string, groups ...*Group) (*Module, error) {
	if len(groups) > MaxModuleGroups {
		return nil, fmt.Errorf("module %q holds %d groups, capacity is %d", name, len(groups), MaxModuleGroups)
	}
	for i, g := range groups {
		if g == nil {
			return nil, fmt.Errorf("module %q: group at index %d is nil", name, i)
		}
	}
	return &Module{
		name:   name,
		loc:    caller(0),
		groups: append([]*Group(nil), groups...),
	}, nil
}

// Name returns the module name shown in reports.
func (m *Module) Name() string { return m.name }

// Location returns the declaration site.
func (m *Module) Location() Location { return m.loc }

// Groups returns a copy of the child list in declaration order.
func (m *Module) Groups() []*Group {
	return append([]*Group(nil), m.groups...)
}

func (*Module) entity() {}
