package unit

import "fmt"

// Group is a fixed, ordered collection of cases. Groups reference cases
// rather than own them, so a case may appear in more than one group.
type Group struct {
	name  string
	loc   Location
	cases []*Case
}

// NewGroup builds a group over the given cases. The child list is fixed at
// construction; it fails when the list exceeds MaxGroupCases or contains a
// nil case.
func NewGroup(name string, cases ...*Case) (*Group, error) {
	if len(cases) > MaxGroupCases {
		return nil, fmt.Errorf("group %q holds %d cases, capacity is %d", name, len(cases), MaxGroupCases)
	}
	for i, c := range cases {
		if c == nil {
			return nil, fmt.Errorf("group %q: case at index %d is nil", name, i)
		}
	}
	return &Group{
		name:  name,
		loc:   caller(0),
		cases: append([]*Case(nil), cases...),
	}, nil
}

// Name returns the group name shown in reports.
func (g *Group) Name() string { return g.name }

// Location returns the declaration site.
func (g *Group) Location() Location { return g.loc }

// Cases returns a copy of the child list in declaration order.
func (g *Group) Cases() []*Case {
	return append([]*Case(nil), g.cases...)
}

func (*Group) entity() {}
