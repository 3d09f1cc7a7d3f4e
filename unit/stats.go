package unit

// Stats holds the aggregate counters for one entity subtree. Total counts
// every case; Passed and Failed count decided outcomes, so cases that never
// evaluated an assertion appear only in Total.
type Stats struct {
	Total  int
	Passed int
	Failed int
}

// Invalid returns the number of cases with no recorded outcome.
func (s Stats) Invalid() int { return s.Total - s.Passed - s.Failed }

func (s *Stats) add(o Stats) {
	s.Total += o.Total
	s.Passed += o.Passed
	s.Failed += o.Failed
}

// Stats counts the case itself: one total, plus one passed or failed slot
// depending on the recorded outcome.
func (c *Case) Stats() Stats {
	s := Stats{Total: 1}
	switch c.result {
	case Pass:
		s.Passed = 1
	case Fail:
		s.Failed = 1
	}
	return s
}

// Stats sums the group's cases.
func (g *Group) Stats() Stats {
	var s Stats
	for _, c := range g.cases {
		s.add(c.Stats())
	}
	return s
}

// Stats sums the module's groups.
func (m *Module) Stats() Stats {
	var s Stats
	for _, g := range m.groups {
		s.add(g.Stats())
	}
	return s
}

// Stats sums the recorded entities.
func (r *Registry) Stats() Stats {
	var s Stats
	for _, e := range r.items {
		s.add(e.Stats())
	}
	return s
}

// Result collapses the counters into the run verdict: Pass when every
// recorded case passed, Fail otherwise. Cases that never evaluated an
// assertion count against the verdict.
func (r *Registry) Result() Result {
	if s := r.Stats(); s.Passed == s.Total {
		return Pass
	}
	return Fail
}
