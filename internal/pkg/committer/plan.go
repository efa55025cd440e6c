package committer

import "cloud.google.com/go/spanner"

// Plan collects the mutations of one logical write. Nil mutations are
// skipped so builders can return nil for "nothing to do".
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan(ms ...*spanner.Mutation) *Plan {
	p := &Plan{mutations: make([]*spanner.Mutation, 0, len(ms))}
	p.Add(ms...)
	return p
}

func (p *Plan) Add(ms ...*spanner.Mutation) {
	for _, m := range ms {
		if m != nil {
			p.mutations = append(p.mutations, m)
		}
	}
}

func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.mutations) == 0
}

func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
