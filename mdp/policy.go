package mdp

// Policy gives the action distribution for a state. Its probabilities must
// sum to one.
type Policy interface {
	Name() string
	Act(space ActionSpace, s State) DiscretePdf[Action]
}

// PolicyRandom picks every available action with equal probability.
type PolicyRandom struct{}

func (p PolicyRandom) Name() string {
	return "random"
}

func (p PolicyRandom) Act(space ActionSpace, s State) DiscretePdf[Action] {
	actions := space.Actions()
	pdf := DiscretePdf[Action]{Map: make(map[Action]Probability, len(actions))}
	for _, a := range actions {
		pdf.Map[a] = Probability(1.0 / float64(len(actions)))
	}
	return pdf
}
