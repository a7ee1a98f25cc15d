package mdp

import (
	"fmt"
	"math"
)

type Probability float64

type DiscretePdf[Category comparable] struct {
	Map map[Category]Probability
}

func (p DiscretePdf[Category]) P(c Category) Probability {
	return p.Map[c]
}

// Check panics unless the probabilities sum to one.
func (p DiscretePdf[Category]) Check() {
	sum := 0.0
	for _, prob := range p.Map {
		if prob < 0 {
			panic(fmt.Sprintf("negative probability %v", prob))
		}
		sum += float64(prob)
	}
	if math.Abs(sum-1) > 1e-9 {
		panic(fmt.Sprintf("probabilities sum to %v, not 1", sum))
	}
}
