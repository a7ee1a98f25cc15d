package mdp

// Progress is what the engine hands to its reporter at each report interval.
// Grid is plain text; styling is the receiver's business.
type Progress struct {
	Sweep int
	Delta float64
	Grid  string
}

type Reporter interface {
	Report(Progress)
}

// ReporterFunc adapts a plain function to a Reporter.
type ReporterFunc func(Progress)

func (f ReporterFunc) Report(p Progress) {
	f(p)
}
