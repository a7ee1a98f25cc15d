package report

import "github.com/CodeStranger-Fred/valueiteration/mdp"

type multi []mdp.Reporter

// Multi fans every report out to each non-nil reporter in order.
func Multi(reporters ...mdp.Reporter) mdp.Reporter {
	m := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multi) Report(p mdp.Progress) {
	for _, r := range m {
		r.Report(p)
	}
}
