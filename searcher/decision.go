package searcher

import "math"

func maxValue(s *Searcher, n node, w window) (float64, error) {
	best := math.Inf(-1)
	for _, action := range n.actions {
		v, err := s.childValue(n, action, w)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, v)
	}
	return best, nil
}

func minValue(s *Searcher, n node, w window) (float64, error) {
	worst := math.Inf(1)
	for _, action := range n.actions {
		v, err := s.childValue(n, action, w)
		if err != nil {
			return 0, err
		}
		worst = math.Min(worst, v)
	}
	return worst, nil
}

// maxPruned stops as soon as the ghosts above would never allow this node.
// Comparisons are strict so that ties are explored exactly like minimax.
func maxPruned(s *Searcher, n node, w window) (float64, error) {
	best := math.Inf(-1)
	for i, action := range n.actions {
		v, err := s.childValue(n, action, w)
		if err != nil {
			return 0, err
		}
		best = math.Max(best, v)
		if best > w.beta {
			if i < len(n.actions)-1 {
				s.metrics.AddPrune()
			}
			return best, nil
		}
		w.alpha = math.Max(w.alpha, best)
	}
	return best, nil
}

func minPruned(s *Searcher, n node, w window) (float64, error) {
	worst := math.Inf(1)
	for i, action := range n.actions {
		v, err := s.childValue(n, action, w)
		if err != nil {
			return 0, err
		}
		worst = math.Min(worst, v)
		if worst < w.alpha {
			if i < len(n.actions)-1 {
				s.metrics.AddPrune()
			}
			return worst, nil
		}
		w.beta = math.Min(w.beta, worst)
	}
	return worst, nil
}
