package searcher

// meanValue treats the agent to move as picking uniformly among its legal
// actions
func meanValue(s *Searcher, n node, w window) (float64, error) {
	total := 0.0
	for _, action := range n.actions {
		v, err := s.childValue(n, action, w)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total / float64(len(n.actions)), nil
}
