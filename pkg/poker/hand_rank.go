package poker

import "fmt"

// HandRank is the outcome of scoring a five-card hand.
// TieBreaks is ordered so that, after Hand, an element-wise comparison fully
// resolves ties: grouped ranks first, then kickers high to low.
type HandRank struct {
	Hand      Hand  `json:"hand"`
	TieBreaks []int `json:"tieBreaks"`
}

// Compare returns >0 if r beats o, <0 if o beats r, and 0 for a true tie.
// A true tie means the pot is split, not that anything went wrong.
func (r *HandRank) Compare(o *HandRank) int {
	if r == nil && o == nil {
		return 0
	}
	if r == nil {
		return -1
	}
	if o == nil {
		return 1
	}

	if r.Hand != o.Hand {
		return int(r.Hand) - int(o.Hand)
	}

	n := len(r.TieBreaks)
	if len(o.TieBreaks) > n {
		n = len(o.TieBreaks)
	}

	for i := 0; i < n; i++ {
		var a, b int
		if i < len(r.TieBreaks) {
			a = r.TieBreaks[i]
		}
		if i < len(o.TieBreaks) {
			b = o.TieBreaks[i]
		}

		if a != b {
			return a - b
		}
	}

	return 0
}

func (r *HandRank) String() string {
	return fmt.Sprintf("%s %v", r.Hand, r.TieBreaks)
}
