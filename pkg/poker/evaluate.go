package poker

import (
	"sort"

	"holdempoker-server/pkg/deck"
)

// Evaluate returns the best five-card rank the provided cards can make.
// All five-card subsets are scored (C(7,5)=21 for a full hold'em hand) and
// the maximum under Compare is kept. Returns nil for fewer than five cards.
func Evaluate(cards []*deck.Card) *HandRank {
	if len(cards) < 5 {
		return nil
	}

	var best *HandRank
	var five [5]*deck.Card

	n := len(cards)
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						five[0] = cards[a]
						five[1] = cards[b]
						five[2] = cards[c]
						five[3] = cards[d]
						five[4] = cards[e]

						rank := EvaluateFive(five)
						if rank.Compare(best) > 0 {
							best = rank
						}
					}
				}
			}
		}
	}

	return best
}

// rankGroup is a set of same-rank cards within a five-card hand
type rankGroup struct {
	rank  int
	count int
}

// EvaluateFive scores exactly five cards
func EvaluateFive(five [5]*deck.Card) *HandRank {
	values := make([]int, 5)
	for i, c := range five {
		values[i] = c.Rank
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))

	isFlush := true
	for _, c := range five[1:] {
		if c.Suit != five[0].Suit {
			isFlush = false
			break
		}
	}

	groups := groupByRank(values)
	straightHigh := straightHighCard(values)

	if isFlush && straightHigh > 0 {
		if straightHigh == deck.Ace {
			return &HandRank{Hand: RoyalFlush, TieBreaks: []int{straightHigh}}
		}

		return &HandRank{Hand: StraightFlush, TieBreaks: []int{straightHigh}}
	}

	if groups[0].count == 4 {
		return &HandRank{Hand: FourOfAKind, TieBreaks: []int{groups[0].rank, groups[1].rank}}
	}

	if groups[0].count == 3 && groups[1].count == 2 {
		return &HandRank{Hand: FullHouse, TieBreaks: []int{groups[0].rank, groups[1].rank}}
	}

	if isFlush {
		// a flush compares on all five ranks, not just the high card
		return &HandRank{Hand: Flush, TieBreaks: values}
	}

	if straightHigh > 0 {
		return &HandRank{Hand: Straight, TieBreaks: []int{straightHigh}}
	}

	if groups[0].count == 3 {
		return &HandRank{Hand: ThreeOfAKind, TieBreaks: []int{groups[0].rank, groups[1].rank, groups[2].rank}}
	}

	if groups[0].count == 2 && groups[1].count == 2 {
		return &HandRank{Hand: TwoPair, TieBreaks: []int{groups[0].rank, groups[1].rank, groups[2].rank}}
	}

	if groups[0].count == 2 {
		return &HandRank{Hand: OnePair, TieBreaks: []int{groups[0].rank, groups[1].rank, groups[2].rank, groups[3].rank}}
	}

	return &HandRank{Hand: HighCard, TieBreaks: values}
}

// groupByRank collapses the sorted rank values into groups ordered by
// count descending, then rank descending. The grouped ("primary") rank of
// quads, boats, trips, and pairs therefore always compares first.
func groupByRank(sortedDesc []int) []rankGroup {
	groups := make([]rankGroup, 0, 5)
	for _, v := range sortedDesc {
		if n := len(groups); n > 0 && groups[n-1].rank == v {
			groups[n-1].count++
			continue
		}

		groups = append(groups, rankGroup{rank: v, count: 1})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	return groups
}

// straightHighCard returns the high card of a five-card straight, or 0.
// The wheel (A-2-3-4-5) counts as a 5-high straight, the lowest one.
func straightHighCard(sortedDesc []int) int {
	for i := 1; i < len(sortedDesc); i++ {
		if sortedDesc[i-1] == sortedDesc[i] {
			return 0
		}
	}

	if sortedDesc[0]-sortedDesc[4] == 4 {
		return sortedDesc[0]
	}

	if sortedDesc[0] == deck.Ace &&
		sortedDesc[1] == 5 && sortedDesc[4] == 2 {
		return 5
	}

	return 0
}
