// Package potmanager partitions a hand's chip commitments into a main pot
// and side pots, and splits each pot among its winners. Everything here is
// a pure function over a snapshot; callers hold whatever locks they need.
package potmanager

import "sort"

// Entry is one player's cumulative commitment for the hand.
// The amount must be the per-hand total across all streets, not the
// current street's bet, or multi-way all-in pots will come out wrong.
type Entry struct {
	ID     string
	Amount int
	Folded bool
}

// Pot is a single main or side pot. Eligible preserves the order the
// entries were provided in, which callers use as the deterministic order
// for odd-chip distribution.
type Pot struct {
	Amount   int
	Level    int
	Eligible []string
}

// Build partitions the entries' commitments into ordered pots.
// Levels are the distinct non-zero commitments of non-folded players,
// ascending. Each level's pot collects (level - previousLevel) from every
// commitment that reaches it; folded players contribute dead money up to
// their own commitment but are never eligible. Any folded chips above the
// top live level land in the final pot so that the pots always sum to the
// total committed.
func Build(entries []Entry) []Pot {
	levels := make([]int, 0, len(entries))
	seen := make(map[int]bool)
	for _, e := range entries {
		if e.Folded || e.Amount == 0 || seen[e.Amount] {
			continue
		}

		seen[e.Amount] = true
		levels = append(levels, e.Amount)
	}
	sort.Ints(levels)

	if len(levels) == 0 {
		return nil
	}

	pots := make([]Pot, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := Pot{Level: level}
		for _, e := range entries {
			amount := e.Amount
			if amount > level {
				amount = level
			}
			if amount > prev {
				pot.Amount += amount - prev
			}

			if !e.Folded && e.Amount >= level {
				pot.Eligible = append(pot.Eligible, e.ID)
			}
		}

		pots = append(pots, pot)
		prev = level
	}

	// folded commitments above the top live level
	top := levels[len(levels)-1]
	for _, e := range entries {
		if e.Folded && e.Amount > top {
			pots[len(pots)-1].Amount += e.Amount - top
		}
	}

	return pots
}

// Split divides amount into winner-count shares. The remainder is handed
// out one chip at a time from the front, so the shares always sum exactly
// to the amount and no share differs from another by more than one chip.
func Split(amount, winners int) []int {
	if winners <= 0 {
		return nil
	}

	shares := make([]int, winners)
	base := amount / winners
	remainder := amount % winners
	for i := range shares {
		shares[i] = base
		if i < remainder {
			shares[i]++
		}
	}

	return shares
}
