// SPDX-License-Identifier: EPL-2.0

package landau

import (
	"math"
	"sort"
)

// Partition is an ordered sequence of positive integers. Partitions
// produced by Optimize sum to the duration they were computed for and
// are sorted in descending order, with any filler units of length 1 at
// the tail.
type Partition []int

// Sum returns the total of all parts.
func (p Partition) Sum() int {
	total := 0
	for _, d := range p {
		total += d
	}

	return total
}

// Result holds an optimal partition of n together with its least common
// multiple, which equals Landau's function g(n).
type Result struct {
	Partition Partition
	LCM       uint64
}

// Optimize returns a partition of n whose LCM is the maximum attainable
// over all integer partitions of n, i.e. g(n) from OEIS A000793.
//
// The maximum LCM is always realized by a set of pairwise coprime prime
// powers summing to at most n; whatever budget they leave unused is
// padded with parts of length 1, which do not change the LCM. The
// selection is a grouped knapsack: at most one power per prime, weight
// p^k, value log(p^k), capacity n. A capacity-indexed DP finds the true
// optimum; greedy largest-first selection does not.
//
// The result is deterministic: the same n always yields the same
// partition.
//
// Candidate subsets are compared by their summed float64 logarithms.
// Distinct products whose logs differ by less than the accumulated
// rounding error could in principle tie-break the wrong way; for n
// small enough that g(n) fits in uint64 (n up to a few hundred) the
// gaps between reachable products are far wider than that error.
func Optimize(n int) (Result, error) {
	if n < 1 {
		return Result{}, ErrInvalidDuration
	}

	groups := primePowerGroups(n)

	// dp[i][c] is the best log-product using powers of the first i
	// primes within capacity c. take[i][c] records the power of prime
	// i-1 chosen on that best path (0 when the prime is skipped).
	dp := make([][]float64, len(groups)+1)
	take := make([][]int, len(groups)+1)
	for i := range dp {
		dp[i] = make([]float64, n+1)
		take[i] = make([]int, n+1)
	}

	for i, powers := range groups {
		for c := 0; c <= n; c++ {
			dp[i+1][c] = dp[i][c]
			for _, pw := range powers {
				if pw > c {
					break
				}
				if v := dp[i][c-pw] + math.Log(float64(pw)); v > dp[i+1][c] {
					dp[i+1][c] = v
					take[i+1][c] = pw
				}
			}
		}
	}

	// Walk the choices back from full capacity.
	var chosen []int
	c := n
	for i := len(groups); i >= 1; i-- {
		if pw := take[i][c]; pw > 0 {
			chosen = append(chosen, pw)
			c -= pw
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(chosen)))

	lcm := uint64(1)
	for _, pw := range chosen {
		if lcm > math.MaxUint64/uint64(pw) {
			return Result{}, ErrDurationTooLarge
		}
		lcm *= uint64(pw)
	}

	partition := make(Partition, 0, len(chosen)+c)
	partition = append(partition, chosen...)
	for i := 0; i < c; i++ {
		partition = append(partition, 1)
	}

	return Result{Partition: partition, LCM: lcm}, nil
}

// primePowerGroups enumerates, for every prime p <= limit, the powers
// p^k <= limit in ascending order. Picking two powers of the same prime
// is never useful: the larger power alone dominates.
func primePowerGroups(limit int) [][]int {
	composite := make([]bool, limit+1)
	var groups [][]int

	for p := 2; p <= limit; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= limit; m += p {
			composite[m] = true
		}

		var powers []int
		for pw := p; pw <= limit; pw *= p {
			powers = append(powers, pw)
			if pw > limit/p {
				break
			}
		}
		groups = append(groups, powers)
	}

	return groups
}
