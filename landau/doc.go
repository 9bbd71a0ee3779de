// SPDX-License-Identifier: EPL-2.0

// Package landau computes Landau's function g(n) together with a
// partition of n that attains it.
//
// g(n) is the largest least common multiple achievable by any set of
// positive integers summing to n. The looping stages of this module use
// the partition to slice an n-second clip into segments whose combined
// repetition period is g(n) seconds.
//
//	res, err := landau.Optimize(12)
//	// res.Partition = [5 4 3], res.LCM = 60
//
// Optimize runs a capacity-indexed dynamic program over prime powers,
// so it stays polynomial in n and is exact for every n it accepts.
package landau
