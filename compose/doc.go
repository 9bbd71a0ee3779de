// SPDX-License-Identifier: EPL-2.0

// Package compose turns a partitioned clip into one long loop.
//
// Given a decoded buffer and a partition of its duration, Compose cuts
// the buffer into contiguous segments (one per part), repeats each
// segment end-to-end until it spans the target length, and sums all the
// repeated segments sample-wise into a single output. When the target
// is the partition's LCM, the segments drift in and out of phase and
// the combined result only repeats after the full target length.
//
// Segment ordering, normalization, unit resolution and an output size
// guard are all configurable through Options; the zero value matches
// the documented defaults.
package compose
