// Package tsp - tour utilities shared by the strategies.
//
// This file contains compact utilities that operate purely on tour structure
// (index sequences), without depending on distance matrices.
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy of a tour slice.
//   - identityTour: 0..n-1.
//   - reverseSegment: in-place segment reversal (2-opt core).
package tsp

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) boolean marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n {
		return ErrInvalidTour
	}
	seen := make([]bool, n)

	var v int
	for _, v = range perm {
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of the input tour slice.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// identityTour returns [0, 1, …, n−1].
func identityTour(n int) []int {
	t := make([]int, n)
	var i int
	for i = range t {
		t[i] = i
	}

	return t
}

// reverseSegment reverses the inclusive segment tour[i..k] in place.
// Callers guarantee 0 ≤ i ≤ k < len(tour).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
