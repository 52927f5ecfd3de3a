// Package lcs computes the Longest Common Subsequence (LCS) of two
// sequences with the classic dynamic-programming table.
//
// What is LCS?
//
//	The longest sequence of symbols that appears in both inputs in the same
//	relative order, not necessarily contiguously. For "ABCBDAB" and
//	"BDCABA" the LCS length is 4; "BDAB" and "BCBA" are two such subsequences.
//
// Algorithm:
//
//  1. Let m = len(X), n = len(Y). Allocate an (m+1)x(n+1) table L.
//  2. Row 0 and column 0 are zero.
//  3. For i = 1..m, j = 1..n:
//     L[i][j] = L[i-1][j-1] + 1            if X[i-1] == Y[j-1]
//     L[i][j] = max(L[i-1][j], L[i][j-1])  otherwise
//  4. Walk back from (m, n): on a match emit the symbol and move
//     diagonally, else move up only when L[i-1][j] > L[i][j-1] and left
//     otherwise. Ties always move left, which makes the result
//     deterministic.
//
// Instrumentation:
//
//	ComputeTable reports two counters next to the table. TotalOps counts
//	every visited cell, borders included, so it is exactly (m+1)(n+1).
//	CharComparisons counts the cells where the symbols matched.
//
// Usage:
//
//	x, y := lcs.FromString("ABCBDAB"), lcs.FromString("BDCABA")
//	res, err := lcs.Compute(x, y, nil)
//	// res.LCS == "BDAB", res.Length == 4, res.TotalOps == 56
//
// Performance:
//
//   - Time:   O(m·n) fill, O(m+n) reconstruction
//   - Memory: O(m·n) table; bound it with Options.MaxCells
package lcs
