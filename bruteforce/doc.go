// Package bruteforce finds the longest palindromic substring by checking
// every substring.
//
// Algorithm
//
//	for i = 0..n-1:
//	  for j = i..n-1:
//	    walk lo=i, hi=j inward while text[lo] == text[hi]
//	    if the walk met in the middle and j-i+1 > best: best = (i, j-i+1)
//
//	Ties keep the first maximum met: lowest i, then lowest j.
//
// Traced events (in order)
//
//	init, then per i: loop_i; per (i, j): select, check, compare followed by
//	match or mismatch for every inward step, then update_max (new best) or
//	found (palindrome that is not longer). The run closes with result.
//
// Complexity
//
//   - Time:   O(n³)
//   - Memory: O(1) extra, O(n³) events when traced
//
// Callers should gate input length; the solver itself accepts any length.
package bruteforce
