// Package expand finds the longest palindromic substring by growing a window
// outward from every possible center.
//
// Every palindrome has a center: a single character (odd length) or the gap
// between two characters (even length). For each index i the solver expands
// from (i, i) and then from (i, i+1), widening while both ends are in range
// and equal. Only a strictly longer window replaces the best, so the first
// maximum in scan order wins.
//
// Traced events: init; per center choice center (odd centers carry their
// index, even centers their two positions); per step compare followed by
// match (then update_max if longer, then expand if the next window is still in
// range) or mismatch; result.
//
// Complexity
//
//   - Time:   O(n²) worst case (uniform text), O(n) best case (no repeats)
//   - Memory: O(1) extra
package expand
