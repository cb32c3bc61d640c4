// Package dp finds the longest palindromic substring by filling a boolean
// table bottom-up.
//
// Algorithm Outline:
//  1. Let n = len(s). Allocate an n×n table dp; dp[i][j] means s[i..j] is a
//     palindrome.
//  2. Length 1: dp[i][i] = true for every i.
//  3. Length 2: dp[i][i+1] = s[i] == s[i+1].
//  4. Length L = 3..n, i ascending, j = i+L-1:
//     dp[i][j] = s[i] == s[j] && dp[i+1][j-1]
//  5. The best is replaced only by a strictly longer window, so the lowest i
//     of the first maximal length wins.
//
// Traced events: init; dp_update for every written cell (true or false);
// compare followed by match or mismatch for each end pair; dp_check for the
// inner cell lookup; loop_len and select for windows of length ≥ 3;
// update_max; result.
//
// Complexity:
//
//	Time   = O(n²)
//	Memory = O(n²); the table is the documented limitation of this solver.
//	         Callers must gate input length (the HTTP layer defaults to 100).
package dp
