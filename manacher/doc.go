// Package manacher finds the longest palindromic substring in linear time
// using Manacher's radius array.
//
// Transform
//
//	T = ^ # s0 # s1 # ... # s(n-1) # $        len(T) = 2n+3
//
//	The filler # between characters makes every palindrome odd-length in T.
//	The distinct terminals ^ and $ never match anything, so the expansion loop
//	stops at the ends without a bounds check. All three sentinels are negative
//	runes and therefore cannot collide with any decoded codepoint.
//
// Scan
//
//	P[i] is the radius of the palindrome centered at T[i]. C is the center of
//	the rightmost-reaching palindrome found so far and R = C + P[C] its
//	(exclusive) right boundary. For i = 1..len(T)-2:
//
//	  mirror = 2C - i
//	  if i < R: P[i] = min(R-i, P[mirror])    // never beyond verified ground
//	  while T[i+1+P[i]] == T[i-1-P[i]]: P[i]++
//	  if i + P[i] > R: C, R = i, i + P[i]
//
//	The answer length is max(P); the lowest center attaining it wins and maps
//	back to start = (center - maxLen) / 2.
//
// Traced events: init, transform, init_vars, then per i: select_center,
// calc_mirror, mirror (when seeded), compare followed by match or mismatch
// for every expansion probe, update_center (when R grows); finally
// update_max and result. Positions of per-i events index T, not the input.
//
// Complexity
//
//   - Time:   O(n); R only moves right and every successful probe moves it.
//   - Memory: O(n) for T and P.
package manacher
