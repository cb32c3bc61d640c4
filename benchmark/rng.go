package benchmark

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand. seed == 0 selects defaultSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id with the SplitMix64
// finalizer, so neighbouring streams are uncorrelated.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// streamRNG returns the generator of stream under seed. Streams never share
// state, so each may be used from its own goroutine.
func streamRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rngFromSeed(deriveSeed(seed, stream))
}

// RandomText returns n codepoints drawn uniformly from alphabet.
func RandomText(rng *rand.Rand, n int, alphabet []rune) string {
	if n <= 0 || len(alphabet) == 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}

	return string(out)
}

// Text returns the text benchmarked at the i-th configured length.
func Text(seed int64, i, n int, alphabet string) string {
	return RandomText(streamRNG(seed, uint64(i)), n, []rune(alphabet))
}
