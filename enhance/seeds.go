// seeds.go - the deterministic seed ladders.

package enhance

const (
	// DefaultBaseSeed anchors the first-round variation ladder.
	DefaultBaseSeed int64 = 2000

	variationSeedStep int64 = 456
	retrySeedBase     int64 = 5000
	retrySeedStep     int64 = 789
)

// VariationSeeds returns the n first-round seeds anchored at base.
// Non-positive n yields nil.
func VariationSeeds(base int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = base + int64(i)*variationSeedStep
	}

	return seeds
}

// RetrySeeds returns the n retry-round seeds. The retry ladder is fixed
// rather than derived from the base seed, so a rescued run lands on the
// same seeds no matter where the first round started.
func RetrySeeds(n int) []int64 {
	if n <= 0 {
		return nil
	}
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = retrySeedBase + int64(i)*retrySeedStep
	}

	return seeds
}
