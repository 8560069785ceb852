package frecency

// Recency weight multipliers, Firefox-style. The most recent bucket dominates
// so that an app used yesterday outranks one used fifty times last quarter.
const (
	weightUnder4Days  = 100
	weightUnder14Days = 70
	weightUnder31Days = 50
	weightUnder90Days = 30
	weightOlder       = 10
)

const secondsPerDay = 86400

// Weight returns the recency multiplier for a launch that happened ageDays
// ago. Bucket upper bounds are exclusive: an age of exactly 4.0 days falls
// into the 70x bucket.
func Weight(ageDays float64) int {
	switch {
	case ageDays < 4:
		return weightUnder4Days
	case ageDays < 14:
		return weightUnder14Days
	case ageDays < 31:
		return weightUnder31Days
	case ageDays < 90:
		return weightUnder90Days
	default:
		return weightOlder
	}
}

// Score computes the frecency score for an item:
//
//	score = launch_count * recency_weight(now - last_launch)
//
// It is a pure function of the record and the evaluation time; the weight
// bucket depends on when the score is read, so scores are never cached.
func Score(launchCount int, lastLaunch, now int64) float64 {
	ageDays := float64(now-lastLaunch) / secondsPerDay
	return float64(launchCount) * float64(Weight(ageDays))
}
