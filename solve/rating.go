package solve

// Rating folds the weight trail of a solve into one difficulty score,
// then buckets the score into a named tier.

// A RatingPolicy reduces the technique weights of a completed solve to
// a single rating.
type RatingPolicy interface {
	// Rate receives the weights in application order. The slice is
	// never empty.
	Rate(weights []float64) float64
}

// MaxWeight rates a puzzle by its hardest step. This is the default
// policy: a puzzle is as hard as the one technique you cannot avoid.
type MaxWeight struct{}

func (MaxWeight) Rate(weights []float64) float64 {
	max := weights[0]
	for _, w := range weights[1:] {
		if w > max {
			max = w
		}
	}
	return max
}

// WeightedSum rates by the hardest step plus diminishing credit for
// every further step at that level, so a puzzle demanding five hard
// moves rates above one demanding a single hard move.
type WeightedSum struct{}

func (WeightedSum) Rate(weights []float64) float64 {
	max := MaxWeight{}.Rate(weights)
	bonus, inc := 0.0, 0.1
	for _, w := range weights {
		if w >= max-0.5 {
			bonus += inc
			inc *= 0.5
		}
	}
	if r := max + bonus - 0.1; r > max {
		return r
	}
	return max
}

// Tier is a named difficulty band over the rating scale.
type Tier uint8

const (
	Beginner Tier = iota
	Easy
	Medium
	Intermediate
	Hard
	Expert
	Master
	Extreme
	numTiers
)

var tierNames = [numTiers]string{
	"Beginner", "Easy", "Medium", "Intermediate",
	"Hard", "Expert", "Master", "Extreme",
}

// tierBounds holds the half-open rating interval of each tier; the
// last interval is closed on the right.
var tierBounds = [numTiers][2]float64{
	{1.0, 2.0},
	{2.0, 2.6},
	{2.6, 3.4},
	{3.4, 3.8},
	{3.8, 4.5},
	{4.5, 5.5},
	{5.5, 7.0},
	{7.0, 11.0},
}

func (t Tier) String() string {
	if t >= numTiers {
		return "Unknown"
	}
	return tierNames[t]
}

// Bounds returns the rating interval [lo, hi) covered by the tier.
func (t Tier) Bounds() (lo, hi float64) {
	return tierBounds[t][0], tierBounds[t][1]
}

// TierOf buckets a rating into its tier. Ratings below the scale clamp
// to Beginner, above it to Extreme.
func TierOf(rating float64) Tier {
	for t := Tier(0); t < numTiers-1; t++ {
		if rating < tierBounds[t][1] {
			return t
		}
	}
	return Extreme
}
