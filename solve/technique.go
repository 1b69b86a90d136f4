package solve

// Technique enumerates the closed deduction family. The declaration
// order is ascending weight and doubles as the dispatch precedence:
// adding a technique means adding a constant here, a weight, a name and
// a slot in the engine table — nothing is open to extension at runtime.
type Technique uint8

const (
	NakedSingle Technique = iota
	HiddenSingle
	Pointing
	Claiming
	NakedPair
	HiddenPair
	NakedTriple
	HiddenTriple
	NakedQuad
	HiddenQuad
	XWing
	UniqueRectangle
	FinnedXWing
	Swordfish
	HiddenRectangle
	FinnedSwordfish
	Jellyfish
	XYWing
	FinnedJellyfish
	XYZWing
	BivalueUniversalGrave
	FrankenFish
	WWing
	ALSXZ
	MutantFish
	WXYZWing
	XChain
	ALSXYWing
	Medusa
	ALSChain
	AIC

	numTechniques // sentinel, keep last
)

// techniqueWeights holds the numeric difficulty weight of each variant
// on the community-standard scale. Band calibration: singles 1.0–2.0,
// locked candidates 2.0–2.6, subsets 2.6–4.5, fish 4.5–6.5, uniqueness
// 4.5–6.0, wings 5.5–7.0, ALS 6.5–8.5, chains 7.5–10.
var techniqueWeights = [numTechniques]float64{
	NakedSingle:           1.0,
	HiddenSingle:          1.5,
	Pointing:              2.0,
	Claiming:              2.4,
	NakedPair:             2.6,
	HiddenPair:            3.0,
	NakedTriple:           3.2,
	HiddenTriple:          3.6,
	NakedQuad:             4.0,
	HiddenQuad:            4.4,
	XWing:                 4.5,
	UniqueRectangle:       4.6,
	FinnedXWing:           4.8,
	Swordfish:             5.0,
	HiddenRectangle:       5.1,
	FinnedSwordfish:       5.3,
	Jellyfish:             5.5,
	XYWing:                5.5,
	FinnedJellyfish:       5.8,
	XYZWing:               6.0,
	BivalueUniversalGrave: 6.0,
	FrankenFish:           6.2,
	WWing:                 6.4,
	ALSXZ:                 6.5,
	MutantFish:            6.5,
	WXYZWing:              7.0,
	XChain:                7.5,
	ALSXYWing:             7.8,
	Medusa:                8.0,
	ALSChain:              8.5,
	AIC:                   9.5,
}

var techniqueNames = [numTechniques]string{
	NakedSingle:           "Naked Single",
	HiddenSingle:          "Hidden Single",
	Pointing:              "Pointing Candidates",
	Claiming:              "Claiming Candidates",
	NakedPair:             "Naked Pair",
	HiddenPair:            "Hidden Pair",
	NakedTriple:           "Naked Triple",
	HiddenTriple:          "Hidden Triple",
	NakedQuad:             "Naked Quad",
	HiddenQuad:            "Hidden Quad",
	XWing:                 "X-Wing",
	UniqueRectangle:       "Unique Rectangle",
	FinnedXWing:           "Finned X-Wing",
	Swordfish:             "Swordfish",
	HiddenRectangle:       "Hidden Rectangle",
	FinnedSwordfish:       "Finned Swordfish",
	Jellyfish:             "Jellyfish",
	XYWing:                "XY-Wing",
	FinnedJellyfish:       "Finned Jellyfish",
	XYZWing:               "XYZ-Wing",
	BivalueUniversalGrave: "BUG+1",
	FrankenFish:           "Franken Fish",
	WWing:                 "W-Wing",
	ALSXZ:                 "ALS-XZ",
	MutantFish:            "Mutant Fish",
	WXYZWing:              "WXYZ-Wing",
	XChain:                "X-Chain",
	ALSXYWing:             "ALS-XY-Wing",
	Medusa:                "3D Medusa",
	ALSChain:              "ALS Chain",
	AIC:                   "AIC",
}

// Weight returns the technique's numeric difficulty weight.
func (t Technique) Weight() float64 { return techniqueWeights[t] }

// String returns the community name of the technique.
func (t Technique) String() string { return techniqueNames[t] }

// UniquenessBased reports whether the technique's soundness depends on
// the grid being already proven uniquely solvable.
func (t Technique) UniquenessBased() bool {
	switch t {
	case UniqueRectangle, HiddenRectangle, BivalueUniversalGrave:
		return true
	}
	return false
}
