package preferences

import "math"

// keywordRule maps a substring of the user message to a canonical preference
// term. Rules are ordered; the first match wins.
type keywordRule struct {
	Match     string
	Canonical string
}

// RainBand is a half-open precipitation range [Min, Max) in mm; a location
// inside the band satisfies the rain tolerance.
type RainBand struct {
	Min float64
	Max float64
}

// Contains reports whether the precipitation value falls inside the band.
func (b RainBand) Contains(mm float64) bool {
	return mm >= b.Min && mm < b.Max
}

// Vocabulary is the immutable lookup configuration mapping qualitative
// preference terms to numeric targets and weight boosts. It is passed into
// the extractor explicitly so tests can substitute alternate vocabularies.
type Vocabulary struct {
	// Canonical term -> numeric target or band.
	TemperatureTargets map[string]float64 // degrees C
	RainBands          map[string]RainBand

	// Weight boosts applied when the matching feature is mentioned.
	TemperatureBoost float64
	RainBoost        float64
	WindBoost        float64
	UVBoost          float64

	// SportActivity is the activity term that makes wind and UV matter.
	SportActivity string

	// Heuristic parser tables.
	MonthTerms       []keywordRule
	TemperatureTerms []keywordRule
	RainTerms        []keywordRule
	TerrainTerms     []keywordRule
	monthNumbers     map[string]int
}

// DefaultVocabulary returns the built-in Vietnamese/English vocabulary.
func DefaultVocabulary() Vocabulary {
	v := Vocabulary{
		TemperatureTargets: map[string]float64{
			"mát":    22,
			"ôn hòa": 26,
			"nóng":   32,
		},
		RainBands: map[string]RainBand{
			"ít":    {Min: 0, Max: 2},
			"vừa":   {Min: 2, Max: 10},
			"nhiều": {Min: 10, Max: math.Inf(1)},
		},
		TemperatureBoost: 2.0,
		RainBoost:        2.0,
		WindBoost:        1.5,
		UVBoost:          1.5,
		SportActivity:    "thể thao",

		TemperatureTerms: []keywordRule{
			{"ôn hòa", "ôn hòa"}, {"dễ chịu", "ôn hòa"}, {"mild", "ôn hòa"},
			{"mát", "mát"}, {"lạnh", "mát"}, {"cool", "mát"}, {"cold", "mát"},
			{"nóng", "nóng"}, {"hot", "nóng"}, {"warm", "nóng"},
		},
		RainTerms: []keywordRule{
			{"ít mưa", "ít"}, {"khô", "ít"}, {"dry", "ít"},
			{"nhiều mưa", "nhiều"}, {"mưa", "nhiều"}, {"rain", "nhiều"},
		},
		TerrainTerms: []keywordRule{
			{"miền núi", "miền núi"}, {"núi", "miền núi"}, {"mountain", "miền núi"}, {"hill", "miền núi"},
			{"ven biển", "ven biển"}, {"biển", "ven biển"}, {"beach", "ven biển"}, {"coast", "ven biển"},
			{"đồng bằng", "đồng bằng"}, {"plain", "đồng bằng"}, {"delta", "đồng bằng"},
		},
	}

	v.monthNumbers = map[string]int{
		"tháng 1": 1, "tháng 2": 2, "tháng 3": 3, "tháng 4": 4,
		"tháng 5": 5, "tháng 6": 6, "tháng 7": 7, "tháng 8": 8,
		"tháng 9": 9, "tháng 10": 10, "tháng 11": 11, "tháng 12": 12,
		"january": 1, "february": 2, "march": 3, "april": 4,
		"may": 5, "june": 6, "july": 7, "august": 8,
		"september": 9, "october": 10, "november": 11, "december": 12,
		"xuân": 3, "hè": 6, "thu": 9, "đông": 12,
	}

	// Longer terms first so "tháng 12" is not mistaken for "tháng 1".
	v.MonthTerms = []keywordRule{
		{"tháng 10", ""}, {"tháng 11", ""}, {"tháng 12", ""},
		{"tháng 1", ""}, {"tháng 2", ""}, {"tháng 3", ""}, {"tháng 4", ""},
		{"tháng 5", ""}, {"tháng 6", ""}, {"tháng 7", ""}, {"tháng 8", ""}, {"tháng 9", ""},
		{"january", ""}, {"february", ""}, {"march", ""}, {"april", ""},
		{"may", ""}, {"june", ""}, {"july", ""}, {"august", ""},
		{"september", ""}, {"october", ""}, {"november", ""}, {"december", ""},
		{"xuân", ""}, {"hè", ""}, {"thu", ""}, {"đông", ""},
	}

	return v
}

func (v Vocabulary) monthFor(term string) (int, bool) {
	m, ok := v.monthNumbers[term]
	return m, ok
}
