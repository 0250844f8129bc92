package preferences

import (
	"math"
	"strings"

	"vietravel/internal/dataset"
)

// PreferenceRecord is the normalized form of one user request: an optional
// target month, qualitative tags, per-feature numeric targets (NaN = no
// target), an optional rain tolerance band, an optional terrain preference,
// and the feature weight vector.
type PreferenceRecord struct {
	Month    *int
	Tags     []string
	Terrain  string
	Targets  dataset.Vector
	RainBand *RainBand
	Weights  dataset.Weights
}

// HasTarget reports whether a numeric target is set for the feature.
func (p PreferenceRecord) HasTarget(feature int) bool {
	return !math.IsNaN(p.Targets[feature])
}

// Extract converts a RawIntent into a PreferenceRecord using the vocabulary.
// Pure function: same intent and vocabulary always yield the same record.
// Features the user mentioned get their weight boosted above the uniform
// baseline; everything else keeps weight 1.0.
func Extract(intent RawIntent, vocab Vocabulary) PreferenceRecord {
	rec := PreferenceRecord{
		Month:   intent.Month,
		Weights: dataset.UniformWeights(),
	}
	for i := range rec.Targets {
		rec.Targets[i] = math.NaN()
	}

	if t, ok := vocab.TemperatureTargets[intent.TemperaturePreference]; ok {
		rec.Targets[dataset.FeatTemperature] = t
		rec.Weights[dataset.FeatTemperature] = vocab.TemperatureBoost
		rec.Tags = append(rec.Tags, intent.TemperaturePreference)
	}

	if band, ok := vocab.RainBands[intent.RainTolerance]; ok {
		rec.RainBand = &band
		rec.Weights[dataset.FeatPrecipitation] = vocab.RainBoost
		rec.Tags = append(rec.Tags, intent.RainTolerance+" mưa")
	}

	if intent.TerrainPreference != "" {
		rec.Terrain = intent.TerrainPreference
		rec.Tags = append(rec.Tags, intent.TerrainPreference)
	}

	if intent.ActivityType == vocab.SportActivity && vocab.SportActivity != "" {
		rec.Weights[dataset.FeatWind] = vocab.WindBoost
		rec.Weights[dataset.FeatUV] = vocab.UVBoost
		rec.Tags = append(rec.Tags, intent.ActivityType)
	}

	return rec
}

// HeuristicParse is the deterministic fallback when the LLM intent call is
// unavailable: keyword scanning over the lowercased message.
func HeuristicParse(message string, vocab Vocabulary) RawIntent {
	lower := strings.ToLower(message)
	var intent RawIntent

	for _, rule := range vocab.MonthTerms {
		if strings.Contains(lower, rule.Match) {
			if m, ok := vocab.monthFor(rule.Match); ok {
				month := m
				intent.Month = &month
				intent.Keywords = append(intent.Keywords, rule.Match)
				break
			}
		}
	}

	if term, kw := firstMatch(lower, vocab.TemperatureTerms); term != "" {
		intent.TemperaturePreference = term
		intent.Keywords = append(intent.Keywords, kw)
	}
	if term, kw := firstMatch(lower, vocab.RainTerms); term != "" {
		intent.RainTolerance = term
		intent.Keywords = append(intent.Keywords, kw)
	}
	if term, kw := firstMatch(lower, vocab.TerrainTerms); term != "" {
		intent.TerrainPreference = term
		intent.Keywords = append(intent.Keywords, kw)
	}

	return intent
}

func firstMatch(lower string, rules []keywordRule) (canonical, matched string) {
	for _, rule := range rules {
		if strings.Contains(lower, rule.Match) {
			return rule.Canonical, rule.Match
		}
	}
	return "", ""
}
