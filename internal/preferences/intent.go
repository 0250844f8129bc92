package preferences

// RawIntent is the structured interpretation of one chat message, produced
// either by the LLM intent call or by the heuristic fallback parser. Fields
// the parser could not determine stay zero-valued.
type RawIntent struct {
	Month                 *int     `json:"month"`
	TemperaturePreference string   `json:"temperature_preference"`
	RainTolerance         string   `json:"rain_tolerance"`
	TerrainPreference     string   `json:"terrain_preference"`
	ActivityType          string   `json:"activity_type"`
	Keywords              []string `json:"keywords"`
}
