package response_models

// WeatherSummary carries the weather stats shown next to a recommendation.
// Pointers so missing dataset values serialize as absent instead of NaN.
type WeatherSummary struct {
	AvgTempC      *float64 `json:"avgtemp_c,omitempty"`
	MaxWindKph    *float64 `json:"maxwind_kph,omitempty"`
	TotalPrecipMm *float64 `json:"totalprecip_mm,omitempty"`
	AvgVisKm      *float64 `json:"avgvis_km,omitempty"`
	AvgHumidity   *float64 `json:"avghumidity,omitempty"`
	UV            *float64 `json:"uv,omitempty"`
}

type Recommendation struct {
	Name      string         `json:"name"`
	Region    string         `json:"region"`
	Terrain   string         `json:"terrain"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Cluster   int            `json:"cluster"`
	Score     float64        `json:"score"`
	Weather   WeatherSummary `json:"weather"`
}
