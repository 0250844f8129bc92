package response_models

type LocationInfo struct {
	Name      string  `json:"name"`
	Region    string  `json:"region"`
	Terrain   string  `json:"terrain"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LocationDetail struct {
	LocationInfo    LocationInfo           `json:"location_info"`
	MonthlyAverages map[int]WeatherSummary `json:"monthly_averages"`
	OverallAverages WeatherSummary         `json:"overall_averages"`
}
