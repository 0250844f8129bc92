package dataset_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"vietravel/internal/dataset"
)

const defaultDataPath = "data/df_weather.csv"

var Module = fx.Provide(
	ProvideWeatherTable)

// ProvideWeatherTable loads the weather dataset once at startup. The process
// cannot serve anything without it, so a load failure is fatal.
func ProvideWeatherTable() *dataset.Table {
	path := os.Getenv("WEATHER_DATA_PATH")
	if path == "" {
		path = defaultDataPath
	}

	table, err := dataset.Load(path)
	if err != nil {
		log.Fatalf("Failed to load weather dataset from %s: %v", path, err)
	}

	log.Printf("Loaded weather dataset: %d rows, %d locations", table.Len(), len(table.Locations()))
	return table
}
