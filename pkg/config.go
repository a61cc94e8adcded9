package mgenergy

type MappingSource string

const (
	MappingLayout   MappingSource = "layout"
	MappingDatabase MappingSource = "db"
)

type Configuration struct {
	Verbosity        int           `json:"verbosity"`
	FileIn           string        `json:"file_in"`
	FileOut          string        `json:"file_out"`
	DistanceOffset   float64       `json:"distance_offset"`
	Mapping          MappingSource `json:"mapping"`
	DBDriver         string        `json:"db_driver"`
	Host             string        `json:"host"`
	User             string        `json:"user"`
	Passwd           string        `json:"pass"`
	DBName           string        `json:"dbname"`
	DSN              string        `json:"dsn"`
	RunNumber        int           `json:"run_number"`
	NumWorkers       int           `json:"num_workers"`
	Parallel         bool          `json:"parallel"`
	WriteDistances   bool          `json:"write_distances"`
	CompressionLevel int           `json:"compression_level"`
	Filters          []Filter      `json:"filters"`
}

var configuration Configuration

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}
