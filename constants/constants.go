package constants

import "os"

func GetServerPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

func GetMetadataTable() string {
	table := os.Getenv("METADATA_TABLE")
	if table != "" {
		return table
	}
	return "cancrizans-metadata"
}

// TicksPerQuarter is the SMF resolution used on export. 960 divides evenly
// by every duration denominator the notation format commonly sees.
const TicksPerQuarter = 960

const DefaultBeatsPerMeasure = 4
const DefaultBeatUnit = 4
