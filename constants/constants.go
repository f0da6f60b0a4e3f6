package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

// GetCatalogPath returns the instrument catalog override, empty meaning the
// built-in catalog.
func GetCatalogPath() string {
	return os.Getenv("CATALOG_PATH")
}

// GetMetadataTable names the DynamoDB piece-metadata table. Empty disables
// metadata lookup entirely.
func GetMetadataTable() string {
	return os.Getenv("METADATA_TABLE")
}

func GetMetadataEndpoint() string {
	endpoint := os.Getenv("METADATA_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

const DefaultAddr = ":8080"
