package ports

// PropertiesLoader defines the interface for reading Java-style properties.
//
//go:generate mockgen -source=properties_loader.go -destination=mocks/mock_properties_loader.go -package=mocks
type PropertiesLoader interface {
	// LoadFile reads the properties file at path.
	LoadFile(path string) (map[string]string, error)

	// LoadString parses properties text.
	LoadString(text string) (map[string]string, error)
}
