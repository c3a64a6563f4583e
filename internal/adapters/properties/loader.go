// Package properties reads Java-style .properties files.
package properties

import (
	"github.com/magiconair/properties"
	"go.trai.ch/objcbuild/internal/core/ports"
)

var _ ports.PropertiesLoader = (*Loader)(nil)

// Loader implements ports.PropertiesLoader using magiconair/properties.
// Values are returned verbatim; ${...} references are not expanded.
type Loader struct {
	loader *properties.Loader
}

// NewLoader creates a Loader reading UTF-8 input.
func NewLoader() *Loader {
	return &Loader{
		loader: &properties.Loader{
			Encoding:         properties.UTF8,
			DisableExpansion: true,
		},
	}
}

// LoadFile reads the properties file at path.
// A missing or malformed file is returned as the underlying error.
func (l *Loader) LoadFile(path string) (map[string]string, error) {
	p, err := l.loader.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}

// LoadString parses properties text.
func (l *Loader) LoadString(text string) (map[string]string, error) {
	p, err := l.loader.LoadBytes([]byte(text))
	if err != nil {
		return nil, err
	}
	return p.Map(), nil
}
