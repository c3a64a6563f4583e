// Package prefix extracts package prefix mappings from translator arguments.
package prefix

import (
	"maps"
	"path/filepath"
	"strings"

	"go.trai.ch/objcbuild/internal/core/ports"
)

const (
	prefixFlag   = "--prefix"
	prefixesFlag = "--prefixes"
)

// Parser reads --prefix and --prefixes directives.
type Parser struct {
	props ports.PropertiesLoader
}

// NewParser creates a new Parser.
func NewParser(props ports.PropertiesLoader) *Parser {
	return &Parser{props: props}
}

// Parse scans args for `--prefix <package>=<Prefix>` and `--prefixes <file>`
// and merges their properties left to right, so later keys overwrite earlier ones.
//
// Each argument is split on whitespace first, so "--prefix a=B" may arrive as one
// argument or two. Relative --prefixes paths resolve against root. A directive
// without a value is ignored. Load failures are returned unchanged.
func (p *Parser) Parse(root string, args []string) (map[string]string, error) {
	tokens := tokenize(args)
	result := make(map[string]string)

	for i := 0; i < len(tokens)-1; i++ {
		var (
			loaded map[string]string
			err    error
		)

		switch tokens[i] {
		case prefixFlag:
			loaded, err = p.props.LoadString(tokens[i+1])
		case prefixesFlag:
			loaded, err = p.props.LoadFile(resolve(root, tokens[i+1]))
		default:
			continue
		}
		if err != nil {
			return nil, err
		}

		maps.Copy(result, loaded)
		i++
	}

	return result, nil
}

func tokenize(args []string) []string {
	tokens := make([]string, 0, len(args))
	for _, arg := range args {
		tokens = append(tokens, strings.Fields(arg)...)
	}
	return tokens
}

func resolve(root, path string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
