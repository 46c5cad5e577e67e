package factors

import (
	"errors"
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the document version written by Marshal.
const CurrentVersion = "1.0.0"

// SupportedVersions is the semver constraint a versioned factors document must satisfy.
const SupportedVersions = "^1"

// Parse errors.
var (
	ErrInvalidDocument    = errors.New("invalid factors document")
	ErrUnsupportedVersion = errors.New("unsupported factors document version")
	ErrInvalidValue       = errors.New("factor value must be a number")
)

// document is the versioned on-disk form.
type document struct {
	Version string                        `yaml:"version"`
	Factors map[string]map[string]float64 `yaml:"factors"`
}

// Parse decodes a factors YAML document. Two shapes are accepted: a bare
// category map, or a document with a semver "version" and a "factors" map.
// Category and key aliases are resolved to canonical names.
func Parse(data []byte) (Table, error) {
	var root map[string]any
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if len(root) == 0 {
		return nil, fmt.Errorf("%w: document is empty", ErrInvalidDocument)
	}

	body := root
	if raw, ok := root["factors"]; ok {
		if err := checkVersion(root["version"]); err != nil {
			return nil, err
		}
		nested, isMap := raw.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("%w: \"factors\" must be a mapping", ErrInvalidDocument)
		}
		body = nested
	}

	table := make(Table, len(body))
	for rawCat, rawKeys := range body {
		keys, isMap := rawKeys.(map[string]any)
		if !isMap {
			return nil, fmt.Errorf("%w: category %q must be a mapping", ErrInvalidDocument, rawCat)
		}
		cat := CanonicalCategory(rawCat)
		inner, exists := table[cat]
		if !exists {
			inner = make(map[string]float64, len(keys))
			table[cat] = inner
		}
		for rawKey, rawVal := range keys {
			v, err := toFloat(rawVal)
			if err != nil {
				return nil, fmt.Errorf("%s.%s: %w", rawCat, rawKey, err)
			}
			inner[CanonicalKey(cat, rawKey)] = v
		}
	}
	return table, nil
}

// ParseFile reads and parses a factors file.
func ParseFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading factors file: %w", err)
	}
	return Parse(data)
}

// Marshal encodes t as a versioned YAML document.
func Marshal(t Table) ([]byte, error) {
	doc := document{Version: CurrentVersion, Factors: t}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling factors: %w", err)
	}
	return out, nil
}

func checkVersion(raw any) error {
	if raw == nil {
		return nil
	}
	s := fmt.Sprint(raw)
	v, err := semver.NewVersion(s)
	if err != nil {
		return fmt.Errorf("%w: %q is not a valid version: %w", ErrUnsupportedVersion, s, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("building version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: got %v", ErrInvalidValue, v)
	}
}
