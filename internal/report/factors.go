package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/factors"
	"github.com/rshade/isleprint/internal/geo"
)

// FactorRow is one flattened factor table entry.
type FactorRow struct {
	Category string  `json:"category"`
	Key      string  `json:"key"`
	Value    float64 `json:"value"`
}

// FlattenFactors lists t in category then key order.
func FlattenFactors(t factors.Table) []FactorRow {
	var rows []FactorRow
	for _, cat := range t.Categories() {
		for _, key := range t.Keys(cat) {
			rows = append(rows, FactorRow{Category: cat, Key: key, Value: t[cat][key]})
		}
	}
	return rows
}

// RenderFactors writes the factor table in opts.Format.
func RenderFactors(w io.Writer, t factors.Table, source string, opts Options) error {
	switch opts.format() {
	case FormatTable:
		return renderFactorsTable(w, t, source)
	case FormatJSON:
		return writeJSON(w, t)
	case FormatNDJSON:
		return writeNDJSON(w, FlattenFactors(t))
	case FormatYAML:
		data, err := factors.Marshal(t)
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w for factor table: %s", ErrUnsupportedFormat, opts.Format)
	}
}

func renderFactorsTable(w io.Writer, t factors.Table, source string) error {
	if source != "" {
		if _, err := fmt.Fprintf(w, "Source: %s\n\n", source); err != nil {
			return err
		}
	}
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
	if _, err := fmt.Fprintln(tw, "CATEGORY\tKEY\tVALUE"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, "--------\t---\t-----"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, r := range FlattenFactors(t) {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n",
			r.Category, r.Key, strconv.FormatFloat(r.Value, 'f', -1, 64)); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	return tw.Flush()
}

// Catalog sections accepted by CatalogView.Only.
const (
	SectionCountries   = "countries"
	SectionIslands     = "islands"
	SectionAircraft    = "aircraft"
	SectionHelicopters = "helicopters"
	SectionVehicles    = "vehicles"
)

// ErrUnknownSection is returned by CatalogView.Only.
var ErrUnknownSection = errors.New("unknown catalog section")

// CatalogView is the serializable form of a catalog.
type CatalogView struct {
	Countries   []string         `json:"countries,omitempty"   yaml:"countries,omitempty"`
	Islands     []string         `json:"islands,omitempty"     yaml:"islands,omitempty"`
	Aircraft    []catalog.Factor `json:"aircraft,omitempty"    yaml:"aircraft,omitempty"`
	Helicopters []catalog.Factor `json:"helicopters,omitempty" yaml:"helicopters,omitempty"`
	Vehicles    []catalog.Factor `json:"vehicles,omitempty"    yaml:"vehicles,omitempty"`
}

// NewCatalogView snapshots c.
func NewCatalogView(c *catalog.Catalog) CatalogView {
	return CatalogView{
		Countries:   c.Countries(),
		Islands:     c.Islands(),
		Aircraft:    c.Aircraft(),
		Helicopters: c.Helicopters(),
		Vehicles:    c.Vehicles(),
	}
}

// Only returns a view holding just the named section. An empty name keeps
// every section.
func (v CatalogView) Only(section string) (CatalogView, error) {
	switch strings.ToLower(strings.TrimSpace(section)) {
	case "", "all":
		return v, nil
	case SectionCountries:
		return CatalogView{Countries: v.Countries}, nil
	case SectionIslands:
		return CatalogView{Islands: v.Islands}, nil
	case SectionAircraft:
		return CatalogView{Aircraft: v.Aircraft}, nil
	case SectionHelicopters:
		return CatalogView{Helicopters: v.Helicopters}, nil
	case SectionVehicles:
		return CatalogView{Vehicles: v.Vehicles}, nil
	default:
		return CatalogView{}, fmt.Errorf("%w: %q", ErrUnknownSection, section)
	}
}

// RenderCatalog writes every reference table in opts.Format.
func RenderCatalog(w io.Writer, c *catalog.Catalog, opts Options) error {
	return RenderCatalogView(w, c, NewCatalogView(c), opts)
}

// RenderCatalogView writes view in opts.Format. c supplies coordinates for
// the location tables.
func RenderCatalogView(w io.Writer, c *catalog.Catalog, view CatalogView, opts Options) error {
	switch opts.format() {
	case FormatTable:
		return renderCatalogTable(w, c, view)
	case FormatJSON:
		return writeJSON(w, view)
	case FormatYAML:
		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshaling catalog: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("%w for catalog: %s", ErrUnsupportedFormat, opts.Format)
	}
}

func renderCatalogTable(w io.Writer, c *catalog.Catalog, view CatalogView) error {
	locations := []struct {
		title string
		names []string
		locs  map[string]geo.Location
	}{
		{"COUNTRY", view.Countries, c.CountryAirports()},
		{"ISLAND", view.Islands, c.IslandAirports()},
	}
	factorGroups := []struct {
		title string
		unit  string
		items []catalog.Factor
	}{
		{"AIRCRAFT", "kgCO2e/pax-km", view.Aircraft},
		{"HELICOPTER", "kgCO2e/pax-km", view.Helicopters},
		{"VEHICLE", "kgCO2e/km", view.Vehicles},
	}

	first := true
	gap := func() error {
		if first {
			first = false
			return nil
		}
		_, err := fmt.Fprintln(w)
		return err
	}

	for _, g := range locations {
		if len(g.names) == 0 {
			continue
		}
		if err := gap(); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprintf(tw, "%s\tAIRPORT\tLAT\tLON\n", g.title); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, name := range g.names {
			loc := g.locs[name]
			if _, err := fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\n", name, loc.ID, loc.Lat, loc.Lon); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, g := range factorGroups {
		if len(g.items) == 0 {
			continue
		}
		if err := gap(); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", g.title, g.unit); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
		for _, f := range g.items {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", f.Name, strconv.FormatFloat(f.Value, 'f', -1, 64)); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
