package tui

import (
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/isleprint/internal/catalog"
	"github.com/rshade/isleprint/internal/travel"
)

// TripField identifies one editable input of the traveler calculator.
type TripField int

// Editable fields, in display order.
const (
	FieldMode TripField = iota
	FieldOrigin
	FieldCraft
	FieldRoundTrip
	FieldOverride
	FieldVehicle
	FieldKmPerDay
	FieldDays
	numTripFields
)

// Step sizes for ←/→ on numeric fields.
const (
	kmPerDayStep = 5
	overrideStep = 50
)

const (
	tripDefaultWidth  = 80
	tripDefaultHeight = 24
)

// TripState is the lifecycle of the calculator.
type TripState int

const (
	// TripStateEditing is the normal interactive state.
	TripStateEditing TripState = iota
	// TripStateQuitting means the program is exiting.
	TripStateQuitting
)

// TripModel is the Bubble Tea model for the traveler calculator. Every
// change recomputes the summary synchronously.
type TripModel struct {
	cat     *catalog.Catalog
	initial travel.Request
	req     travel.Request

	focused    TripField
	editMode   bool
	editBuffer string

	summary travel.Summary
	err     error
	state   TripState

	width  int
	height int
}

// NewTripModel creates a calculator seeded with req.
func NewTripModel(cat *catalog.Catalog, req travel.Request) *TripModel {
	req = withDefaults(req)
	m := &TripModel{
		cat:     cat,
		initial: req,
		req:     req,
		width:   tripDefaultWidth,
		height:  tripDefaultHeight,
	}
	m.recompute()
	return m
}

func withDefaults(req travel.Request) travel.Request {
	if req.Trip.Mode == "" {
		req.Trip.Mode = travel.ModeFlight
	}
	if req.Trip.Country == "" {
		req.Trip.Country = catalog.DefaultCountry
	}
	if req.Trip.Island == "" {
		req.Trip.Island = catalog.DefaultIsland
	}
	if req.Trip.Aircraft == "" {
		req.Trip.Aircraft = catalog.DefaultAircraft
	}
	if req.Trip.Helicopter == "" {
		req.Trip.Helicopter = catalog.DefaultHelicopter
	}
	if req.Island.Vehicle == "" {
		req.Island.Vehicle = catalog.DefaultVehicle
	}
	if req.Island.Days < 1 {
		req.Island.Days = 1
	}
	return req
}

// Request returns the current inputs.
func (m *TripModel) Request() travel.Request { return m.req }

// Summary returns the latest computed summary.
func (m *TripModel) Summary() travel.Summary { return m.summary }

// Err returns the error from the latest recompute, if any.
func (m *TripModel) Err() error { return m.err }

func (m *TripModel) recompute() {
	s, err := travel.Plan(m.cat, m.req)
	m.err = err
	if err == nil {
		m.summary = s
	}
}

// Init implements tea.Model.
func (m *TripModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *TripModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

//nolint:exhaustive // only navigation keys are handled
func (m *TripModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editMode {
		return m.handleEditModeKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = TripStateQuitting
		return m, tea.Quit
	case tea.KeyUp:
		if m.focused > 0 {
			m.focused--
		}
	case tea.KeyDown:
		if m.focused < numTripFields-1 {
			m.focused++
		}
	case tea.KeyLeft:
		m.step(-1)
	case tea.KeyRight:
		m.step(1)
	case tea.KeyEnter:
		m.activate()
	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = TripStateQuitting
			return m, tea.Quit
		case "r":
			m.req.Trip.RoundTrip = !m.req.Trip.RoundTrip
			m.recompute()
		case "R":
			m.req = m.initial
			m.recompute()
		}
	}
	return m, nil
}

//nolint:exhaustive // only text editing keys are handled
func (m *TripModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitEdit()
		m.editMode = false
		m.editBuffer = ""
	case tea.KeyEsc:
		m.editMode = false
		m.editBuffer = ""
	case tea.KeyBackspace:
		if r := []rune(m.editBuffer); len(r) > 0 {
			m.editBuffer = string(r[:len(r)-1])
		}
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == '.' || r == ',' {
				m.editBuffer += string(r)
			}
		}
	case tea.KeyCtrlC:
		m.state = TripStateQuitting
		return m, tea.Quit
	}
	return m, nil
}

// activate handles enter: numeric fields open the editor, the round-trip
// flag toggles, choice fields advance.
func (m *TripModel) activate() {
	switch m.focused {
	case FieldOverride, FieldKmPerDay, FieldDays:
		m.editMode = true
		m.editBuffer = m.fieldValue(m.focused)
		if m.focused == FieldOverride && m.req.Trip.DistanceOverrideKm == 0 {
			m.editBuffer = ""
		}
	default:
		m.step(1)
	}
}

func (m *TripModel) commitEdit() {
	s := strings.ReplaceAll(strings.TrimSpace(m.editBuffer), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if s == "" {
		v, err = 0, nil
	}
	if err != nil || v < 0 {
		return
	}
	switch m.focused {
	case FieldOverride:
		m.req.Trip.DistanceOverrideKm = v
	case FieldKmPerDay:
		m.req.Island.KmPerDay = v
	case FieldDays:
		m.req.Island.Days = max(1, int(v))
	}
	m.recompute()
}

func (m *TripModel) step(dir int) {
	switch m.focused {
	case FieldMode:
		if m.req.Trip.Mode == travel.ModeFlight {
			m.req.Trip.Mode = travel.ModeHelicopter
		} else {
			m.req.Trip.Mode = travel.ModeFlight
		}
	case FieldOrigin:
		if m.req.Trip.Mode == travel.ModeHelicopter {
			m.req.Trip.Island = cycle(m.cat.Islands(), m.req.Trip.Island, dir)
		} else {
			m.req.Trip.Country = cycle(m.cat.Countries(), m.req.Trip.Country, dir)
		}
	case FieldCraft:
		if m.req.Trip.Mode == travel.ModeHelicopter {
			m.req.Trip.Helicopter = cycle(factorNames(m.cat.Helicopters()), m.req.Trip.Helicopter, dir)
		} else {
			m.req.Trip.Aircraft = cycle(factorNames(m.cat.Aircraft()), m.req.Trip.Aircraft, dir)
		}
	case FieldRoundTrip:
		m.req.Trip.RoundTrip = !m.req.Trip.RoundTrip
	case FieldOverride:
		m.req.Trip.DistanceOverrideKm = max(0, m.req.Trip.DistanceOverrideKm+float64(dir*overrideStep))
	case FieldVehicle:
		m.req.Island.Vehicle = cycle(factorNames(m.cat.Vehicles()), m.req.Island.Vehicle, dir)
	case FieldKmPerDay:
		m.req.Island.KmPerDay = max(0, m.req.Island.KmPerDay+float64(dir*kmPerDayStep))
	case FieldDays:
		m.req.Island.Days = max(1, m.req.Island.Days+dir)
	case numTripFields:
	}
	m.recompute()
}

func cycle(options []string, current string, dir int) string {
	if len(options) == 0 {
		return current
	}
	i := slices.Index(options, current)
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+dir)%n+n)%n]
}

func factorNames(fs []catalog.Factor) []string {
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Name
	}
	return names
}
