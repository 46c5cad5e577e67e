package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rshade/isleprint/internal/greenops"
	"github.com/rshade/isleprint/internal/report"
	"github.com/rshade/isleprint/internal/travel"
)

const (
	fieldLabelWidth = 18
	barWidth        = 30
	borderPadding   = 4
)

func (m *TripModel) fieldLabel(f TripField) string {
	heli := m.req.Trip.Mode == travel.ModeHelicopter
	switch f {
	case FieldMode:
		return "Mode"
	case FieldOrigin:
		if heli {
			return "Island"
		}
		return "Departure country"
	case FieldCraft:
		if heli {
			return "Helicopter"
		}
		return "Aircraft"
	case FieldRoundTrip:
		return "Round trip"
	case FieldOverride:
		return "Distance override"
	case FieldVehicle:
		return "Vehicle"
	case FieldKmPerDay:
		return "km per day"
	case FieldDays:
		return "Days on island"
	default:
		return ""
	}
}

func (m *TripModel) fieldValue(f TripField) string {
	heli := m.req.Trip.Mode == travel.ModeHelicopter
	switch f {
	case FieldMode:
		return string(m.req.Trip.Mode)
	case FieldOrigin:
		if heli {
			return m.req.Trip.Island
		}
		return m.req.Trip.Country
	case FieldCraft:
		if heli {
			return m.req.Trip.Helicopter
		}
		return m.req.Trip.Aircraft
	case FieldRoundTrip:
		if m.req.Trip.RoundTrip {
			return "yes"
		}
		return "no"
	case FieldOverride:
		if m.req.Trip.DistanceOverrideKm == 0 {
			return "off"
		}
		return strconv.FormatFloat(m.req.Trip.DistanceOverrideKm, 'f', -1, 64)
	case FieldVehicle:
		return m.req.Island.Vehicle
	case FieldKmPerDay:
		return strconv.FormatFloat(m.req.Island.KmPerDay, 'f', -1, 64)
	case FieldDays:
		return strconv.Itoa(m.req.Island.Days)
	default:
		return ""
	}
}

// View implements tea.Model.
func (m *TripModel) View() string {
	if m.state == TripStateQuitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Island traveler footprint"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFields())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n\n")
	} else {
		b.WriteString(m.renderSummary())
		b.WriteString("\n")
	}
	b.WriteString(RenderTripHelp())
	return b.String()
}

func (m *TripModel) renderFields() string {
	var b strings.Builder
	for f := range numTripFields {
		label := fmt.Sprintf("%-*s", fieldLabelWidth, m.fieldLabel(f))
		value := m.fieldValue(f)
		if m.editMode && f == m.focused {
			value = m.editBuffer + IconCursor
		}

		if f == m.focused {
			b.WriteString(FocusStyle.Render(IconFocus + " " + label))
			b.WriteString(FocusStyle.Render(IconArrowLeft + " " + value + " " + IconArrowRight))
		} else {
			b.WriteString("  " + LabelStyle.Render(label))
			b.WriteString(ValueStyle.Render("  " + value))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *TripModel) renderSummary() string {
	s := m.summary
	var b strings.Builder
	for _, c := range s.Components {
		b.WriteString(LabelStyle.Render(fmt.Sprintf("%-20s", c.Name)))
		b.WriteString(ValueStyle.Render(greenops.FormatFloat(c.KgCO2e, 2) + " kgCO2e"))
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("  " + c.Details))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Total: "))
	b.WriteString(ValueStyle.Render(greenops.FormatFloat(s.TotalT, 3) + " tCO2e"))
	b.WriteString(LabelStyle.Render("   Trip share: "))
	b.WriteString(ValueStyle.Render(greenops.FormatPercent(s.TripSharePct)))
	b.WriteString("\n")
	if s.Trip.Overridden {
		b.WriteString(WarningStyle.Render(fmt.Sprintf("Great-circle distance %s km replaced by override",
			greenops.FormatFloat(s.Trip.GreatCircleKm, 0))))
		b.WriteString("\n")
	}
	if s.TotalKg > 0 {
		b.WriteString("\n")
		b.WriteString(report.ShareBars([]report.Share{
			{Label: travel.ComponentTrip, Pct: s.TripSharePct},
			{Label: travel.ComponentIsland, Pct: 100 - s.TripSharePct},
		}, barWidth, true))
	}
	if !s.Equivalency.IsEmpty {
		b.WriteString(SubtleStyle.Render(s.Equivalency.DisplayText))
		b.WriteString("\n")
	}
	return BoxStyle.Width(max(m.width-borderPadding, 0)).Render(b.String())
}

// RenderTripHelp renders the keyboard shortcut help line.
func RenderTripHelp() string {
	shortcuts := []string{
		"↑/↓: Field",
		"←/→: Change",
		"Enter: Edit/Toggle",
		"r: Round trip",
		"R: Reset",
		"q: Quit",
	}
	return SubtleStyle.Render(strings.Join(shortcuts, " | "))
}
