package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/isleprint/internal/engine"
	"github.com/rshade/isleprint/internal/greenops"
)

// LedgerView selects which table the ledger browser shows.
type LedgerView int

const (
	// LedgerViewCategories lists totals per category.
	LedgerViewCategories LedgerView = iota
	// LedgerViewRecords lists every evaluated row.
	LedgerViewRecords
)

const (
	ledgerChromeHeight = 8
	minTableHeight     = 5
)

// LedgerModel browses an evaluated ledger.
type LedgerModel struct {
	report     *engine.Report
	view       LedgerView
	categories table.Model
	records    table.Model
	quitting   bool
	width      int
	height     int
}

// NewLedgerModel creates a browser over rep.
func NewLedgerModel(rep *engine.Report) *LedgerModel {
	m := &LedgerModel{
		report: rep,
		width:  tripDefaultWidth,
		height: tripDefaultHeight,
	}
	h := m.tableHeight()
	m.categories = NewCategoryTable(rep.Summary.ByCategory, h)
	m.records = NewRecordTable(rep.Results, h)
	m.records.Blur()
	return m
}

// View returns the active view.
func (m *LedgerModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	if m.view == LedgerViewCategories {
		b.WriteString(m.categories.View())
	} else {
		b.WriteString(m.records.View())
	}
	b.WriteString("\n\n")
	b.WriteString(RenderLedgerHelp())
	return b.String()
}

// ActiveView reports which table is shown.
func (m *LedgerModel) ActiveView() LedgerView { return m.view }

// Init implements tea.Model.
func (m *LedgerModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.categories.SetHeight(m.tableHeight())
		m.records.SetHeight(m.tableHeight())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.toggle()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.view == LedgerViewCategories {
		m.categories, cmd = m.categories.Update(msg)
	} else {
		m.records, cmd = m.records.Update(msg)
	}
	return m, cmd
}

func (m *LedgerModel) toggle() {
	if m.view == LedgerViewCategories {
		m.view = LedgerViewRecords
		m.categories.Blur()
		m.records.Focus()
		return
	}
	m.view = LedgerViewCategories
	m.records.Blur()
	m.categories.Focus()
}

func (m *LedgerModel) tableHeight() int {
	return max(m.height-ledgerChromeHeight, minTableHeight)
}

func (m *LedgerModel) renderHeader() string {
	s := m.report.Summary
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("ACTIVITY LEDGER"))
	b.WriteString("\n")
	b.WriteString(LabelStyle.Render("Total: "))
	b.WriteString(ValueStyle.Render(greenops.FormatFloat(s.TotalT, 2) + " tCO2e"))
	b.WriteString(LabelStyle.Render("    Mean: "))
	b.WriteString(ValueStyle.Render(greenops.FormatFloat(s.MeanT, 2) + " tCO2e"))
	b.WriteString(LabelStyle.Render("    Records: "))
	b.WriteString(ValueStyle.Render(strconv.Itoa(s.Count)))
	if s.UnmatchedCount > 0 {
		b.WriteString(WarningStyle.Render("    Unmatched: " + strconv.Itoa(s.UnmatchedCount)))
	}
	if m.report.FactorsFallback {
		b.WriteString("\n")
		b.WriteString(WarningStyle.Render("Using " + m.report.FactorsSource))
	}
	return b.String()
}

// NewCategoryTable builds the per-category totals table.
func NewCategoryTable(totals []engine.CategoryTotal, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 14}, //nolint:mnd // Column width.
		{Title: "Records", Width: 8},   //nolint:mnd // Column width.
		{Title: "tCO2e", Width: 14},    //nolint:mnd // Column width.
		{Title: "Share", Width: 8},     //nolint:mnd // Column width.
	}
	rows := make([]table.Row, len(totals))
	for i, c := range totals {
		rows[i] = table.Row{
			c.Category,
			strconv.Itoa(c.Records),
			greenops.FormatFloat(c.TCO2e, 2),
			greenops.FormatPercent(c.SharePct),
		}
	}
	return styledTable(columns, rows, height)
}

// NewRecordTable builds the per-row table.
func NewRecordTable(results []engine.Result, height int) table.Model {
	columns := []table.Column{
		{Title: "Line", Width: 5},         //nolint:mnd // Column width.
		{Title: "Period", Width: 8},       //nolint:mnd // Column width.
		{Title: "Category", Width: 12},    //nolint:mnd // Column width.
		{Title: "Subcategory", Width: 16}, //nolint:mnd // Column width.
		{Title: "Quantity", Width: 12},    //nolint:mnd // Column width.
		{Title: "Unit", Width: 14},        //nolint:mnd // Column width.
		{Title: "tCO2e", Width: 12},       //nolint:mnd // Column width.
	}
	rows := make([]table.Row, len(results))
	for i, r := range results {
		qty := greenops.FormatFloat(r.Quantity, 2)
		if !r.QuantityValid {
			qty = "invalid"
		}
		tco2e := greenops.FormatFloat(r.TCO2e, 3)
		if !r.Matched {
			tco2e = "-"
		}
		rows[i] = table.Row{
			strconv.Itoa(r.Line),
			period(r.Year, r.Month),
			r.Category,
			r.Subcategory,
			qty,
			r.Unit,
			tco2e,
		}
	}
	return styledTable(columns, rows, height)
}

func styledTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)
	return t
}

func period(year, month string) string {
	switch {
	case year == "" && month == "":
		return ""
	case month == "":
		return year
	default:
		return year + "-" + month
	}
}

// RenderLedgerHelp renders the keyboard shortcut help line.
func RenderLedgerHelp() string {
	return SubtleStyle.Render(strings.Join([]string{
		"↑/↓: Scroll",
		"Tab: Categories/Records",
		"q: Quit",
	}, " | "))
}
