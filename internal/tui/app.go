package tui

import (
	"time"

	"obratrack/internal/engine"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type tab int

const (
	tabProductivity tab = iota
	tabCosts
	tabEvolution
	tabCount
)

// App is the root bubbletea model for the dashboard.
type App struct {
	snap *engine.Snapshot

	months   []string
	monthIdx int

	active tab
	width  int
	height int

	chart barchart.Model

	help     help.Model
	showHelp bool
}

// NewApp builds the dashboard over an already loaded snapshot. The month
// selector starts at the given month when it appears in the timeline.
func NewApp(snap *engine.Snapshot, month string) App {
	months := make([]string, 0)
	for _, p := range engine.BuildEvolution(snap) {
		months = append(months, p.Month)
	}
	if len(months) == 0 {
		if month == "" {
			month = time.Now().Format("2006-01")
		}
		months = []string{month}
	}

	idx := len(months) - 1
	for i, m := range months {
		if m == month {
			idx = i
			break
		}
	}

	a := App{
		snap:     snap,
		months:   months,
		monthIdx: idx,
		chart:    barchart.New(60, 12),
		help:     help.New(),
	}
	a.buildChart()
	return a
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) month() string {
	return a.months[a.monthIdx]
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.buildChart()
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
		case key.Matches(msg, keys.Tab1):
			a.active = tabProductivity
		case key.Matches(msg, keys.Tab2):
			a.active = tabCosts
		case key.Matches(msg, keys.Tab3):
			a.active = tabEvolution
		case key.Matches(msg, keys.NextTab):
			a.active = (a.active + 1) % tabCount
		case key.Matches(msg, keys.PrevMonth):
			if a.monthIdx > 0 {
				a.monthIdx--
			}
		case key.Matches(msg, keys.NextMonth):
			if a.monthIdx < len(a.months)-1 {
				a.monthIdx++
			}
		}
		return a, nil
	}

	return a, nil
}

func (a *App) buildChart() {
	chartWidth := a.width - 8
	if chartWidth < 20 {
		chartWidth = 60
	}
	chartHeight := 12
	if a.height > 30 {
		chartHeight = 16
	}

	a.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, p := range engine.BuildEvolution(a.snap) {
		values := []barchart.BarValue{
			{Name: "predicted", Value: p.PredictedCost, Style: lipgloss.NewStyle().Foreground(colorAccent)},
			{Name: "measured", Value: p.MeasuredCost, Style: lipgloss.NewStyle().Foreground(colorWarn)},
		}
		bars = append(bars, barchart.BarData{
			Label:  p.Month[5:], // show MM only
			Values: values,
		})
	}
	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	a.chart.PushAll(bars)
	a.chart.Draw()
}

func (a App) View() string {
	title := "obratrack"
	if a.snap.Project != nil {
		title = a.snap.Project.Name
	}

	header := titleBarStyle.Render(title) + "  " + monthStyle.Render(a.month())

	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		a.renderTab("1 Productivity", tabProductivity),
		a.renderTab("2 Costs", tabCosts),
		a.renderTab("3 Evolution", tabEvolution),
	)

	var body string
	switch a.active {
	case tabProductivity:
		body = a.viewProductivity()
	case tabCosts:
		body = a.viewCosts()
	case tabEvolution:
		body = a.viewEvolution()
	}

	var helpView string
	if a.showHelp {
		helpView = a.help.FullHelpView(keys.FullHelp())
	} else {
		helpView = a.help.ShortHelpView(keys.ShortHelp())
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		" "+header,
		" "+tabs,
		"",
		body,
		"",
		" "+helpView,
	)
}

func (a App) renderTab(label string, t tab) string {
	if a.active == t {
		return activeTabStyle.Render(label)
	}
	return tabStyle.Render(label)
}
