// Package explorer provides the interactive terminal scenario explorer.
// It is the terminal equivalent of the chart demo's sliders: every
// keypress builds a whole new ScenarioState and recomputes all frames
// synchronously inside the update loop, so no partially-updated state
// is ever rendered.
//
// The package is split across two files:
//   - model.go: types, Init, Update loop (this file)
//   - view.go: rendering
package explorer

import (
	"github.com/shopspring/decimal"

	tea "github.com/charmbracelet/bubbletea"

	"steelcost/core/compare"
	"steelcost/core/generator"
	"steelcost/core/scenario"
	"steelcost/core/types"
)

// lever identifies one adjustable parameter row
type lever int

const (
	leverTariff lever = iota
	leverShipping
	leverIncentive
	leverCarbonPrice
	leverCount
)

// leverSpec describes one parameter row: label, adjustment step and
// slider maximum
type leverSpec struct {
	label string
	unit  string
	step  decimal.Decimal
	max   decimal.Decimal
}

var leverSpecs = [leverCount]leverSpec{
	leverTariff:      {label: "Tariff", unit: "%", step: decimal.NewFromInt(1), max: types.MaxTariffPercent},
	leverShipping:    {label: "Shipping", unit: "$/t", step: decimal.NewFromInt(5), max: types.MaxShippingCost},
	leverIncentive:   {label: "Incentive", unit: "$/t", step: decimal.NewFromInt(5), max: types.MaxIncentiveAmount},
	leverCarbonPrice: {label: "Carbon price", unit: "$/tCO2", step: decimal.NewFromInt(5), max: types.MaxCarbonPrice},
}

// Model is the explorer's bubbletea model
type Model struct {
	dataset *types.Dataset
	state   types.ScenarioState
	frames  []types.Frame

	selected  lever
	yearIdx   int
	presetIdx int
	preset    types.PresetName

	width int
	err   error
}

// New builds the explorer over a generated dataset, starting from the
// baseline preset
func New(ds *types.Dataset) Model {
	m := Model{
		dataset:   ds,
		presetIdx: 0,
	}
	p := types.Presets()[0]
	m.state = p.State
	m.preset = p.Name
	m.recompute()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. All recomputation happens here,
// synchronously; the event loop serializes inputs.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil

		case "down", "j":
			if m.selected < leverCount-1 {
				m.selected++
			}
			return m, nil

		case "left", "h":
			m.adjust(m.selected, -1)
			return m, nil

		case "right", "l":
			m.adjust(m.selected, +1)
			return m, nil

		case "[":
			if m.yearIdx > 0 {
				m.yearIdx--
			}
			return m, nil

		case "]":
			if m.yearIdx < len(m.frames)-1 {
				m.yearIdx++
			}
			return m, nil

		case "p":
			m.cyclePreset()
			return m, nil

		case "r":
			m.regenerate()
			return m, nil
		}
	}
	return m, nil
}

// adjust moves one lever by direction*step and recomputes. The new
// state is built as a whole value; the old one is never mutated in
// place.
func (m *Model) adjust(l lever, direction int) {
	spec := leverSpecs[l]
	delta := spec.step
	if direction < 0 {
		delta = delta.Neg()
	}

	next := m.state
	switch l {
	case leverTariff:
		next.TariffPercent = next.TariffPercent.Add(delta)
	case leverShipping:
		next.ShippingCost = next.ShippingCost.Add(delta)
	case leverIncentive:
		next.IncentiveAmount = next.IncentiveAmount.Add(delta)
	case leverCarbonPrice:
		next.CarbonPrice = next.CarbonPrice.Add(delta)
	}

	m.state = next.Clamp()
	m.preset = ""
	m.recompute()
}

// cyclePreset advances to the next preset, replacing all four levers
// atomically
func (m *Model) cyclePreset() {
	presets := types.Presets()
	m.presetIdx = (m.presetIdx + 1) % len(presets)
	p := presets[m.presetIdx]
	m.state = p.State
	m.preset = p.Name
	m.recompute()
}

// regenerate draws a fresh dataset, the terminal analogue of a page
// reload
func (m *Model) regenerate() {
	ds, err := generator.Generate(generator.Config{
		StartYear: m.dataset.StartYear,
		EndYear:   m.dataset.EndYear,
	})
	if err != nil {
		m.err = err
		return
	}
	m.dataset = ds
	m.recompute()
}

// recompute rebuilds every frame from the current (dataset, state)
func (m *Model) recompute() {
	m.frames = scenario.Frames(m.dataset, m.state)
	if m.yearIdx >= len(m.frames) {
		m.yearIdx = len(m.frames) - 1
	}
}

// currentFrame returns the displayed frame
func (m *Model) currentFrame() types.Frame {
	if len(m.frames) == 0 {
		return types.Frame{}
	}
	return m.frames[m.yearIdx]
}

// summary builds the US vs China comparison for the displayed year
func (m *Model) summary() compare.Summary {
	return compare.Compare(m.dataset, m.state, types.RegionUS, types.RegionChina, m.currentFrame().Year)
}

// leverValue returns the current value of a lever
func (m *Model) leverValue(l lever) decimal.Decimal {
	switch l {
	case leverTariff:
		return m.state.TariffPercent
	case leverShipping:
		return m.state.ShippingCost
	case leverIncentive:
		return m.state.IncentiveAmount
	default:
		return m.state.CarbonPrice
	}
}
