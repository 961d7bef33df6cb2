package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// energyBarWidth is the width of the energy bar in columns.
const energyBarWidth = 30

// EnergyBand is the color band of the energy indicator.
type EnergyBand int

const (
	BandHealthy EnergyBand = iota // energy > 50
	BandWarning                   // 20 < energy <= 50
	BandDanger                    // energy <= 20
)

// bandColors are the fill colors of the energy bar.
var bandColors = map[EnergyBand]string{
	BandHealthy: "#00FF00", // lime
	BandWarning: "#FFA500", // orange
	BandDanger:  "#FF0000", // red
}

// BandFor picks the color band for an energy level.
func BandFor(energy float64) EnergyBand {
	switch {
	case energy > 50:
		return BandHealthy
	case energy > 20:
		return BandWarning
	default:
		return BandDanger
	}
}

// Color returns the fill color of the band.
func (b EnergyBand) Color() string {
	return bandColors[b]
}

// EnergyFill returns the filled fraction of the energy bar: max(energy, 0)
// percent of its width.
func EnergyFill(energy float64) float64 {
	return core.ClampF(energy, 0, 100) / 100
}

// newEnergyBar builds the progress bar used as the energy indicator.
func newEnergyBar() progress.Model {
	return progress.New(
		progress.WithSolidFill(bandColors[BandHealthy]),
		progress.WithoutPercentage(),
		progress.WithWidth(energyBarWidth),
	)
}

var (
	hudLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hudValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// renderEnergy draws the energy bar in the color of its band.
func renderEnergy(bar progress.Model, energy float64) string {
	bar.FullColor = BandFor(energy).Color()
	return hudLabelStyle.Render("Energy ") + bar.ViewAs(EnergyFill(energy))
}

// renderScore draws the score line with the session best.
func renderScore(score, best int, ticks uint64) string {
	return hudLabelStyle.Render("Score: ") + hudValueStyle.Render(fmt.Sprintf("%d", score)) +
		hudLabelStyle.Render("  Best: ") + hudValueStyle.Render(fmt.Sprintf("%d", max(score, best))) +
		hudLabelStyle.Render(fmt.Sprintf("  Tick: %d", ticks))
}
