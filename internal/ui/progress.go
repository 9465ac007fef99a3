package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar renders verification progress across random trials
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewTrialProgress creates a progress bar for count verification trials
func NewTrialProgress(count int) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(
			color.CyanString("Running trials: ")+
				color.GreenString("[optimal: 0")+
				" | "+
				color.YellowString("off: 0]"),
		),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(os.Stderr, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Update updates the progress bar with optimal and off-optimal trial counts
func (p *ProgressBar) Update(optimal, off int) {
	p.bar.Set(optimal + off)
	p.bar.Describe(
		color.CyanString("Running trials: ") +
			color.GreenString("[optimal: %d", optimal) +
			" | " +
			color.YellowString("off: %d]", off),
	)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
