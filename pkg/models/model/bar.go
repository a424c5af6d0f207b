package model

import (
	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
)

// Bar is the terminal progress bar used by the self-play series.
type Bar progressbar.ProgressBar

func NewBar(total int, description string) *Bar {
	return (*Bar)(progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Cyan("█").String(),
			SaucerHead:    aurora.Cyan("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	))
}

func (b *Bar) Add(i int) {
	_ = (*progressbar.ProgressBar)(b).Add(i)
}

func (b *Bar) Describe(description string) {
	(*progressbar.ProgressBar)(b).Describe(description)
}

func (b *Bar) Close() {
	_ = (*progressbar.ProgressBar)(b).Finish()
	_ = (*progressbar.ProgressBar)(b).Close()
}
