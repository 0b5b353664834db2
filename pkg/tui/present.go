package tui

import (
	"fmt"

	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/resources"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// presentation is everything the screen shows for one state.
type presentation struct {
	image       resources.ImageID
	text        resources.TextID
	secondary   string // empty when absent
	description resources.TextID
}

// stageAssets maps each stage to its resources. Every lemonade.Stage has an
// entry.
var stageAssets = map[lemonade.Stage]presentation{
	lemonade.StageTree: {
		image:       resources.ImageLemonTree,
		text:        resources.TextTapLemonTree,
		description: resources.TextDescLemonTree,
	},
	lemonade.StageLemon: {
		image:       resources.ImageLemonSqueeze,
		text:        resources.TextSqueezeLemon,
		description: resources.TextDescLemon,
	},
	lemonade.StageDrink: {
		image:       resources.ImageLemonDrink,
		text:        resources.TextDrinkLemonade,
		description: resources.TextDescLemonade,
	},
	lemonade.StageEmpty: {
		image:       resources.ImageLemonRestart,
		text:        resources.TextRestartGlass,
		description: resources.TextDescEmptyGlass,
	},
}

const tapsLeftKey = "%d taps left"

var tapsPrinter = newTapsPrinter()

func newTapsPrinter() *message.Printer {
	err := message.Set(language.English, tapsLeftKey,
		plural.Selectf(1, "%d",
			"=1", "%d tap left",
			"other", "%d taps left",
		))
	if err != nil {
		panic(fmt.Errorf("register taps-left message: %w", err))
	}
	return message.NewPrinter(language.English)
}

// tapsLeft formats the remaining squeeze count, e.g. "2 taps left".
func tapsLeft(n int) string {
	return tapsPrinter.Sprintf(tapsLeftKey, n)
}

// present maps a state to what the screen shows. Only the lemon stage carries
// secondary text.
func present(s lemonade.State) presentation {
	p, ok := stageAssets[s.Stage]
	if !ok {
		p = stageAssets[lemonade.StageTree]
	}
	if s.Stage == lemonade.StageLemon {
		p.secondary = tapsLeft(s.Remaining())
	}
	return p
}
