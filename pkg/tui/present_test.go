package tui

import (
	"testing"

	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/resources"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/message"
)

func TestStageAssetsCoverEveryStage(t *testing.T) {
	for s := lemonade.StageTree; s <= lemonade.StageEmpty; s++ {
		p, ok := stageAssets[s]
		if !assert.True(t, ok, "no assets for %s", s) {
			continue
		}
		assert.NotEmpty(t, p.image)
		assert.NotEmpty(t, p.text)
		assert.NotEmpty(t, p.description)
		assert.Empty(t, p.secondary, "static table must not carry secondary text")
	}
}

func TestPresent(t *testing.T) {
	tests := []struct {
		name  string
		state lemonade.State
		want  presentation
	}{
		{
			name:  "tree",
			state: lemonade.State{Stage: lemonade.StageTree, RequiredTaps: 3},
			want:  presentation{resources.ImageLemonTree, resources.TextTapLemonTree, "", resources.TextDescLemonTree},
		},
		{
			name:  "lemon after one squeeze",
			state: lemonade.State{Stage: lemonade.StageLemon, TapCount: 1, RequiredTaps: 3},
			want:  presentation{resources.ImageLemonSqueeze, resources.TextSqueezeLemon, "2 taps left", resources.TextDescLemon},
		},
		{
			name:  "drink",
			state: lemonade.State{Stage: lemonade.StageDrink, TapCount: 3, RequiredTaps: 3},
			want:  presentation{resources.ImageLemonDrink, resources.TextDrinkLemonade, "", resources.TextDescLemonade},
		},
		{
			name:  "empty",
			state: lemonade.State{Stage: lemonade.StageEmpty, TapCount: 3, RequiredTaps: 3},
			want:  presentation{resources.ImageLemonRestart, resources.TextRestartGlass, "", resources.TextDescEmptyGlass},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, present(tt.state))
		})
	}
}

func TestPresentDoesNotMutateTable(t *testing.T) {
	_ = present(lemonade.State{Stage: lemonade.StageLemon, RequiredTaps: 4})
	assert.Empty(t, stageAssets[lemonade.StageLemon].secondary)
}

func TestTapsLeft(t *testing.T) {
	assert.Equal(t, "1 tap left", tapsLeft(1))
	assert.Equal(t, "2 taps left", tapsLeft(2))
	assert.Equal(t, "4 taps left", tapsLeft(4))
}

func TestNewTapsPrinterRegistersPlural(t *testing.T) {
	var p *message.Printer
	assert.NotPanics(t, func() { p = newTapsPrinter() })
	assert.Equal(t, "1 tap left", p.Sprintf(tapsLeftKey, 1))
	assert.Equal(t, "4 taps left", p.Sprintf(tapsLeftKey, 4))
}
