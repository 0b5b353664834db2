package tui

import (
	"testing"

	"Lemonade/pkg/config"
	"Lemonade/pkg/lemonade"
	"Lemonade/pkg/resources"

	"github.com/stretchr/testify/assert"
)

func TestRenderStepCaptionWidth(t *testing.T) {
	res := resources.MustLoad()
	st := newStyles(config.DefaultConfig().UI)
	p := present(lemonade.State{Stage: lemonade.StageDrink, TapCount: 3, RequiredTaps: 3})

	// Before the first resize the caption stays on one line.
	assert.Contains(t, renderStep(p, res, st, 0, true), "Glass of lemonade")

	assert.NotContains(t, renderStep(p, res, st, 14, true), "Glass of lemonade")
	assert.NotContains(t, renderStep(p, res, st, 80, false), "Glass of lemonade")
}
