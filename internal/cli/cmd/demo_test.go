package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/logging"
)

func TestRunDemo_EveryStepPasses(t *testing.T) {
	ctx := logging.WithContext(context.Background(), logging.NewFromConfigValues("disabled", "console"))
	var out bytes.Buffer

	err := runDemo(ctx, &out, testTheme(), true)

	require.NoError(t, err)
	text := ansi.Strip(out.String())
	for _, want := range []string{
		"dock P1 into an empty area",
		"root split horizontally, P2 first, P1 keeps its group",
		"the empty group merged",
		"(10,50) is left, (100,50) is center",
		"ratio is 0.50",
		"All 5 steps passed",
	} {
		assert.Contains(t, text, want)
	}
	assert.NotContains(t, text, "<empty>")
	assert.Contains(t, text, "P3", "the snapshot draws the final tabs")
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n  b", indent("a\nb", "  "))
}
