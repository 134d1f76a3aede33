package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameSizes(t *testing.T) {
	assert.Equal(t, 6880, MonoFrameSize)
	assert.Equal(t, 307200, ColorFrameSize)
}

func TestLcdType(t *testing.T) {
	assert.Equal(t, LcdType(3), LcdEither)
	assert.True(t, LcdEither.Has(LcdMono))
	assert.True(t, LcdEither.Has(LcdColor))
	assert.False(t, LcdMono.Has(LcdColor))
	assert.False(t, LcdMono.Has(0))
	assert.Equal(t, "either", LcdEither.String())
}

func TestButtons(t *testing.T) {
	assert.Equal(t, Button(0xf), MonoButtons)
	assert.Equal(t, Button(0x7f00), ColorButtons)
	assert.Equal(t, MonoButtons, ButtonsFor(LcdMono))
	assert.Equal(t, MonoButtons|ColorButtons, ButtonsFor(LcdEither))
	assert.Equal(t, "mono0|ok", (MonoButton0 | ColorButtonOk).String())
	assert.Equal(t, "none", Button(0).String())
	assert.Equal(t, "menu|0x10000", (ColorButtonMenu | 0x10000).String())

	var seen []Button
	(MonoButton3 | ColorButtonUp).Each(func(b Button) { seen = append(seen, b) })
	assert.Equal(t, []Button{MonoButton3, ColorButtonUp}, seen)

	b, err := ParseButton(" Cancel ")
	require.NoError(t, err)
	assert.Equal(t, ColorButtonCancel, b)
	b, err = ParseButton("mono")
	require.NoError(t, err)
	assert.Equal(t, MonoButtons, b)
	_, err = ParseButton("select")
	assert.Error(t, err)
}

func TestSymbols(t *testing.T) {
	require.Len(t, Symbols, 14)
	ep := EntryPoints{}
	assert.Equal(t, Symbols, ep.Missing())
	assert.Len(t, ep.fields(), len(Symbols))
}
