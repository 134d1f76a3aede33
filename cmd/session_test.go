package cmd

import (
	"strings"
	"testing"

	"github.com/bnema/gamepanel/lcd"
	"github.com/bnema/gamepanel/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHello(t *testing.T) {
	t.Run("writes text on a mono display", func(t *testing.T) {
		d := &fakeDevice{}
		reg := useFakeDevice(t, d)
		cfg := testConfig(t, "[applet]\nname = \"from config\"\n")

		_, err := executeCommand(t, "hello", "--config", cfg, "--capability", "mono", "--text", "Hi there", "--duration", "30ms")
		require.NoError(t, err)

		assert.Equal(t, "from config", d.appName)
		assert.Equal(t, []string{"Hi there"}, d.texts)
		assert.Empty(t, d.titles)
		assert.GreaterOrEqual(t, d.updates, 1)
		assert.Equal(t, 1, d.shutdowns)
		assert.False(t, reg.Active(), "session must be released when the command returns")
	})

	t.Run("sets title and text on either display", func(t *testing.T) {
		d := &fakeDevice{}
		useFakeDevice(t, d)
		cfg := testConfig(t, "")

		_, err := executeCommand(t, "hello", "--config", cfg, "--name", "flag name", "--title", "Demo", "--duration", "10ms")
		require.NoError(t, err)

		assert.Equal(t, "flag name", d.appName)
		assert.Equal(t, []string{"Hello, world!", "Hello, world!"}, d.texts)
		assert.Equal(t, []string{"Demo"}, d.titles)
	})

	t.Run("quit button ends an unlimited run", func(t *testing.T) {
		d := &fakeDevice{pressed: sys.MonoButton3}
		useFakeDevice(t, d)
		cfg := testConfig(t, "")

		_, err := executeCommand(t, "hello", "--config", cfg, "--capability", "mono", "--duration", "0")
		require.NoError(t, err)
		assert.Equal(t, 1, d.shutdowns)
	})

	t.Run("no device without wait", func(t *testing.T) {
		d := &fakeDevice{offline: 1}
		useFakeDevice(t, d)
		cfg := testConfig(t, "")

		_, err := executeCommand(t, "hello", "--config", cfg, "--duration", "10ms")
		require.ErrorIs(t, err, lcd.ErrNotConnected)
		assert.Equal(t, 1, d.inits)
		assert.Equal(t, 1, d.shutdowns)
	})

	t.Run("wait retries until a device shows up", func(t *testing.T) {
		d := &fakeDevice{offline: 2}
		useFakeDevice(t, d)
		cfg := testConfig(t, "")

		_, err := executeCommand(t, "hello", "--config", cfg, "--wait", "10s", "--duration", "10ms")
		require.NoError(t, err)
		assert.Equal(t, 3, d.inits)
		assert.Equal(t, 3, d.shutdowns, "each failed attempt and the final close shut down once")
	})

	t.Run("invalid capability flag", func(t *testing.T) {
		d := &fakeDevice{}
		useFakeDevice(t, d)
		cfg := testConfig(t, "")

		_, err := executeCommand(t, "hello", "--config", cfg, "--capability", "plasma")
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "unknown capability"))
		assert.Zero(t, d.inits)
	})
}

func TestBlink(t *testing.T) {
	d := &fakeDevice{}
	useFakeDevice(t, d)
	cfg := testConfig(t, "[display]\nframe_rate = 60\n")

	_, err := executeCommand(t, "blink", "--config", cfg, "--capability", "either", "--period", "20ms", "--duration", "100ms")
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(d.monoFrames), 2)
	require.GreaterOrEqual(t, len(d.colorFrames), 2)
	assert.Equal(t, len(d.monoFrames), len(d.colorFrames))

	for _, px := range d.monoFrames[0] {
		require.Equal(t, byte(0xff), px)
	}
	for _, px := range d.monoFrames[1] {
		require.Equal(t, byte(0x00), px)
	}
	assert.Equal(t, []byte{0, 0, 0, 0xff}, d.colorFrames[1][:4], "dark color frame stays opaque")
}
