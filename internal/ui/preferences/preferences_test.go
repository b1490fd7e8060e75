package preferences

import (
	"testing"
	"time"

	"seekbutton/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestSeekConfigNormalizes(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, model.DefaultSeekConfig(), settings.SeekConfig())

	settings.Interval = 0
	settings.SettleDelay = 0
	assert.Equal(t, model.DefaultSeekConfig(), settings.SeekConfig())
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidInterval(5))
	assert.False(t, ValidInterval(0))
	assert.False(t, ValidInterval(MaxInterval+1))

	assert.True(t, ValidSettleDelay(800*time.Millisecond))
	assert.False(t, ValidSettleDelay(10*time.Millisecond))
	assert.False(t, ValidSettleDelay(time.Minute))
}

func TestWindowSaveCollectsValidEntries(t *testing.T) {
	app := test.NewTempApp(t)

	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = append(saved, settings)
	})

	prefs.interval.SetText("30")
	prefs.settleDelay.SetText("20")
	prefs.mediaLength.SetText("abc")
	prefs.handleSave()

	if assert.Len(t, saved, 1) {
		assert.Equal(t, 30, saved[0].Interval)
		assert.Equal(t, model.DefaultSettleDelay, saved[0].SettleDelay, "out of range delay is ignored")
		assert.Equal(t, 5*time.Minute, saved[0].MediaLength)
	}
}

func TestUpdateSettingsFillsEntries(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, DefaultSettings(), nil)

	prefs.UpdateSettings(Settings{Interval: 15, SettleDelay: 1200 * time.Millisecond, MediaLength: 90 * time.Minute})
	assert.Equal(t, "15", prefs.interval.Text)
	assert.Equal(t, "1200", prefs.settleDelay.Text)
	assert.Equal(t, "90", prefs.mediaLength.Text)
}
