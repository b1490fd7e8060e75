package playback

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeekClampsToBounds(t *testing.T) {
	position := New(time.Minute)

	assert.Equal(t, 10*time.Second, position.Seek(10))
	assert.Equal(t, 50*time.Second, position.Seek(40))
	assert.Equal(t, time.Minute, position.Seek(30))
	assert.Equal(t, 1.0, position.Progress())

	assert.Equal(t, time.Duration(0), position.Seek(-600))
}

func TestResetAndString(t *testing.T) {
	position := New(5 * time.Minute)
	position.Seek(75)
	assert.Equal(t, "01:15 / 05:00", position.String())

	position.Reset()
	assert.Equal(t, time.Duration(0), position.Current())
	assert.Equal(t, 0.0, position.Progress())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    time.Duration
		expected string
	}{
		{"zero", 0, "00:00"},
		{"negative", -time.Second, "00:00"},
		{"seconds", 42 * time.Second, "00:42"},
		{"minutes", 12*time.Minute + 3*time.Second, "12:03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.input))
		})
	}
}

func TestEmptyItem(t *testing.T) {
	position := New(-time.Second)
	assert.Equal(t, time.Duration(0), position.Duration())
	assert.Equal(t, 1.0, position.Progress())
}
