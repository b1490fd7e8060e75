package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreIsIdle(t *testing.T) {
	values := NewStore().Snapshot()
	assert.Equal(t, Values{DurationOpacity: 1}, values)
}

func TestStoreLastClaimWins(t *testing.T) {
	store := NewStore()

	first := store.Claim(ParamRotation)
	assert.True(t, store.Write(first, 5))

	second := store.Claim(ParamRotation)
	assert.False(t, store.Write(first, 7), "superseded claim must not write")
	assert.Equal(t, 5.0, store.Value(ParamRotation))

	assert.True(t, store.Write(second, 9))
	assert.Equal(t, 9.0, store.Value(ParamRotation))
}

func TestStoreClaimsArePerParam(t *testing.T) {
	store := NewStore()
	rotation := store.Claim(ParamRotation)
	store.Set(ParamBackgroundOpacity, 0.3)

	assert.True(t, store.Write(rotation, 12))
	assert.Equal(t, 0.3, store.Value(ParamBackgroundOpacity))
}

func TestStoreOnChange(t *testing.T) {
	store := NewStore()
	changes := 0
	store.SetOnChange(func() { changes++ })

	store.Set(ParamAccumulationOffset, 10)
	store.SetLabel("+10")
	stale := store.Claim(ParamAccumulationOffset)
	store.Claim(ParamAccumulationOffset)
	store.Write(stale, 20)

	assert.Equal(t, 2, changes, "rejected writes do not notify")
	assert.Equal(t, "+10", store.Label())
}

func TestParamNames(t *testing.T) {
	names := map[string]bool{}
	for _, param := range Params() {
		names[param.String()] = true
	}
	assert.Len(t, names, int(paramCount))
	assert.Equal(t, "unknown", Param(99).String())
}
