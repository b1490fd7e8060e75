package animation

import "sync"

// Param identifies one continuous visual parameter of the control.
type Param int

const (
	ParamRotation Param = iota
	ParamBackgroundOpacity
	ParamDurationOpacity
	ParamAccumulationOpacity
	ParamAccumulationOffset
	paramCount
)

// String returns the parameter name used in logs and tool output.
func (param Param) String() string {
	switch param {
	case ParamRotation:
		return "rotation"
	case ParamBackgroundOpacity:
		return "background_opacity"
	case ParamDurationOpacity:
		return "duration_opacity"
	case ParamAccumulationOpacity:
		return "accumulation_opacity"
	case ParamAccumulationOffset:
		return "accumulation_offset"
	default:
		return "unknown"
	}
}

// Params lists every visual parameter in a stable order.
func Params() []Param {
	return []Param{
		ParamRotation,
		ParamBackgroundOpacity,
		ParamDurationOpacity,
		ParamAccumulationOpacity,
		ParamAccumulationOffset,
	}
}

// Values is a snapshot of the store.
type Values struct {
	Rotation            float64
	BackgroundOpacity   float64
	DurationOpacity     float64
	AccumulationOpacity float64
	AccumulationOffset  float64
	AccumulationText    string
}

// Claim is the ownership token a writer holds on a parameter.
// Only the most recent claim on a parameter may write it.
type Claim struct {
	param Param
	token uint64
}

// Store holds the visual parameters with a last-writer-wins rule.
type Store struct {
	mu       sync.Mutex
	values   [paramCount]float64
	owners   [paramCount]uint64
	revision uint64
	label    string
	onChange func()
}

// NewStore returns a store holding the idle display.
func NewStore() *Store {
	store := &Store{}
	store.values[ParamDurationOpacity] = 1
	return store
}

// SetOnChange registers a callback fired after every accepted write.
func (store *Store) SetOnChange(handler func()) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.onChange = handler
}

// Claim takes ownership of param, superseding every earlier claim.
func (store *Store) Claim(param Param) Claim {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.revision++
	store.owners[param] = store.revision
	return Claim{param: param, token: store.revision}
}

// Write stores value if claim still owns its parameter.
func (store *Store) Write(claim Claim, value float64) bool {
	store.mu.Lock()
	if store.owners[claim.param] != claim.token {
		store.mu.Unlock()
		return false
	}
	store.values[claim.param] = value
	handler := store.onChange
	store.mu.Unlock()

	if handler != nil {
		handler()
	}
	return true
}

// Set claims param and writes value in one step.
func (store *Store) Set(param Param, value float64) {
	store.Write(store.Claim(param), value)
}

// Value returns the current value of param.
func (store *Store) Value(param Param) float64 {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.values[param]
}

// SetLabel replaces the accumulation label text.
func (store *Store) SetLabel(text string) {
	store.mu.Lock()
	store.label = text
	handler := store.onChange
	store.mu.Unlock()

	if handler != nil {
		handler()
	}
}

// Label returns the accumulation label text.
func (store *Store) Label() string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.label
}

// Snapshot returns all values at once.
func (store *Store) Snapshot() Values {
	store.mu.Lock()
	defer store.mu.Unlock()
	return Values{
		Rotation:            store.values[ParamRotation],
		BackgroundOpacity:   store.values[ParamBackgroundOpacity],
		DurationOpacity:     store.values[ParamDurationOpacity],
		AccumulationOpacity: store.values[ParamAccumulationOpacity],
		AccumulationOffset:  store.values[ParamAccumulationOffset],
		AccumulationText:    store.label,
	}
}
