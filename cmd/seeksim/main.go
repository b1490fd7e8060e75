// Command seeksim replays a tap script against a seek control on a virtual
// clock and prints the resulting events and sampled visual parameters.
//
//	go run ./cmd/seeksim -interval 5 -taps 0,0.3 -until 1.5 -sample 50ms
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"seekbutton/internal/core/clock"
	"seekbutton/internal/core/model"
	"seekbutton/internal/core/sequencer"
	"seekbutton/internal/ui/animation"
)

var (
	interval = flag.Int("interval", model.DefaultInterval, "seconds added per tap")
	settle   = flag.Duration("settle", model.DefaultSettleDelay, "settle delay per tap")
	taps     = flag.String("taps", "0", "comma separated tap times in seconds")
	until    = flag.Float64("until", 1.5, "simulated seconds to run")
	frame    = flag.Duration("frame", animation.DefaultFrame, "animation frame step")
	sample   = flag.Duration("sample", 50*time.Millisecond, "parameter sampling period, 0 prints events only")
)

type simulation struct {
	Config model.SeekConfig
	Taps   []time.Duration
	Until  time.Duration
	Frame  time.Duration
	Sample time.Duration
}

func main() {
	flag.Parse()

	tapTimes, err := parseTaps(*taps)
	if err != nil {
		slog.Error("invalid -taps", "error", err)
		os.Exit(2)
	}

	run := simulation{
		Config: model.SeekConfig{Interval: *interval, SettleDelay: *settle}.Normalized(),
		Taps:   tapTimes,
		Until:  time.Duration(*until * float64(time.Second)),
		Frame:  *frame,
		Sample: *sample,
	}
	run.execute(os.Stdout)
}

func parseTaps(value string) ([]time.Duration, error) {
	var result []time.Duration
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		seconds, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("parse tap %q: %w", field, err)
		}
		if seconds < 0 {
			return nil, fmt.Errorf("tap %q is negative", field)
		}
		result = append(result, time.Duration(seconds*float64(time.Second)))
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result, nil
}

func (run simulation) execute(out io.Writer) {
	start := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	manual := clock.NewManual(start)
	store := animation.NewStore()
	timeline := animation.NewTimeline(store, manual)
	bursts := animation.NewBurstScheduler(timeline, animation.DefaultConfig())

	seeks := 0
	seq := sequencer.New(run.Config, manual, bursts, func(seconds int) {
		seeks += seconds
	})
	events := seq.Subscribe(64)
	defer seq.Close()

	for _, tap := range run.Taps {
		manual.AfterFunc(tap, seq.Activate)
	}

	flush := func() {
		for {
			select {
			case event := <-events:
				fmt.Fprintf(out, "%s event %-13s burst=%d text=%q pending=%d\n",
					offset(event.At.Sub(start)), event.Type, event.Burst, event.AccumulatedText, event.Pending)
			default:
				return
			}
		}
	}

	deadline := start.Add(run.Until)
	if run.Sample <= 0 {
		timeline.RunUntil(deadline, run.Frame)
		flush()
	} else {
		for at := start; !at.After(deadline); at = at.Add(run.Sample) {
			timeline.RunUntil(at, run.Frame)
			flush()
			fmt.Fprintf(out, "%s %s\n", offset(at.Sub(start)), formatValues(store.Snapshot()))
		}
	}
	fmt.Fprintf(out, "total seek %ds\n", seeks)
}

func offset(elapsed time.Duration) string {
	return fmt.Sprintf("t=%.3f", elapsed.Seconds())
}

func formatValues(values animation.Values) string {
	return fmt.Sprintf("rotation=%.1f background=%.2f duration=%.2f accumulation=%.2f offset=%.1f label=%q",
		values.Rotation,
		values.BackgroundOpacity,
		values.DurationOpacity,
		values.AccumulationOpacity,
		values.AccumulationOffset,
		values.AccumulationText,
	)
}
