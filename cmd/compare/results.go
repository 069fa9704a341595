package main

import (
	"fmt"
	"github.com/janpfeifer/mouseGo/internal/sim"
	"strings"
	"sync"
	"time"
)

// legTotals accumulates the steps of a navigator on the completed missions.
type legTotals struct {
	completed, failed       int
	search, returned, final int
}

type Results struct {
	mu            sync.Mutex
	start         time.Time
	totals        [2]legTotals
	wins          [2]int
	draws         int
	played, total int
}

func (r *Results) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stringLocked()
}

func (r *Results) stringLocked() string {
	var parts []string
	parts = append(parts, fmt.Sprintf("Ran %d of %d: ", r.played, r.total))
	for navIdx := range 2 {
		parts = append(parts, fmt.Sprintf("Nav-%d: %d fastest, %d failed / ",
			navIdx+1, r.wins[navIdx], r.totals[navIdx].failed))
	}
	parts = append(parts, fmt.Sprintf("%d draws - %s", r.draws, time.Since(r.start).Round(time.Millisecond)))
	return strings.Join(parts, "")
}

// Report with the average steps of each leg, over the completed missions.
func (r *Results) Report(configs [2]string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sb strings.Builder
	sb.WriteString(r.stringLocked())
	sb.WriteString("\n")
	for navIdx, config := range configs {
		t := r.totals[navIdx]
		fmt.Fprintf(&sb, "\nNav-%d %q: %d completed, %d failed", navIdx+1, config, t.completed, t.failed)
		if t.completed > 0 {
			n := float64(t.completed)
			fmt.Fprintf(&sb, "\n\tAverage steps: search=%.1f, return=%.1f, final=%.1f",
				float64(t.search)/n, float64(t.returned)/n, float64(t.final)/n)
		}
	}
	return sb.String()
}

// record the results of both navigators on one maze. The fastest is the one with the fewest steps to
// reach the goal in its last run (final run if it has one, search run otherwise).
func (r *Results) record(results [2]*sim.MissionResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.played++
	var best [2]int
	for navIdx, mr := range results {
		if mr == nil {
			r.totals[navIdx].failed++
			best[navIdx] = -1
			continue
		}
		t := &r.totals[navIdx]
		t.completed++
		t.search += mr.Search.Steps
		t.returned += mr.Return.Steps
		best[navIdx] = mr.Search.Steps
		if mr.HasFinal {
			t.final += mr.Final.Steps
			best[navIdx] = mr.Final.Steps
		}
	}
	switch {
	case best[0] == best[1]:
		r.draws++
	case best[1] < 0 || (best[0] >= 0 && best[0] < best[1]):
		r.wins[0]++
	default:
		r.wins[1]++
	}
}
