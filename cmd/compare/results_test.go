package main

import (
	"github.com/janpfeifer/mouseGo/internal/sim"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestResults(t *testing.T) {
	r := &Results{start: time.Now(), total: 4}
	searchOnly := func(steps int) *sim.MissionResult {
		return &sim.MissionResult{Search: sim.Result{Steps: steps}, Return: sim.Result{Steps: steps}}
	}
	withFinal := func(search, final int) *sim.MissionResult {
		mr := searchOnly(search)
		mr.HasFinal = true
		mr.Final.Steps = final
		return mr
	}

	r.record([2]*sim.MissionResult{withFinal(50, 20), searchOnly(30)}) // Nav-1 faster on final run.
	r.record([2]*sim.MissionResult{withFinal(50, 30), searchOnly(30)}) // Draw.
	r.record([2]*sim.MissionResult{nil, searchOnly(30)})               // Nav-1 failed.
	r.record([2]*sim.MissionResult{nil, nil})                          // Both failed: draw.

	assert.Equal(t, [2]int{1, 1}, r.wins)
	assert.Equal(t, 2, r.draws)
	assert.Equal(t, 4, r.played)
	assert.Equal(t, legTotals{completed: 2, failed: 2, search: 100, returned: 100, final: 50}, r.totals[0])
	assert.Equal(t, legTotals{completed: 3, failed: 1, search: 90, returned: 90}, r.totals[1])

	report := r.Report([2]string{"adachi", "lefthand"})
	assert.Contains(t, report, "Ran 4 of 4: Nav-1: 1 fastest, 2 failed / Nav-2: 1 fastest, 1 failed / 2 draws")
	assert.Contains(t, report, "search=50.0, return=50.0, final=25.0")
	assert.Contains(t, report, "search=30.0, return=30.0, final=0.0")
}
