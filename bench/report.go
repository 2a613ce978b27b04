// SPDX-License-Identifier: MIT

package bench

import (
	"strconv"
	"time"
)

// Stat aggregates the samples of one op.
type Stat struct {
	Op     string
	Count  int
	Errors int
	Total  time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Mean is Total/Count, zero for an empty Stat.
func (s Stat) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// ReportHeaders names the columns of Stat.Row.
var ReportHeaders = []string{"op", "count", "errors", "total", "min", "mean", "max"}

// Row formats s for a report table.
func (s Stat) Row() []string {
	return []string{
		s.Op,
		strconv.Itoa(s.Count),
		strconv.Itoa(s.Errors),
		s.Total.String(),
		s.Min.String(),
		s.Mean().String(),
		s.Max.String(),
	}
}

// Summarize groups samples by op, in order of first appearance.
func Summarize(samples []Sample) []Stat {
	var (
		out   []Stat
		index = make(map[string]int)
	)
	for _, smp := range samples {
		i, ok := index[smp.Op]
		if !ok {
			i = len(out)
			index[smp.Op] = i
			out = append(out, Stat{Op: smp.Op, Min: smp.Duration, Max: smp.Duration})
		}
		st := &out[i]
		st.Count++
		st.Total += smp.Duration
		st.Min = min(st.Min, smp.Duration)
		st.Max = max(st.Max, smp.Duration)
		if smp.Err != nil {
			st.Errors++
		}
	}

	return out
}

// Report summarises the Timer's samples.
func (t *Timer) Report() []Stat { return Summarize(t.Samples()) }
