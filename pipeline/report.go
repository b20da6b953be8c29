// SPDX-License-Identifier: MIT

package pipeline

import (
	"time"

	"github.com/katalvlaran/fibernet/flow"
	"github.com/katalvlaran/fibernet/nearest"
	"github.com/katalvlaran/fibernet/prim_kruskal"
	"github.com/katalvlaran/fibernet/tsp"
)

// Stage names, also used as metric labels and log fields.
const (
	StageValidate = "validate"
	StageTree     = "tree"
	StageTour     = "tour"
	StageFlow     = "flow"
	StageNearest  = "nearest"
)

// Stage is the common part of every report section.
type Stage struct {
	Duration time.Duration `json:"duration" yaml:"duration"`
	Skipped  bool          `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Error    string        `json:"error,omitempty" yaml:"error,omitempty"`

	err error
}

// Err returns the stage failure, nil on success.
func (s Stage) Err() error { return s.err }

// OK reports whether the stage ran and succeeded.
func (s Stage) OK() bool { return !s.Skipped && s.err == nil }

func (s *Stage) fail(err error) {
	s.err = err
	s.Error = err.Error()
}

// TreeSection is the spanning tree stage outcome.
type TreeSection struct {
	Stage  `yaml:",inline"`
	Method string              `json:"method" yaml:"method"`
	Edges  []prim_kruskal.Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
	Cost   int64               `json:"cost" yaml:"cost"`
}

// TourSection is the tour stage outcome.
type TourSection struct {
	Stage    `yaml:",inline"`
	Tour     []int     `json:"tour,omitempty" yaml:"tour,omitempty"`
	Legs     []tsp.Leg `json:"legs,omitempty" yaml:"legs,omitempty"`
	Cost     int64     `json:"cost" yaml:"cost"`
	Polished bool      `json:"polished,omitempty" yaml:"polished,omitempty"`
}

// FlowSection is the max-flow stage outcome.
type FlowSection struct {
	Stage         `yaml:",inline"`
	Algorithm     string   `json:"algorithm" yaml:"algorithm"`
	Source        int      `json:"source" yaml:"source"`
	Sink          int      `json:"sink" yaml:"sink"`
	Value         int64    `json:"value" yaml:"value"`
	Augmentations int      `json:"augmentations" yaml:"augmentations"`
	Cut           flow.Cut `json:"cut" yaml:"cut"`
}

// NearestSection is the nearest-center stage outcome.
type NearestSection struct {
	Stage       `yaml:",inline"`
	Assignments []nearest.Assignment `json:"assignments,omitempty" yaml:"assignments,omitempty"`
}

// Report collects every stage for one case.
type Report struct {
	Case       string         `json:"case" yaml:"case"`
	Nodes      int            `json:"nodes" yaml:"nodes"`
	Validation Stage          `json:"validation" yaml:"validation"`
	Tree       TreeSection    `json:"tree" yaml:"tree"`
	Tour       TourSection    `json:"tour" yaml:"tour"`
	Flow       FlowSection    `json:"flow" yaml:"flow"`
	Nearest    NearestSection `json:"nearest" yaml:"nearest"`
	Elapsed    time.Duration  `json:"elapsed" yaml:"elapsed"`
}

// Failed lists the stages that returned an error, in pipeline order.
func (r *Report) Failed() []string {
	var out []string
	for _, s := range []struct {
		name string
		st   Stage
	}{
		{StageValidate, r.Validation},
		{StageTree, r.Tree.Stage},
		{StageTour, r.Tour.Stage},
		{StageFlow, r.Flow.Stage},
		{StageNearest, r.Nearest.Stage},
	} {
		if s.st.err != nil {
			out = append(out, s.name)
		}
	}

	return out
}

// OK reports whether every stage ran and none failed.
func (r *Report) OK() bool {
	for _, st := range []Stage{r.Validation, r.Tree.Stage, r.Tour.Stage, r.Flow.Stage, r.Nearest.Stage} {
		if !st.OK() {
			return false
		}
	}
	return true
}
