// Copyright 2024, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package deploy

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/common/apitype"
)

// Summary describes the outcome of one stack operation.
type Summary struct {
	Kind     string
	Result   string
	Started  time.Time
	Duration time.Duration
	// Changes counts resources by operation, for example "create": 2.
	Changes  map[string]int
	Steps    []Step
	Warnings []string
	Outputs  auto.OutputMap
}

// Changed is the number of resources the operation touched.
func (s *Summary) Changed() int {
	n := 0
	for op, count := range s.Changes {
		if op != string(apitype.OpSame) {
			n += count
		}
	}
	return n
}

func (s *Summary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", s.Kind, s.Result)
	if s.Duration > 0 {
		fmt.Fprintf(&b, " in %s", s.Duration.Round(time.Second))
	}
	if !s.Started.IsZero() {
		fmt.Fprintf(&b, " (started %s)", humanize.Time(s.Started))
	}

	ops := make([]string, 0, len(s.Changes))
	for op := range s.Changes {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	parts := make([]string, 0, len(ops))
	for _, op := range ops {
		parts = append(parts, fmt.Sprintf("%s %s", humanize.Comma(int64(s.Changes[op])), op))
	}
	if len(parts) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(parts, ", "))
	}
	fmt.Fprintf(&b, "; %s changed", english.Plural(s.Changed(), "resource", ""))
	if len(s.Warnings) > 0 {
		fmt.Fprintf(&b, "; %s", english.Plural(len(s.Warnings), "warning", ""))
	}
	return b.String()
}

// fromUpdateSummary fills in the kind, result, timing and change counts of an update, refresh
// or destroy.
func fromUpdateSummary(u auto.UpdateSummary) *Summary {
	s := &Summary{
		Kind:    u.Kind,
		Result:  u.Result,
		Changes: map[string]int{},
	}
	if start, err := time.Parse(time.RFC3339, u.StartTime); err == nil {
		s.Started = start
		if u.EndTime != nil {
			if end, err := time.Parse(time.RFC3339, *u.EndTime); err == nil && end.After(start) {
				s.Duration = end.Sub(start)
			}
		}
	}
	if u.ResourceChanges != nil {
		for op, count := range *u.ResourceChanges {
			s.Changes[op] = count
		}
	}
	return s
}

// fromPreview turns a preview's change summary into a Summary.
func fromPreview(changes map[apitype.OpType]int) *Summary {
	s := &Summary{
		Kind:    "preview",
		Result:  "succeeded",
		Changes: make(map[string]int, len(changes)),
	}
	for op, count := range changes {
		s.Changes[string(op)] = count
	}
	return s
}

func (s *Summary) record(r *recorder) {
	s.Steps = r.Steps()
	s.Warnings = r.Warnings()
}
