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
	"strings"
	"sync"
	"time"

	"github.com/pulumi/pulumi/sdk/v3/go/auto/events"
	"github.com/pulumi/pulumi/sdk/v3/go/common/apitype"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"
)

// Step is one resource operation the engine reported.
type Step struct {
	Op   apitype.OpType
	URN  string
	Type string
}

// Name is the logical resource name, the last URN segment.
func (s Step) Name() string {
	if i := strings.LastIndex(s.URN, "::"); i >= 0 {
		return s.URN[i+2:]
	}
	return s.URN
}

// recorder drains an engine event stream, logging as it goes and keeping the resource steps
// and diagnostics for the summary.
type recorder struct {
	events chan events.EngineEvent
	stop   chan struct{}
	done   chan struct{}
	grace  time.Duration

	mu       sync.Mutex
	steps    []Step
	warnings []string
	failed   []string
}

func newRecorder() *recorder {
	r := &recorder{
		events: make(chan events.EngineEvent, eventBuffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
		grace:  streamGrace,
	}
	go r.run()
	return r
}

const (
	// streamGrace bounds how long Wait lets the recorder catch up once an operation has returned.
	streamGrace = 5 * time.Second
	eventBuffer = 64
)

// Wait blocks until the stream is closed, which the automation API does when an operation
// finishes. An operation that fails before the engine starts never closes it, so after the
// grace period Wait stops the recorder itself. It reports whether the stream was fully drained.
func (r *recorder) Wait() bool {
	select {
	case <-r.done:
		return true
	case <-time.After(r.grace):
		logging.V(5).Infof("event stream still open after %s", r.grace)
		close(r.stop)
		<-r.done
		return false
	}
}

func (r *recorder) run() {
	defer close(r.done)
	for {
		select {
		case e, ok := <-r.events:
			if !ok {
				return
			}
			r.handle(e)
		case <-r.stop:
			return
		}
	}
}

func (r *recorder) handle(e events.EngineEvent) {
	switch {
	case e.ResourcePreEvent != nil:
		md := e.ResourcePreEvent.Metadata
		if md.Type == "pulumi:pulumi:Stack" || md.Op == apitype.OpSame {
			return
		}
		logging.V(5).Infof("%s %s", md.Op, md.URN)
		r.mu.Lock()
		r.steps = append(r.steps, Step{Op: md.Op, URN: md.URN, Type: md.Type})
		r.mu.Unlock()

	case e.ResOpFailedEvent != nil:
		md := e.ResOpFailedEvent.Metadata
		logging.Warningf("%s %s failed", md.Op, md.URN)
		r.mu.Lock()
		r.failed = append(r.failed, md.URN)
		r.mu.Unlock()

	case e.DiagnosticEvent != nil:
		d := e.DiagnosticEvent
		msg := strings.TrimSpace(d.Message)
		switch d.Severity {
		case "warning":
			logging.Warningf("%s", msg)
			r.mu.Lock()
			r.warnings = append(r.warnings, msg)
			r.mu.Unlock()
		case "error":
			logging.Errorf("%s", msg)
		default:
			logging.V(7).Infof("%s: %s", d.Severity, msg)
		}

	case e.SummaryEvent != nil:
		logging.V(3).Infof("operation finished in %ds", e.SummaryEvent.DurationSeconds)
	}
}

func (r *recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Step(nil), r.steps...)
}

func (r *recorder) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.warnings...)
}

func (r *recorder) Failed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.failed...)
}
