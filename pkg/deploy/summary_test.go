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
	"testing"
	"time"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/common/apitype"
	"github.com/stretchr/testify/assert"
)

func TestFromUpdateSummary(t *testing.T) {
	t.Parallel()

	end := "2024-03-01T10:01:30Z"
	changes := map[string]int{"create": 2, "same": 1}
	s := fromUpdateSummary(auto.UpdateSummary{
		Kind:            "update",
		Result:          "succeeded",
		StartTime:       "2024-03-01T10:00:00Z",
		EndTime:         &end,
		ResourceChanges: &changes,
	})

	assert.Equal(t, "update", s.Kind)
	assert.Equal(t, "succeeded", s.Result)
	assert.Equal(t, 90*time.Second, s.Duration)
	assert.Equal(t, changes, s.Changes)
	assert.Equal(t, 2, s.Changed())
}

func TestFromUpdateSummaryToleratesMissingTimes(t *testing.T) {
	t.Parallel()

	s := fromUpdateSummary(auto.UpdateSummary{Kind: "destroy", Result: "failed"})
	assert.True(t, s.Started.IsZero())
	assert.Zero(t, s.Duration)
	assert.Empty(t, s.Changes)
	assert.Equal(t, "destroy failed; 0 resources changed", s.String())
}

func TestSummaryString(t *testing.T) {
	t.Parallel()

	s := fromPreview(map[apitype.OpType]int{apitype.OpCreate: 2, apitype.OpSame: 1})
	s.Warnings = []string{"quota close to limit"}
	assert.Equal(t, "preview succeeded: 2 create, 1 same; 2 resources changed; 1 warning", s.String())
}
