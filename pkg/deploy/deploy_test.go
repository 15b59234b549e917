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
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/events"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optrefresh"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optremove"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
	"github.com/pulumi/pulumi/sdk/v3/go/common/apitype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/program"
)

// fakeWorkspace records plugin installs and stack removals. Every other Workspace method panics.
type fakeWorkspace struct {
	auto.Workspace

	plugins    []string
	removed    []string
	installErr error
}

func (w *fakeWorkspace) InstallPlugin(_ context.Context, name, version string) error {
	w.plugins = append(w.plugins, name+"@"+version)
	return w.installErr
}

func (w *fakeWorkspace) RemoveStack(_ context.Context, name string, _ ...optremove.Option) error {
	w.removed = append(w.removed, name)
	return nil
}

// fakeStack plays back canned engine events and results.
type fakeStack struct {
	ws     *fakeWorkspace
	config auto.ConfigMap
	events []events.EngineEvent
	err    error

	preview  optpreview.Options
	up       optup.Options
	refresh  optrefresh.Options
	destroy  optdestroy.Options
	outputs  auto.OutputMap
	summary  auto.UpdateSummary
	previews map[apitype.OpType]int
}

func newFakeStack() *fakeStack {
	return &fakeStack{ws: &fakeWorkspace{}}
}

func (s *fakeStack) Name() string               { return "dev" }
func (s *fakeStack) Workspace() auto.Workspace { return s.ws }

func (s *fakeStack) SetAllConfig(_ context.Context, cfg auto.ConfigMap) error {
	s.config = cfg
	return nil
}

// emit sends the canned events to every stream and closes them, as the engine does when an
// operation ends.
func (s *fakeStack) emit(streams []chan<- events.EngineEvent) {
	for _, ch := range streams {
		for _, e := range s.events {
			ch <- e
		}
		close(ch)
	}
}

func (s *fakeStack) Preview(_ context.Context, opts ...optpreview.Option) (auto.PreviewResult, error) {
	for _, o := range opts {
		o.ApplyOption(&s.preview)
	}
	s.emit(s.preview.EventStreams)
	return auto.PreviewResult{ChangeSummary: s.previews}, s.err
}

func (s *fakeStack) Up(_ context.Context, opts ...optup.Option) (auto.UpResult, error) {
	for _, o := range opts {
		o.ApplyOption(&s.up)
	}
	s.emit(s.up.EventStreams)
	return auto.UpResult{Outputs: s.outputs, Summary: s.summary}, s.err
}

func (s *fakeStack) Refresh(_ context.Context, opts ...optrefresh.Option) (auto.RefreshResult, error) {
	for _, o := range opts {
		o.ApplyOption(&s.refresh)
	}
	s.emit(s.refresh.EventStreams)
	return auto.RefreshResult{Summary: s.summary}, s.err
}

func (s *fakeStack) Destroy(_ context.Context, opts ...optdestroy.Option) (auto.DestroyResult, error) {
	for _, o := range opts {
		o.ApplyOption(&s.destroy)
	}
	s.emit(s.destroy.EventStreams)
	return auto.DestroyResult{Summary: s.summary}, s.err
}

func (s *fakeStack) Outputs(context.Context) (auto.OutputMap, error) {
	return s.outputs, s.err
}

func testOptions() Options {
	settings := program.DefaultSettings()
	return Options{
		Stack:    "dev",
		Region:   "us-south",
		APIKey:   "not-a-real-key",
		Settings: &settings,
	}
}

func TestNewWithStackWritesConfig(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	_, err := NewWithStack(context.Background(), s, testOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"ibmcloud@v1.85.0"}, s.ws.plugins)
	assert.Equal(t, auto.ConfigValue{Value: "us-south"}, s.config["ibmcloud:region"])
	assert.Equal(t, auto.ConfigValue{Value: "not-a-real-key", Secret: true}, s.config["ibmcloud:ibmcloudApiKey"])
	assert.Equal(t, auto.ConfigValue{Value: "standard"}, s.config["basic-go:storagePlan"])
	assert.Equal(t, auto.ConfigValue{Value: `["pulumi","example","go"]`}, s.config["basic-go:tags"])
	assert.Equal(t, auto.ConfigValue{Value: "false"}, s.config["basic-go:networking"])
}

func TestNewWithStackOmitsUnsetProviderConfig(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Region, opts.APIKey, opts.Project = "", "", "custom"
	opts.SkipPluginInstall = true

	s := newFakeStack()
	_, err := NewWithStack(context.Background(), s, opts)
	require.NoError(t, err)

	assert.Empty(t, s.ws.plugins)
	assert.NotContains(t, s.config, "ibmcloud:region")
	assert.NotContains(t, s.config, "ibmcloud:ibmcloudApiKey")
	assert.Contains(t, s.config, "custom:storagePlan")
}

func TestNewWithStackKeepsStackSettings(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Settings = nil

	s := newFakeStack()
	_, err := NewWithStack(context.Background(), s, opts)
	require.NoError(t, err)

	assert.Equal(t, auto.ConfigMap{
		"ibmcloud:region":         {Value: "us-south"},
		"ibmcloud:ibmcloudApiKey": {Value: "not-a-real-key", Secret: true},
	}, s.config)
}

func TestNewWithStackRejectsBadOptions(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.Stack = ""
	_, err := NewWithStack(context.Background(), newFakeStack(), opts)
	assert.ErrorContains(t, err, "stack name")

	opts = testOptions()
	opts.Parallel = -1
	_, err = NewWithStack(context.Background(), newFakeStack(), opts)
	assert.ErrorContains(t, err, "parallel")

	opts = testOptions()
	opts.Settings.StoragePlan = ""
	_, err = NewWithStack(context.Background(), newFakeStack(), opts)
	assert.ErrorContains(t, err, "storagePlan")
}

func TestNewWithStackPluginFailure(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	s.ws.installErr = errors.New("offline")
	_, err := NewWithStack(context.Background(), s, testOptions())
	assert.ErrorContains(t, err, "offline")
	assert.Nil(t, s.config)
}

func TestStackName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "dev", Options{Stack: "dev"}.StackName())
	assert.Equal(t, "acme/basic-go/dev", Options{Org: "acme", Stack: "dev"}.StackName())
	assert.Equal(t, "acme/other/dev", Options{Org: "acme", Project: "other", Stack: "dev"}.StackName())
}

func TestPreview(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	s.previews = map[apitype.OpType]int{apitype.OpCreate: 2}
	s.events = []events.EngineEvent{
		preEvent(apitype.OpCreate, groupURN, "ibmcloud:index/resourceGroup:ResourceGroup"),
		preEvent(apitype.OpCreate, storageURN, "ibmcloud:index/resourceInstance:ResourceInstance"),
	}

	opts := testOptions()
	opts.Refresh = true
	opts.Parallel = 4
	var progress bytes.Buffer
	opts.Progress = &progress
	d, err := NewWithStack(context.Background(), s, opts)
	require.NoError(t, err)

	sum, err := d.Preview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "preview", sum.Kind)
	assert.Equal(t, 2, sum.Changed())
	assert.Len(t, sum.Steps, 2)

	assert.True(t, s.preview.Refresh)
	assert.Equal(t, 4, s.preview.Parallel)
	assert.Len(t, s.preview.ProgressStreams, 1)
	assert.Contains(t, s.preview.Message, "ibmcloud-basic ")
}

func TestPreviewFailureNamesFailedResources(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	s.err = errors.New("exit status 255")
	s.events = []events.EngineEvent{failedEvent(groupURN)}

	d, err := NewWithStack(context.Background(), s, testOptions())
	require.NoError(t, err)

	_, err = d.Preview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "previewing stack dev")
	assert.Contains(t, err.Error(), groupURN)
}

func TestUpReturnsOutputs(t *testing.T) {
	t.Parallel()

	changes := map[string]int{"create": 2}
	s := newFakeStack()
	s.summary = auto.UpdateSummary{Kind: "update", Result: "succeeded", ResourceChanges: &changes}
	s.outputs = auto.OutputMap{"resourceGroupName": {Value: "pulumi-example-rg-dev"}}
	s.events = []events.EngineEvent{diagEvent("warning", "tag limit")}

	opts := testOptions()
	opts.Message = "first deploy"
	d, err := NewWithStack(context.Background(), s, opts)
	require.NoError(t, err)

	sum, err := d.Up(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "update", sum.Kind)
	assert.Equal(t, 2, sum.Changed())
	assert.Equal(t, []string{"tag limit"}, sum.Warnings)
	assert.Equal(t, "pulumi-example-rg-dev", sum.Outputs["resourceGroupName"].Value)
	assert.Equal(t, "first deploy", s.up.Message)
	assert.False(t, s.up.Refresh)
	assert.Empty(t, s.up.ProgressStreams)
}

func TestUpFailureNamesFailedResources(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	s.err = errors.New("exit status 255")
	s.events = []events.EngineEvent{failedEvent(storageURN)}

	d, err := NewWithStack(context.Background(), s, testOptions())
	require.NoError(t, err)

	_, err = d.Up(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "updating stack dev")
	assert.Contains(t, err.Error(), storageURN)
	assert.Contains(t, err.Error(), "exit status 255")
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	s.summary = auto.UpdateSummary{Kind: "refresh", Result: "succeeded"}

	d, err := NewWithStack(context.Background(), s, testOptions())
	require.NoError(t, err)

	sum, err := d.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "refresh", sum.Kind)
	assert.Zero(t, sum.Changed())
}

func TestDestroy(t *testing.T) {
	t.Parallel()

	changes := map[string]int{"delete": 2}
	s := newFakeStack()
	s.summary = auto.UpdateSummary{Kind: "destroy", Result: "succeeded", ResourceChanges: &changes}

	d, err := NewWithStack(context.Background(), s, testOptions())
	require.NoError(t, err)

	sum, err := d.Destroy(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Changed())
	assert.Empty(t, s.ws.removed)

	_, err = d.Destroy(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"dev"}, s.ws.removed)
}

func TestDestroyFailureKeepsStack(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	s.err = errors.New("resource group not empty")

	d, err := NewWithStack(context.Background(), s, testOptions())
	require.NoError(t, err)

	_, err = d.Destroy(context.Background(), true)
	assert.ErrorContains(t, err, "destroying stack dev")
	assert.Empty(t, s.ws.removed)
}

func TestOutputs(t *testing.T) {
	t.Parallel()

	s := newFakeStack()
	s.outputs = auto.OutputMap{"cosInstanceId": {Value: "cos-1"}}

	d, err := NewWithStack(context.Background(), s, testOptions())
	require.NoError(t, err)

	outs, err := d.Outputs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, s.outputs, outs)

	s.err = errors.New("no stack")
	_, err = d.Outputs(context.Background())
	assert.ErrorContains(t, err, "reading outputs of stack dev")
}
