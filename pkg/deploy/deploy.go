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

// Package deploy drives the example program through the Pulumi Automation API. The program runs
// inline in this process; the pulumi CLI and the ibmcloud provider plugin do the actual work.
package deploy

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optdestroy"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optpreview"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optrefresh"
	"github.com/pulumi/pulumi/sdk/v3/go/auto/optup"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/ibmcloud"
	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/program"
)

// DefaultProject is the project name the inline program runs under.
const DefaultProject = "basic-go"

// Provider config keys.
const (
	regionKey = ibmcloud.PackageName + ":region"
	apiKeyKey = ibmcloud.PackageName + ":ibmcloudApiKey"
)

// Options configures a Deployer.
type Options struct {
	// Org qualifies the stack name for the Pulumi Cloud backend. Empty for self-managed backends.
	Org     string
	Project string
	Stack   string
	// WorkDir holds Pulumi.yaml and the stack config files. A temporary directory when empty.
	WorkDir string

	Region string
	APIKey string
	// Settings replace the program settings held in stack config. When nil, the stack keeps
	// whatever its config file already sets.
	Settings *program.Settings

	// Parallel bounds concurrent resource operations; 0 lets the engine decide.
	Parallel int
	// Refresh refreshes state before preview and up.
	Refresh bool
	// Message is recorded with each update. A unique one is generated when empty.
	Message string
	// Progress receives the engine's human readable output.
	Progress io.Writer
	// SkipPluginInstall leaves provider plugin acquisition to the engine.
	SkipPluginInstall bool
}

// Stack is the part of auto.Stack the Deployer uses.
type Stack interface {
	Name() string
	Workspace() auto.Workspace
	SetAllConfig(ctx context.Context, config auto.ConfigMap) error
	Preview(ctx context.Context, opts ...optpreview.Option) (auto.PreviewResult, error)
	Up(ctx context.Context, opts ...optup.Option) (auto.UpResult, error)
	Refresh(ctx context.Context, opts ...optrefresh.Option) (auto.RefreshResult, error)
	Destroy(ctx context.Context, opts ...optdestroy.Option) (auto.DestroyResult, error)
	Outputs(ctx context.Context) (auto.OutputMap, error)
}

// Deployer runs operations against one stack of the example.
type Deployer struct {
	stack Stack
	opts  Options
}

// StackName returns the name the stack is selected by: fully qualified when an org is set.
func (opts Options) StackName() string {
	if opts.Org == "" {
		return opts.Stack
	}
	return auto.FullyQualifiedStackName(opts.Org, opts.project(), opts.Stack)
}

func (opts Options) project() string {
	if opts.Project == "" {
		return DefaultProject
	}
	return opts.Project
}

func (opts Options) validate() error {
	if opts.Stack == "" {
		return errors.New("a stack name is required")
	}
	if opts.Parallel < 0 {
		return errors.Errorf("parallel must not be negative, got %d", opts.Parallel)
	}
	if opts.Settings == nil {
		return nil
	}
	return opts.Settings.Validate()
}

// New creates or selects the stack and writes its configuration.
func New(ctx context.Context, opts Options) (*Deployer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var wsOpts []auto.LocalWorkspaceOption
	if opts.WorkDir != "" {
		wsOpts = append(wsOpts, auto.WorkDir(opts.WorkDir))
	}

	name := opts.StackName()
	logging.V(3).Infof("selecting stack %s of project %s", name, opts.project())
	s, err := auto.UpsertStackInlineSource(ctx, name, opts.project(), program.Run, wsOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "creating or selecting stack %s", name)
	}

	return NewWithStack(ctx, &s, opts)
}

// NewWithStack configures an existing stack handle.
func NewWithStack(ctx context.Context, s Stack, opts Options) (*Deployer, error) {
	contract.Assertf(s != nil, "stack must not be nil")
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if opts.Message == "" {
		opts.Message = "ibmcloud-basic " + uuid.NewString()
	}
	d := &Deployer{stack: s, opts: opts}

	if !opts.SkipPluginInstall {
		version := "v" + ibmcloud.PkgVersion().String()
		logging.V(3).Infof("installing %s plugin %s", ibmcloud.PackageName, version)
		if err := s.Workspace().InstallPlugin(ctx, ibmcloud.PackageName, version); err != nil {
			return nil, errors.Wrapf(err, "installing %s plugin %s", ibmcloud.PackageName, version)
		}
	}

	cfg, err := d.config()
	if err != nil {
		return nil, err
	}
	if err := s.SetAllConfig(ctx, cfg); err != nil {
		return nil, errors.Wrap(err, "setting stack config")
	}
	return d, nil
}

// config is the stack configuration to write: provider settings plus, when given, program
// settings.
func (d *Deployer) config() (auto.ConfigMap, error) {
	cfg := auto.ConfigMap{}
	if d.opts.Region != "" {
		cfg[regionKey] = auto.ConfigValue{Value: d.opts.Region}
	}
	if d.opts.APIKey != "" {
		cfg[apiKeyKey] = auto.ConfigValue{Value: d.opts.APIKey, Secret: true}
	}
	if d.opts.Settings == nil {
		return cfg, nil
	}

	values, err := d.opts.Settings.ConfigValues()
	if err != nil {
		return nil, errors.Wrap(err, "encoding program settings")
	}
	for key, v := range values {
		cfg[d.opts.project()+":"+key] = auto.ConfigValue{Value: v}
	}
	return cfg, nil
}

// Name is the stack's name.
func (d *Deployer) Name() string {
	return d.stack.Name()
}

func (d *Deployer) progress() []io.Writer {
	if d.opts.Progress == nil {
		return nil
	}
	return []io.Writer{d.opts.Progress}
}

// Preview computes the changes an update would make.
func (d *Deployer) Preview(ctx context.Context) (*Summary, error) {
	r := newRecorder()
	opts := []optpreview.Option{
		optpreview.Message(d.opts.Message),
		optpreview.EventStreams(r.events),
		optpreview.ProgressStreams(d.progress()...),
	}
	if d.opts.Parallel > 0 {
		opts = append(opts, optpreview.Parallel(d.opts.Parallel))
	}
	if d.opts.Refresh {
		opts = append(opts, optpreview.Refresh())
	}

	res, err := d.stack.Preview(ctx, opts...)
	r.Wait()
	if err != nil {
		return nil, d.failure(err, "previewing", r)
	}

	s := fromPreview(res.ChangeSummary)
	s.record(r)
	return s, nil
}

// Up creates or updates the stack's resources and returns the resulting outputs.
func (d *Deployer) Up(ctx context.Context) (*Summary, error) {
	r := newRecorder()
	opts := []optup.Option{
		optup.Message(d.opts.Message),
		optup.EventStreams(r.events),
		optup.ProgressStreams(d.progress()...),
	}
	if d.opts.Parallel > 0 {
		opts = append(opts, optup.Parallel(d.opts.Parallel))
	}
	if d.opts.Refresh {
		opts = append(opts, optup.Refresh())
	}

	res, err := d.stack.Up(ctx, opts...)
	r.Wait()
	if err != nil {
		return nil, d.failure(err, "updating", r)
	}

	s := fromUpdateSummary(res.Summary)
	s.Outputs = res.Outputs
	s.record(r)
	return s, nil
}

// Refresh reconciles the stack's state with what exists in the cloud.
func (d *Deployer) Refresh(ctx context.Context) (*Summary, error) {
	r := newRecorder()
	opts := []optrefresh.Option{
		optrefresh.Message(d.opts.Message),
		optrefresh.EventStreams(r.events),
		optrefresh.ProgressStreams(d.progress()...),
	}
	if d.opts.Parallel > 0 {
		opts = append(opts, optrefresh.Parallel(d.opts.Parallel))
	}

	res, err := d.stack.Refresh(ctx, opts...)
	r.Wait()
	if err != nil {
		return nil, d.failure(err, "refreshing", r)
	}

	s := fromUpdateSummary(res.Summary)
	s.record(r)
	return s, nil
}

// Destroy deletes every resource of the stack. With remove, the stack itself is deleted
// afterwards, along with its config and history.
func (d *Deployer) Destroy(ctx context.Context, remove bool) (*Summary, error) {
	r := newRecorder()
	opts := []optdestroy.Option{
		optdestroy.Message(d.opts.Message),
		optdestroy.EventStreams(r.events),
		optdestroy.ProgressStreams(d.progress()...),
	}
	if d.opts.Parallel > 0 {
		opts = append(opts, optdestroy.Parallel(d.opts.Parallel))
	}

	res, err := d.stack.Destroy(ctx, opts...)
	r.Wait()
	if err != nil {
		return nil, d.failure(err, "destroying", r)
	}

	s := fromUpdateSummary(res.Summary)
	s.record(r)

	if remove {
		logging.V(3).Infof("removing stack %s", d.Name())
		if err := d.stack.Workspace().RemoveStack(ctx, d.Name()); err != nil {
			return s, errors.Wrapf(err, "removing stack %s", d.Name())
		}
	}
	return s, nil
}

// Outputs returns the stack's current outputs.
func (d *Deployer) Outputs(ctx context.Context) (auto.OutputMap, error) {
	outs, err := d.stack.Outputs(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "reading outputs of stack %s", d.Name())
	}
	return outs, nil
}

// failure wraps an operation error, naming the resources the engine reported as failed and
// flagging the errors callers can act on.
func (d *Deployer) failure(err error, verb string, r *recorder) error {
	switch {
	case auto.IsConcurrentUpdateError(err):
		return errors.Wrapf(err, "stack %s has an update in progress", d.Name())
	case auto.IsCompilationError(err), auto.IsRuntimeError(err):
		return errors.Wrapf(err, "%s stack %s: the program failed", verb, d.Name())
	}
	if failed := r.Failed(); len(failed) > 0 {
		return errors.Wrapf(err, "%s stack %s: %d resource operation(s) failed %v",
			verb, d.Name(), len(failed), failed)
	}
	return errors.Wrapf(err, "%s stack %s", verb, d.Name())
}
