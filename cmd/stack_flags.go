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
package cmd

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/env"
	"github.com/spf13/cobra"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/deploy"
	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/program"
)

// stackFlags are the flags every stack operation shares.
type stackFlags struct {
	stack        string
	org          string
	project      string
	workDir      string
	region       string
	apiKey       string
	settingsFile string
	networking   bool
	parallel     int
	message      string
}

func (f *stackFlags) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.stack, "stack", "s", "dev",
		"The stack to operate on; resource names end with it")
	flags.StringVar(&f.org, "org", "",
		"The Pulumi Cloud organization owning the stack; leave empty for self-managed backends")
	flags.StringVar(&f.project, "project", deploy.DefaultProject,
		"The Pulumi project name")
	flags.StringVar(&f.workDir, "work-dir", "",
		"Directory holding the project and stack settings files; a temporary one when empty. "+
			"Program settings in it are kept unless --settings or --networking is given")
	flags.StringVar(&f.region, "region", "",
		"The IBM Cloud region; defaults to IC_REGION or "+deploy.DefaultRegion)
	flags.StringVar(&f.apiKey, "api-key", "",
		"The IBM Cloud API key; defaults to IC_API_KEY or IBMCLOUD_API_KEY")
	flags.StringVar(&f.settingsFile, "settings", "",
		"A YAML file replacing the program settings in stack config; absent keys take their defaults")
	flags.BoolVar(&f.networking, "networking", false,
		"Also declare a VPC and subnet in the resource group")
	flags.IntVarP(&f.parallel, "parallel", "p", 0,
		"Allow P resource operations to run in parallel at once (0 lets the engine decide)")
	flags.StringVarP(&f.message, "message", "m", "",
		"Optional message to associate with the operation")
}

// settings loads the settings file, if any, and applies flag overrides.
func (f *stackFlags) settings() (program.Settings, error) {
	s, err := deploy.LoadSettingsFile(f.settingsFile)
	if err != nil {
		return program.Settings{}, err
	}
	if f.networking {
		s.Networking = true
	}
	return s, nil
}

// options turns the flags into driver options, reading credentials from e where the flags leave
// them unset.
func (f *stackFlags) options(e env.Env, progress io.Writer) (deploy.Options, error) {
	if f.stack == "" {
		return deploy.Options{}, errors.New("--stack must not be empty")
	}
	opts := deploy.Options{
		Org:      f.org,
		Project:  f.project,
		Stack:    f.stack,
		WorkDir:  f.workDir,
		Region:   deploy.ResolveRegion(f.region, e),
		APIKey:   deploy.ResolveAPIKey(f.apiKey, e),
		Parallel: f.parallel,
		Message:  f.message,
		Progress: progress,
	}
	// Without either flag the stack config in the work dir stays authoritative.
	if f.settingsFile != "" || f.networking {
		s, err := f.settings()
		if err != nil {
			return deploy.Options{}, err
		}
		opts.Settings = &s
	}
	return opts, nil
}

// openDeployer is swapped out in tests.
var openDeployer = func(ctx context.Context, opts deploy.Options) (operations, error) {
	return deploy.New(ctx, opts)
}

// operations is what the commands need from a deploy.Deployer.
type operations interface {
	Name() string
	Preview(ctx context.Context) (*deploy.Summary, error)
	Up(ctx context.Context) (*deploy.Summary, error)
	Refresh(ctx context.Context) (*deploy.Summary, error)
	Destroy(ctx context.Context, remove bool) (*deploy.Summary, error)
	Outputs(ctx context.Context) (auto.OutputMap, error)
}

// open builds driver options and selects the stack. Operations that reach the provider need an
// API key; reading outputs does not.
func (f *stackFlags) open(ctx context.Context, progress io.Writer, needsKey bool,
	customize func(*deploy.Options),
) (operations, error) {
	opts, err := f.options(env.NewEnv(env.Global), progress)
	if err != nil {
		return nil, err
	}
	if needsKey && opts.APIKey == "" {
		return nil, errors.New("no IBM Cloud API key: pass --api-key or set IC_API_KEY")
	}
	if customize != nil {
		customize(&opts)
	}
	return openDeployer(ctx, opts)
}
