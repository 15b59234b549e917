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
// Package cmd implements the ibmcloud-basic command line, which previews, deploys and tears down
// the example's IBM Cloud resources without a Pulumi project on disk.
package cmd

import (
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/cmdutil"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"
	"github.com/spf13/cobra"
)

// NewIBMCloudBasicCmd creates the root command and a cleanup func to run before exiting.
func NewIBMCloudBasicCmd() (*cobra.Command, func()) {
	var verbose int
	var logFlow bool
	var logToStderr bool
	var f stackFlags

	cleanup := func() {
		logging.Flush()
	}

	cmd := &cobra.Command{
		Use:           "ibmcloud-basic",
		Short:         "Deploy a resource group and a Cloud Object Storage instance to IBM Cloud",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: "ibmcloud-basic declares an IBM Cloud resource group and a Cloud Object Storage\n" +
			"instance inside it, optionally with a VPC and subnet, and deploys them with Pulumi.\n" +
			"\n" +
			"Resources are named after the stack, so several stacks can coexist in one account:\n" +
			"\n" +
			"    pulumi-example-rg-<stack>\n" +
			"    pulumi-example-cos-<stack>\n" +
			"\n" +
			"The IBM Cloud API key is read from --api-key, IC_API_KEY or IBMCLOUD_API_KEY.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.InitLogging(logToStderr, verbose, logFlow)
			if logging.Verbose >= 9 {
				logging.Warningf("log level 9 and above may print the IBM Cloud API key")
			}
		},
	}

	cmd.PersistentFlags().IntVarP(&verbose, "verbose", "v", 0,
		"Enable verbose logging (e.g., v=3); anything >3 is very verbose")
	cmd.PersistentFlags().BoolVar(&logFlow, "logflow", false,
		"Flow log settings to child processes (like plugins)")
	cmd.PersistentFlags().BoolVar(&logToStderr, "logtostderr", false,
		"Log to stderr instead of to files")
	cmd.PersistentFlags().BoolVar(&cmdutil.DisableInteractive, "non-interactive", false,
		"Disable interactive mode for all commands")
	f.register(cmd)

	cmd.AddCommand(newPreviewCmd(&f))
	cmd.AddCommand(newUpCmd(&f))
	cmd.AddCommand(newRefreshCmd(&f))
	cmd.AddCommand(newDestroyCmd(&f))
	cmd.AddCommand(newStackOutputCmd(&f))
	cmd.AddCommand(newGraphCmd(&f))

	return cmd, cleanup
}
