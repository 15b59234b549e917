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
	"fmt"
	"io"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/cmdutil"
	"github.com/spf13/cobra"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/deploy"
)

func newUpCmd(f *stackFlags) *cobra.Command {
	var refresh bool
	var showSecrets bool

	cmd := &cobra.Command{
		Use:        "up",
		Aliases:    []string{"update"},
		SuggestFor: []string{"apply", "deploy", "push"},
		Short:      "Create or update the stack's resources",
		Long: "Create or update the stack's resources.\n" +
			"\n" +
			"The resource group is created first; the Cloud Object Storage instance follows once\n" +
			"the group's id is known. The stack's outputs are printed when the update finishes.",
		Args: cmdutil.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runUp(cmd.Context(), f, refresh, showSecrets, cmd.OutOrStdout())
		}),
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false,
		"Refresh the state of the stack's resources before this update")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false,
		"Display secret outputs as plaintext")

	return cmd
}

func runUp(ctx context.Context, f *stackFlags, refresh, showSecrets bool, w io.Writer) error {
	d, err := f.open(ctx, w, true, func(opts *deploy.Options) {
		opts.Refresh = refresh
	})
	if err != nil {
		return err
	}
	sum, err := d.Up(ctx)
	if err != nil {
		return err
	}
	if err := printSummary(w, sum); err != nil {
		return err
	}
	if len(sum.Outputs) == 0 {
		return nil
	}
	fmt.Fprintln(w, "Outputs:")
	return printOutputs(w, sum.Outputs, deploy.OutputFormat{ShowSecrets: showSecrets}, "    ")
}
