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

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/cmdutil"
	"github.com/spf13/cobra"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/deploy"
)

func newPreviewCmd(f *stackFlags) *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:        "preview",
		SuggestFor: []string{"plan"},
		Short:      "Show a preview of updates to the stack's resources",
		Long: "Show a preview of updates to the stack's resources.\n" +
			"\n" +
			"The program is evaluated and its resources are compared against the stack's\n" +
			"state to determine what operations an update would take. Nothing is changed.",
		Args: cmdutil.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd.Context(), f, refresh, cmd.OutOrStdout())
		}),
	}

	cmd.Flags().BoolVarP(&refresh, "refresh", "r", false,
		"Refresh the state of the stack's resources before this preview")

	return cmd
}

func runPreview(ctx context.Context, f *stackFlags, refresh bool, w io.Writer) error {
	d, err := f.open(ctx, w, true, func(opts *deploy.Options) {
		opts.Refresh = refresh
	})
	if err != nil {
		return err
	}
	sum, err := d.Preview(ctx)
	if err != nil {
		return err
	}
	return printSummary(w, sum)
}
