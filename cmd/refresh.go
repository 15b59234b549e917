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
)

func newRefreshCmd(f *stackFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Refresh the resources in the stack",
		Long: "Refresh the resources in the stack.\n" +
			"\n" +
			"The stack's state is reconciled with the resources as they exist in IBM Cloud.\n" +
			"Resources changed outside of Pulumi are updated in the state; the cloud is not touched.",
		Args: cmdutil.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runRefresh(cmd.Context(), f, cmd.OutOrStdout())
		}),
	}
}

func runRefresh(ctx context.Context, f *stackFlags, w io.Writer) error {
	d, err := f.open(ctx, w, true, nil)
	if err != nil {
		return err
	}
	sum, err := d.Refresh(ctx)
	if err != nil {
		return err
	}
	return printSummary(w, sum)
}
