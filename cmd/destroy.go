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
	"os"

	"github.com/pkg/errors"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/cmdutil"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Swapped out in tests.
var (
	interactive = func() bool {
		return !cmdutil.DisableInteractive &&
			term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	readConsole = cmdutil.ReadConsole
)

func newDestroyCmd(f *stackFlags) *cobra.Command {
	var yes bool
	var remove bool

	cmd := &cobra.Command{
		Use:        "destroy",
		SuggestFor: []string{"delete", "down", "kill", "rm", "stop"},
		Short:      "Destroy the stack's resources",
		Long: "Destroy the stack's resources.\n" +
			"\n" +
			"The Cloud Object Storage instance is deleted before the resource group that holds it.\n" +
			"With --remove the stack itself, with its configuration and history, goes too.\n" +
			"\n" +
			"Warning: this command is irreversible. Any data in the storage instance is lost.",
		Args: cmdutil.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			return runDestroy(cmd.Context(), f, yes, remove, cmd.OutOrStdout())
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"Skip the confirmation prompt and proceed with the destruction")
	cmd.Flags().BoolVar(&remove, "remove", false,
		"Remove the stack and its configuration once its resources are gone")

	return cmd
}

func runDestroy(ctx context.Context, f *stackFlags, yes, remove bool, w io.Writer) error {
	if !yes {
		if !interactive() {
			return errors.New("'destroy' must be run interactively or be passed the --yes flag")
		}
		if err := confirmDestroy(w, f.stack); err != nil {
			return err
		}
	}

	d, err := f.open(ctx, w, true, nil)
	if err != nil {
		return err
	}
	sum, err := d.Destroy(ctx, remove)
	if sum != nil {
		if perr := printSummary(w, sum); perr != nil && err == nil {
			err = perr
		}
	}
	if err != nil {
		return err
	}
	if remove {
		fmt.Fprintf(w, "Stack '%s' has been removed\n", d.Name())
	}
	return nil
}

// confirmDestroy asks the user to type the stack name back.
func confirmDestroy(w io.Writer, stack string) error {
	fmt.Fprintf(w, "This will permanently destroy all resources in the '%s' stack!\n", stack)
	answer, err := readConsole(fmt.Sprintf("Please confirm by typing the stack name (\"%s\")", stack))
	if err != nil {
		return errors.Wrap(err, "reading confirmation")
	}
	if answer != stack {
		return errors.New("confirmation declined")
	}
	return nil
}
