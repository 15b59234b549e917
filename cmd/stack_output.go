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
	"encoding/json"
	"fmt"
	"io"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/cmdutil"
	"github.com/spf13/cobra"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/deploy"
)

func newStackOutputCmd(f *stackFlags) *cobra.Command {
	var jsonOut bool
	var format deploy.OutputFormat

	cmd := &cobra.Command{
		Use:   "output [property-name]",
		Args:  cmdutil.MaximumNArgs(1),
		Short: "Show the stack's output properties",
		Long: "Show the stack's output properties.\n" +
			"\n" +
			"By default, this command lists all output properties exported from the stack.\n" +
			"If a specific property-name is supplied, just that property's value is shown.",
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			d, err := f.open(cmd.Context(), nil, false, nil)
			if err != nil {
				return err
			}
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return showOutputs(cmd.Context(), d, name, jsonOut, format, cmd.OutOrStdout())
		}),
	}

	cmd.Flags().BoolVarP(&jsonOut, "json", "j", false,
		"Emit output as JSON")
	cmd.Flags().BoolVar(&format.ShowSecrets, "show-secrets", false,
		"Display secret outputs as plaintext")
	cmd.Flags().BoolVar(&format.SnakeCase, "snake-case", false,
		"Name outputs in snake_case (resource_group_id rather than resourceGroupId)")

	return cmd
}

func showOutputs(ctx context.Context, d operations, name string, jsonOut bool,
	format deploy.OutputFormat, w io.Writer,
) error {
	outs, err := d.Outputs(ctx)
	if err != nil {
		return err
	}

	if name != "" {
		key := name
		if format.SnakeCase {
			key = strcase.ToLowerCamel(name)
		}
		out, has := outs[key]
		if !has {
			return errors.Errorf("stack '%s' does not have output property '%s'", d.Name(), name)
		}
		outs = auto.OutputMap{key: out}
	}

	if jsonOut {
		return printOutputsJSON(w, outs, format, name != "")
	}
	if name != "" {
		flat, err := deploy.FlattenOutputs(outs, format)
		if err != nil {
			return err
		}
		for _, v := range flat {
			fmt.Fprintln(w, v)
		}
		return nil
	}
	if len(outs) == 0 {
		fmt.Fprintf(w, "Stack '%s' has no output properties\n", d.Name())
		return nil
	}
	return printOutputs(w, outs, format, "")
}

// printOutputsJSON keeps values in their JSON shape. A single property is printed bare.
func printOutputsJSON(w io.Writer, outs auto.OutputMap, format deploy.OutputFormat, single bool) error {
	values := make(map[string]interface{}, len(outs))
	for name, out := range outs {
		key := name
		if format.SnakeCase {
			key = strcase.ToSnake(name)
		}
		v := out.Value
		if out.Secret && !format.ShowSecrets {
			v = deploy.SecretMask
		}
		values[key] = v
	}

	var doc interface{} = values
	if single {
		for _, v := range values {
			doc = v
		}
	}
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding outputs")
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
