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
	"fmt"
	"io"

	"github.com/pulumi/pulumi/sdk/v3/go/auto"
	"github.com/pulumi/pulumi/sdk/v3/go/common/apitype"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/cmdutil"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/deploy"
)

var opSymbols = map[apitype.OpType]string{
	apitype.OpCreate:            "+",
	apitype.OpUpdate:            "~",
	apitype.OpDelete:            "-",
	apitype.OpReplace:           "+-",
	apitype.OpCreateReplacement: "++",
	apitype.OpDeleteReplaced:    "--",
	apitype.OpRead:              ">",
	apitype.OpRefresh:           "~",
}

// printSummary lists the resource steps of an operation followed by its one line summary.
func printSummary(w io.Writer, sum *deploy.Summary) error {
	for _, step := range sum.Steps {
		sym, ok := opSymbols[step.Op]
		if !ok {
			sym = "*"
		}
		if _, err := fmt.Fprintf(w, "  %-2s %s %s (%s)\n", sym, step.Op, step.Name(), step.Type); err != nil {
			return err
		}
	}
	for _, warning := range sum.Warnings {
		if _, err := fmt.Fprintf(w, "warning: %s\n", warning); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, sum.String())
	return err
}

// printOutputs prints one output per row, sorted by name.
func printOutputs(w io.Writer, outs auto.OutputMap, format deploy.OutputFormat, prefix string) error {
	flat, err := deploy.FlattenOutputs(outs, format)
	if err != nil {
		return err
	}
	table := cmdutil.Table{
		Headers: []string{"OUTPUT", "VALUE"},
		Prefix:  prefix,
	}
	for _, k := range deploy.SortedKeys(flat) {
		table.Rows = append(table.Rows, cmdutil.TableRow{Columns: []string{k, flat[k]}})
	}
	return cmdutil.FprintTable(w, table)
}
