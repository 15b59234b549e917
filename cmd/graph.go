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
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/cmdutil"
	"github.com/spf13/cobra"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/program"
)

func newGraphCmd(f *stackFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the resources the program declares and their dependencies",
		Long: "Show the resources the program declares and their dependencies.\n" +
			"\n" +
			"The graph is computed from the settings alone; no stack or credentials are needed.\n" +
			"Resources are listed in the order the engine creates them. Use --format dot to\n" +
			"render the graph with Graphviz.",
		Args: cmdutil.NoArgs,
		Run: cmdutil.RunFunc(func(cmd *cobra.Command, args []string) error {
			s, err := f.settings()
			if err != nil {
				return err
			}
			return printGraph(cmd.OutOrStdout(), program.Describe(f.stack, s), format)
		}),
	}

	cmd.Flags().StringVar(&format, "format", "table",
		"Output format. Choices are: table, dot, json")

	return cmd
}

func printGraph(w io.Writer, g program.Graph, format string) error {
	switch format {
	case "dot":
		_, err := io.WriteString(w, g.DOT())
		return err
	case "json":
		b, err := json.MarshalIndent(g, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding graph")
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "table", "":
	default:
		return errors.Errorf("unknown graph format '%s'; expected table, dot or json", format)
	}

	nodes := make(map[string]program.GraphNode, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes[n.Name] = n
	}
	deps := make(map[string][]string, len(g.Nodes))
	for _, e := range g.Edges {
		deps[e.From] = append(deps[e.From], fmt.Sprintf("%s (%s)", e.To, e.Property))
	}

	table := cmdutil.Table{Headers: []string{"NAME", "TYPE", "PHYSICAL NAME"}}
	for _, name := range g.TopoOrder {
		n := nodes[name]
		row := cmdutil.TableRow{Columns: []string{n.Name, n.Type, n.Physical}}
		for _, dep := range deps[name] {
			row.AdditionalInfo += "    depends on " + dep + "\n"
		}
		if row.AdditionalInfo != "" {
			row.AdditionalInfo = row.AdditionalInfo[:len(row.AdditionalInfo)-1]
		}
		table.Rows = append(table.Rows, row)
	}
	return cmdutil.FprintTable(w, table)
}
