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

package program

import (
	"fmt"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/ibmcloud"
)

// GraphNode is one declared resource.
type GraphNode struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Physical string `json:"physical"`
}

// GraphEdge means "From depends on To" through the named input property.
type GraphEdge struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Property string `json:"property"`
}

// Graph is the static resource graph Declare registers for a stack.
type Graph struct {
	Nodes     []GraphNode `json:"nodes"`
	Edges     []GraphEdge `json:"edges"`
	TopoOrder []string    `json:"topoOrder"`
}

// Describe returns the graph Declare would register for the given stack and settings, without
// touching the engine.
func Describe(stack string, settings Settings) Graph {
	g := Graph{
		Nodes: []GraphNode{
			{Name: GroupResourceName, Type: ibmcloud.ResourceGroupType, Physical: GroupName(stack)},
			{Name: StorageResourceName, Type: ibmcloud.ResourceInstanceType, Physical: StorageName(stack)},
		},
		Edges: []GraphEdge{
			{From: StorageResourceName, To: GroupResourceName, Property: "resourceGroupId"},
		},
	}
	if settings.Networking {
		g.Nodes = append(g.Nodes,
			GraphNode{Name: VpcResourceName, Type: ibmcloud.IsVpcType, Physical: VpcName(stack)},
			GraphNode{Name: SubnetResourceName, Type: ibmcloud.IsSubnetType, Physical: SubnetName(stack)},
		)
		g.Edges = append(g.Edges,
			GraphEdge{From: VpcResourceName, To: GroupResourceName, Property: "resourceGroup"},
			GraphEdge{From: SubnetResourceName, To: VpcResourceName, Property: "vpc"},
			GraphEdge{From: SubnetResourceName, To: GroupResourceName, Property: "resourceGroup"},
		)
	}
	g.TopoOrder = topoOrder(g)
	return g
}

// topoOrder lists dependencies before dependents, breaking ties by declaration order.
func topoOrder(g Graph) []string {
	pending := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		pending[n.Name] = 0
	}
	for _, e := range g.Edges {
		pending[e.From]++
	}

	order := make([]string, 0, len(g.Nodes))
	done := make(map[string]bool, len(g.Nodes))
	for len(order) < len(g.Nodes) {
		progressed := false
		for _, n := range g.Nodes {
			if done[n.Name] || pending[n.Name] > 0 {
				continue
			}
			done[n.Name] = true
			order = append(order, n.Name)
			progressed = true
			for _, e := range g.Edges {
				if e.To == n.Name {
					pending[e.From]--
				}
			}
		}
		if !progressed {
			contract.Failf("resource graph has a cycle")
		}
	}
	return order
}

// DOT exports Graphviz DOT text.
func (g Graph) DOT() string {
	var b strings.Builder
	b.WriteString("digraph stack {\n")
	b.WriteString("  rankdir=LR;\n")
	for _, n := range g.Nodes {
		fmt.Fprintf(&b, "  %q [label=\"%s\\n(%s)\"];\n", n.Name, escapeDOT(n.Physical), escapeDOT(n.Type))
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&b, "  %q -> %q [label=%q];\n", e.From, e.To, e.Property)
	}
	b.WriteString("}\n")
	return b.String()
}

func escapeDOT(s string) string {
	return strings.ReplaceAll(s, "\"", "\\\"")
}
