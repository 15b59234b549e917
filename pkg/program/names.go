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

import "fmt"

// NamePrefix starts every physical resource name.
const NamePrefix = "pulumi-example"

// Resource kinds used in physical names.
const (
	KindGroup   = "rg"
	KindStorage = "cos"
	KindVpc     = "vpc"
	KindSubnet  = "subnet"
)

// Logical names. These become part of each resource's URN and must not change between updates.
const (
	GroupResourceName   = "example-rg"
	StorageResourceName = "example-cos"
	VpcResourceName     = "example-vpc"
	SubnetResourceName  = "example-subnet"
)

// ResourceName returns the physical name of a resource of the given kind in a stack.
func ResourceName(kind, stack string) string {
	return fmt.Sprintf("%s-%s-%s", NamePrefix, kind, stack)
}

// GroupName is the resource group's physical name, pulumi-example-rg-<stack>.
func GroupName(stack string) string { return ResourceName(KindGroup, stack) }

// StorageName is the Cloud Object Storage instance's physical name, pulumi-example-cos-<stack>.
func StorageName(stack string) string { return ResourceName(KindStorage, stack) }

// VpcName is the VPC's physical name.
func VpcName(stack string) string { return ResourceName(KindVpc, stack) }

// SubnetName is the subnet's physical name.
func SubnetName(stack string) string { return ResourceName(KindSubnet, stack) }
