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

package ibmcloud

import (
	"reflect"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// IsSubnetType is the type token of IsSubnet.
const IsSubnetType = "ibmcloud:index/isSubnet:IsSubnet"

// Provides a subnet inside a VPC zone.
type IsSubnet struct {
	pulumi.CustomResourceState

	// The number of IPv4 addresses still available in the subnet.
	AvailableIpv4AddressCount pulumi.IntOutput `pulumi:"availableIpv4AddressCount"`
	// The CRN of the subnet.
	Crn pulumi.StringOutput `pulumi:"crn"`
	// The IPv4 range of the subnet.
	Ipv4CidrBlock pulumi.StringOutput `pulumi:"ipv4CidrBlock"`
	// The name of the subnet.
	Name pulumi.StringOutput `pulumi:"name"`
	// The ID of the resource group the subnet belongs to.
	ResourceGroup pulumi.StringOutput `pulumi:"resourceGroup"`
	// The provisioning status of the subnet.
	Status pulumi.StringOutput `pulumi:"status"`
	// The ID of the VPC the subnet belongs to.
	Vpc pulumi.StringOutput `pulumi:"vpc"`
	// The zone the subnet resides in.
	Zone pulumi.StringOutput `pulumi:"zone"`
}

// NewIsSubnet registers a new resource with the given unique name, arguments, and options.
func NewIsSubnet(ctx *pulumi.Context,
	name string, args *IsSubnetArgs, opts ...pulumi.ResourceOption,
) (*IsSubnet, error) {
	if args == nil {
		return nil, missingArg("Vpc")
	}

	if args.Vpc == nil {
		return nil, missingArg("Vpc")
	}
	if args.Zone == nil {
		return nil, missingArg("Zone")
	}
	opts = pkgResourceDefaultOpts(opts)
	var resource IsSubnet
	err := ctx.RegisterResource(IsSubnetType, name, args, &resource, opts...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetIsSubnet gets an existing IsSubnet resource's state with the given name and ID.
func GetIsSubnet(ctx *pulumi.Context,
	name string, id pulumi.IDInput, state *IsSubnetState, opts ...pulumi.ResourceOption,
) (*IsSubnet, error) {
	var resource IsSubnet
	err := ctx.ReadResource(IsSubnetType, name, id, state, &resource, pkgResourceDefaultOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

type isSubnetState struct {
	AvailableIpv4AddressCount *int    `pulumi:"availableIpv4AddressCount"`
	Crn                       *string `pulumi:"crn"`
	Ipv4CidrBlock             *string `pulumi:"ipv4CidrBlock"`
	Name                      *string `pulumi:"name"`
	ResourceGroup             *string `pulumi:"resourceGroup"`
	Status                    *string `pulumi:"status"`
	Vpc                       *string `pulumi:"vpc"`
	Zone                      *string `pulumi:"zone"`
}

type IsSubnetState struct {
	AvailableIpv4AddressCount pulumi.IntPtrInput
	Crn                       pulumi.StringPtrInput
	Ipv4CidrBlock             pulumi.StringPtrInput
	Name                      pulumi.StringPtrInput
	ResourceGroup             pulumi.StringPtrInput
	Status                    pulumi.StringPtrInput
	Vpc                       pulumi.StringPtrInput
	Zone                      pulumi.StringPtrInput
}

func (IsSubnetState) ElementType() reflect.Type {
	return reflect.TypeOf((*isSubnetState)(nil)).Elem()
}

type isSubnetArgs struct {
	Ipv4CidrBlock *string `pulumi:"ipv4CidrBlock"`
	Name          *string `pulumi:"name"`
	ResourceGroup *string `pulumi:"resourceGroup"`
	Vpc           string  `pulumi:"vpc"`
	Zone          string  `pulumi:"zone"`
}

// The set of arguments for constructing an IsSubnet resource.
type IsSubnetArgs struct {
	// The IPv4 range of the subnet. Conflicts with a total address count.
	Ipv4CidrBlock pulumi.StringPtrInput
	// The name of the subnet.
	Name pulumi.StringPtrInput
	// The ID of the resource group the subnet belongs to.
	ResourceGroup pulumi.StringPtrInput
	// The ID of the VPC the subnet belongs to.
	Vpc pulumi.StringInput
	// The zone the subnet resides in, for example `us-south-1`.
	Zone pulumi.StringInput
}

func (IsSubnetArgs) ElementType() reflect.Type {
	return reflect.TypeOf((*isSubnetArgs)(nil)).Elem()
}

func (*IsSubnet) ElementType() reflect.Type {
	return reflect.TypeOf((**IsSubnet)(nil)).Elem()
}

type IsSubnetOutput struct{ *pulumi.OutputState }

func (IsSubnetOutput) ElementType() reflect.Type {
	return reflect.TypeOf((**IsSubnet)(nil)).Elem()
}

func init() {
	pulumi.RegisterOutputType(IsSubnetOutput{})
}
