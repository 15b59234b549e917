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

// IsVpcType is the type token of IsVpc.
const IsVpcType = "ibmcloud:index/isVpc:IsVpc"

// Provides a Virtual Private Cloud.
type IsVpc struct {
	pulumi.CustomResourceState

	// The CRN of the VPC.
	Crn pulumi.StringOutput `pulumi:"crn"`
	// The ID of the default security group created with the VPC.
	DefaultSecurityGroup pulumi.StringOutput `pulumi:"defaultSecurityGroup"`
	// The name of the VPC.
	Name pulumi.StringOutput `pulumi:"name"`
	// The ID of the resource group the VPC belongs to.
	ResourceGroup pulumi.StringOutput `pulumi:"resourceGroup"`
	// The provisioning status of the VPC.
	Status pulumi.StringOutput `pulumi:"status"`
	// Tags attached to the VPC.
	Tags pulumi.StringArrayOutput `pulumi:"tags"`
}

// NewIsVpc registers a new resource with the given unique name, arguments, and options.
func NewIsVpc(ctx *pulumi.Context,
	name string, args *IsVpcArgs, opts ...pulumi.ResourceOption,
) (*IsVpc, error) {
	if args == nil {
		args = &IsVpcArgs{}
	}

	opts = pkgResourceDefaultOpts(opts)
	var resource IsVpc
	err := ctx.RegisterResource(IsVpcType, name, args, &resource, opts...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetIsVpc gets an existing IsVpc resource's state with the given name and ID.
func GetIsVpc(ctx *pulumi.Context,
	name string, id pulumi.IDInput, state *IsVpcState, opts ...pulumi.ResourceOption,
) (*IsVpc, error) {
	var resource IsVpc
	err := ctx.ReadResource(IsVpcType, name, id, state, &resource, pkgResourceDefaultOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

type isVpcState struct {
	Crn                  *string  `pulumi:"crn"`
	DefaultSecurityGroup *string  `pulumi:"defaultSecurityGroup"`
	Name                 *string  `pulumi:"name"`
	ResourceGroup        *string  `pulumi:"resourceGroup"`
	Status               *string  `pulumi:"status"`
	Tags                 []string `pulumi:"tags"`
}

type IsVpcState struct {
	Crn                  pulumi.StringPtrInput
	DefaultSecurityGroup pulumi.StringPtrInput
	Name                 pulumi.StringPtrInput
	ResourceGroup        pulumi.StringPtrInput
	Status               pulumi.StringPtrInput
	Tags                 pulumi.StringArrayInput
}

func (IsVpcState) ElementType() reflect.Type {
	return reflect.TypeOf((*isVpcState)(nil)).Elem()
}

type isVpcArgs struct {
	Name          *string  `pulumi:"name"`
	ResourceGroup *string  `pulumi:"resourceGroup"`
	Tags          []string `pulumi:"tags"`
}

// The set of arguments for constructing an IsVpc resource.
type IsVpcArgs struct {
	// The name of the VPC.
	Name pulumi.StringPtrInput
	// The ID of the resource group the VPC belongs to.
	ResourceGroup pulumi.StringPtrInput
	// Tags attached to the VPC.
	Tags pulumi.StringArrayInput
}

func (IsVpcArgs) ElementType() reflect.Type {
	return reflect.TypeOf((*isVpcArgs)(nil)).Elem()
}

func (*IsVpc) ElementType() reflect.Type {
	return reflect.TypeOf((**IsVpc)(nil)).Elem()
}

type IsVpcOutput struct{ *pulumi.OutputState }

func (IsVpcOutput) ElementType() reflect.Type {
	return reflect.TypeOf((**IsVpc)(nil)).Elem()
}

func init() {
	pulumi.RegisterOutputType(IsVpcOutput{})
}
