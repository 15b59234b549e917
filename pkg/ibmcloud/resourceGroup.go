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
	"context"
	"reflect"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// ResourceGroupType is the type token of ResourceGroup.
const ResourceGroupType = "ibmcloud:index/resourceGroup:ResourceGroup"

// Provides a resource group. Resource groups organize account resources for access control and billing.
type ResourceGroup struct {
	pulumi.CustomResourceState

	// The date when the resource group was initially created.
	CreatedAt pulumi.StringOutput `pulumi:"createdAt"`
	// The full CRN associated with the resource group.
	Crn pulumi.StringOutput `pulumi:"crn"`
	// Specifies whether its default resource group or not.
	Default pulumi.BoolOutput `pulumi:"default"`
	// The name of the resource group.
	Name pulumi.StringOutput `pulumi:"name"`
	// State of the resource group.
	State pulumi.StringOutput `pulumi:"state"`
	// Tags attached to the resource group.
	Tags pulumi.StringArrayOutput `pulumi:"tags"`
	// The date when the resource group was last updated.
	UpdatedAt pulumi.StringOutput `pulumi:"updatedAt"`
}

// NewResourceGroup registers a new resource with the given unique name, arguments, and options.
func NewResourceGroup(ctx *pulumi.Context,
	name string, args *ResourceGroupArgs, opts ...pulumi.ResourceOption,
) (*ResourceGroup, error) {
	if args == nil {
		args = &ResourceGroupArgs{}
	}

	opts = pkgResourceDefaultOpts(opts)
	var resource ResourceGroup
	err := ctx.RegisterResource(ResourceGroupType, name, args, &resource, opts...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetResourceGroup gets an existing ResourceGroup resource's state with the given name, ID, and optional
// state properties that are used to uniquely qualify the lookup (nil if not required).
func GetResourceGroup(ctx *pulumi.Context,
	name string, id pulumi.IDInput, state *ResourceGroupState, opts ...pulumi.ResourceOption,
) (*ResourceGroup, error) {
	var resource ResourceGroup
	err := ctx.ReadResource(ResourceGroupType, name, id, state, &resource, pkgResourceDefaultOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// Input properties used for looking up and filtering ResourceGroup resources.
type resourceGroupState struct {
	CreatedAt *string  `pulumi:"createdAt"`
	Crn       *string  `pulumi:"crn"`
	Default   *bool    `pulumi:"default"`
	Name      *string  `pulumi:"name"`
	State     *string  `pulumi:"state"`
	Tags      []string `pulumi:"tags"`
	UpdatedAt *string  `pulumi:"updatedAt"`
}

type ResourceGroupState struct {
	CreatedAt pulumi.StringPtrInput
	Crn       pulumi.StringPtrInput
	Default   pulumi.BoolPtrInput
	Name      pulumi.StringPtrInput
	State     pulumi.StringPtrInput
	Tags      pulumi.StringArrayInput
	UpdatedAt pulumi.StringPtrInput
}

func (ResourceGroupState) ElementType() reflect.Type {
	return reflect.TypeOf((*resourceGroupState)(nil)).Elem()
}

type resourceGroupArgs struct {
	// The name of the resource group. Generated by the provider when omitted.
	Name *string `pulumi:"name"`
	// Tags attached to the resource group.
	Tags []string `pulumi:"tags"`
}

// The set of arguments for constructing a ResourceGroup resource.
type ResourceGroupArgs struct {
	// The name of the resource group. Generated by the provider when omitted.
	Name pulumi.StringPtrInput
	// Tags attached to the resource group.
	Tags pulumi.StringArrayInput
}

func (ResourceGroupArgs) ElementType() reflect.Type {
	return reflect.TypeOf((*resourceGroupArgs)(nil)).Elem()
}

type ResourceGroupInput interface {
	pulumi.Input

	ToResourceGroupOutput() ResourceGroupOutput
	ToResourceGroupOutputWithContext(ctx context.Context) ResourceGroupOutput
}

func (*ResourceGroup) ElementType() reflect.Type {
	return reflect.TypeOf((**ResourceGroup)(nil)).Elem()
}

func (i *ResourceGroup) ToResourceGroupOutput() ResourceGroupOutput {
	return i.ToResourceGroupOutputWithContext(context.Background())
}

func (i *ResourceGroup) ToResourceGroupOutputWithContext(ctx context.Context) ResourceGroupOutput {
	return pulumi.ToOutputWithContext(ctx, i).(ResourceGroupOutput)
}

type ResourceGroupOutput struct{ *pulumi.OutputState }

func (ResourceGroupOutput) ElementType() reflect.Type {
	return reflect.TypeOf((**ResourceGroup)(nil)).Elem()
}

func (o ResourceGroupOutput) ToResourceGroupOutput() ResourceGroupOutput {
	return o
}

func (o ResourceGroupOutput) ToResourceGroupOutputWithContext(ctx context.Context) ResourceGroupOutput {
	return o
}

// Crn is the full CRN of the resource group.
func (o ResourceGroupOutput) Crn() pulumi.StringOutput {
	return o.ApplyT(func(v *ResourceGroup) pulumi.StringOutput { return v.Crn }).(pulumi.StringOutput)
}

// Name is the name of the resource group.
func (o ResourceGroupOutput) Name() pulumi.StringOutput {
	return o.ApplyT(func(v *ResourceGroup) pulumi.StringOutput { return v.Name }).(pulumi.StringOutput)
}

func init() {
	pulumi.RegisterInputType(reflect.TypeOf((*ResourceGroupInput)(nil)).Elem(), &ResourceGroup{})
	pulumi.RegisterOutputType(ResourceGroupOutput{})
}
