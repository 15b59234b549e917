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

// ResourceInstanceType is the type token of ResourceInstance.
const ResourceInstanceType = "ibmcloud:index/resourceInstance:ResourceInstance"

// Provides a resource instance of a catalog service, such as Cloud Object Storage.
type ResourceInstance struct {
	pulumi.CustomResourceState

	// The CRN of the resource instance.
	Crn pulumi.StringOutput `pulumi:"crn"`
	// The dashboard URL of the resource instance.
	DashboardUrl pulumi.StringOutput `pulumi:"dashboardUrl"`
	// The GUID of the resource instance.
	Guid pulumi.StringOutput `pulumi:"guid"`
	// The location where the instance is available.
	Location pulumi.StringOutput `pulumi:"location"`
	// A name for the resource instance.
	Name pulumi.StringOutput `pulumi:"name"`
	// Arbitrary parameters to pass to the service broker.
	Parameters pulumi.StringMapOutput `pulumi:"parameters"`
	// The plan type of the service.
	Plan pulumi.StringOutput `pulumi:"plan"`
	// The ID of the resource group where the instance is created.
	ResourceGroupId pulumi.StringOutput `pulumi:"resourceGroupId"`
	// The name of the service offering, for example `cloud-object-storage`.
	Service pulumi.StringOutput `pulumi:"service"`
	// The status of the resource instance.
	Status pulumi.StringOutput `pulumi:"status"`
	// Tags attached to the instance.
	Tags pulumi.StringArrayOutput `pulumi:"tags"`
}

// NewResourceInstance registers a new resource with the given unique name, arguments, and options.
func NewResourceInstance(ctx *pulumi.Context,
	name string, args *ResourceInstanceArgs, opts ...pulumi.ResourceOption,
) (*ResourceInstance, error) {
	if args == nil {
		return nil, missingArg("Location")
	}

	if args.Location == nil {
		return nil, missingArg("Location")
	}
	if args.Plan == nil {
		return nil, missingArg("Plan")
	}
	if args.Service == nil {
		return nil, missingArg("Service")
	}
	opts = pkgResourceDefaultOpts(opts)
	var resource ResourceInstance
	err := ctx.RegisterResource(ResourceInstanceType, name, args, &resource, opts...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// GetResourceInstance gets an existing ResourceInstance resource's state with the given name, ID, and optional
// state properties that are used to uniquely qualify the lookup (nil if not required).
func GetResourceInstance(ctx *pulumi.Context,
	name string, id pulumi.IDInput, state *ResourceInstanceState, opts ...pulumi.ResourceOption,
) (*ResourceInstance, error) {
	var resource ResourceInstance
	err := ctx.ReadResource(ResourceInstanceType, name, id, state, &resource, pkgResourceDefaultOpts(opts)...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// Input properties used for looking up and filtering ResourceInstance resources.
type resourceInstanceState struct {
	Crn             *string           `pulumi:"crn"`
	DashboardUrl    *string           `pulumi:"dashboardUrl"`
	Guid            *string           `pulumi:"guid"`
	Location        *string           `pulumi:"location"`
	Name            *string           `pulumi:"name"`
	Parameters      map[string]string `pulumi:"parameters"`
	Plan            *string           `pulumi:"plan"`
	ResourceGroupId *string           `pulumi:"resourceGroupId"`
	Service         *string           `pulumi:"service"`
	Status          *string           `pulumi:"status"`
	Tags            []string          `pulumi:"tags"`
}

type ResourceInstanceState struct {
	Crn             pulumi.StringPtrInput
	DashboardUrl    pulumi.StringPtrInput
	Guid            pulumi.StringPtrInput
	Location        pulumi.StringPtrInput
	Name            pulumi.StringPtrInput
	Parameters      pulumi.StringMapInput
	Plan            pulumi.StringPtrInput
	ResourceGroupId pulumi.StringPtrInput
	Service         pulumi.StringPtrInput
	Status          pulumi.StringPtrInput
	Tags            pulumi.StringArrayInput
}

func (ResourceInstanceState) ElementType() reflect.Type {
	return reflect.TypeOf((*resourceInstanceState)(nil)).Elem()
}

type resourceInstanceArgs struct {
	Location        string            `pulumi:"location"`
	Name            *string           `pulumi:"name"`
	Parameters      map[string]string `pulumi:"parameters"`
	Plan            string            `pulumi:"plan"`
	ResourceGroupId *string           `pulumi:"resourceGroupId"`
	Service         string            `pulumi:"service"`
	Tags            []string          `pulumi:"tags"`
}

// The set of arguments for constructing a ResourceInstance resource.
type ResourceInstanceArgs struct {
	// The location where the instance is available, `global` for Cloud Object Storage.
	Location pulumi.StringInput
	// A name for the resource instance.
	Name pulumi.StringPtrInput
	// Arbitrary parameters to pass to the service broker.
	Parameters pulumi.StringMapInput
	// The plan type of the service.
	Plan pulumi.StringInput
	// The ID of the resource group where the instance is created. The account's default group is used when omitted.
	ResourceGroupId pulumi.StringPtrInput
	// The name of the service offering.
	Service pulumi.StringInput
	// Tags attached to the instance.
	Tags pulumi.StringArrayInput
}

func (ResourceInstanceArgs) ElementType() reflect.Type {
	return reflect.TypeOf((*resourceInstanceArgs)(nil)).Elem()
}

type ResourceInstanceInput interface {
	pulumi.Input

	ToResourceInstanceOutput() ResourceInstanceOutput
	ToResourceInstanceOutputWithContext(ctx context.Context) ResourceInstanceOutput
}

func (*ResourceInstance) ElementType() reflect.Type {
	return reflect.TypeOf((**ResourceInstance)(nil)).Elem()
}

func (i *ResourceInstance) ToResourceInstanceOutput() ResourceInstanceOutput {
	return i.ToResourceInstanceOutputWithContext(context.Background())
}

func (i *ResourceInstance) ToResourceInstanceOutputWithContext(ctx context.Context) ResourceInstanceOutput {
	return pulumi.ToOutputWithContext(ctx, i).(ResourceInstanceOutput)
}

type ResourceInstanceOutput struct{ *pulumi.OutputState }

func (ResourceInstanceOutput) ElementType() reflect.Type {
	return reflect.TypeOf((**ResourceInstance)(nil)).Elem()
}

func (o ResourceInstanceOutput) ToResourceInstanceOutput() ResourceInstanceOutput {
	return o
}

func (o ResourceInstanceOutput) ToResourceInstanceOutputWithContext(ctx context.Context) ResourceInstanceOutput {
	return o
}

func (o ResourceInstanceOutput) Crn() pulumi.StringOutput {
	return o.ApplyT(func(v *ResourceInstance) pulumi.StringOutput { return v.Crn }).(pulumi.StringOutput)
}

func (o ResourceInstanceOutput) ResourceGroupId() pulumi.StringOutput {
	return o.ApplyT(func(v *ResourceInstance) pulumi.StringOutput { return v.ResourceGroupId }).(pulumi.StringOutput)
}

func init() {
	pulumi.RegisterInputType(reflect.TypeOf((*ResourceInstanceInput)(nil)).Elem(), &ResourceInstance{})
	pulumi.RegisterOutputType(ResourceInstanceOutput{})
}
