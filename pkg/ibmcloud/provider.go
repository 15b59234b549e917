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

// ProviderType is the type token of an explicit ibmcloud provider.
const ProviderType = "pulumi:providers:" + PackageName

// The provider type for the ibmcloud package. By default, resources use package-wide configuration
// settings, however an explicit `Provider` instance may be created and passed during resource
// construction to achieve fine-grained programmatic control over provider settings.
type Provider struct {
	pulumi.ProviderResourceState

	// The IBM Cloud API key used to authenticate.
	IbmcloudApiKey pulumi.StringPtrOutput `pulumi:"ibmcloudApiKey"`
	// The IBM Cloud region, for example `us-south`.
	Region pulumi.StringPtrOutput `pulumi:"region"`
	// The default resource group ID.
	ResourceGroup pulumi.StringPtrOutput `pulumi:"resourceGroup"`
}

// NewProvider registers a new resource with the given unique name, arguments, and options.
func NewProvider(ctx *pulumi.Context,
	name string, args *ProviderArgs, opts ...pulumi.ResourceOption,
) (*Provider, error) {
	if args == nil {
		args = &ProviderArgs{}
	}

	if args.IbmcloudApiKey != nil {
		args.IbmcloudApiKey = pulumi.ToSecret(args.IbmcloudApiKey).(pulumi.StringPtrInput)
	}
	secrets := pulumi.AdditionalSecretOutputs([]string{
		"ibmcloudApiKey",
	})
	opts = append(opts, secrets)
	opts = pkgResourceDefaultOpts(opts)
	var resource Provider
	err := ctx.RegisterResource(ProviderType, name, args, &resource, opts...)
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

type providerArgs struct {
	IbmcloudApiKey *string `pulumi:"ibmcloudApiKey"`
	Region         *string `pulumi:"region"`
	ResourceGroup  *string `pulumi:"resourceGroup"`
}

// The set of arguments for constructing a Provider resource.
type ProviderArgs struct {
	// The IBM Cloud API key used to authenticate. Stored as a secret.
	IbmcloudApiKey pulumi.StringPtrInput
	// The IBM Cloud region, for example `us-south`.
	Region pulumi.StringPtrInput
	// The default resource group ID.
	ResourceGroup pulumi.StringPtrInput
}

func (ProviderArgs) ElementType() reflect.Type {
	return reflect.TypeOf((*providerArgs)(nil)).Elem()
}

func (*Provider) ElementType() reflect.Type {
	return reflect.TypeOf((**Provider)(nil)).Elem()
}

type ProviderOutput struct{ *pulumi.OutputState }

func (ProviderOutput) ElementType() reflect.Type {
	return reflect.TypeOf((**Provider)(nil)).Elem()
}

func init() {
	pulumi.RegisterOutputType(ProviderOutput{})
}
