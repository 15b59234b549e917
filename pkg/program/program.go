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

// Package program declares the example's IBM Cloud resources: a resource group, a Cloud Object
// Storage instance placed in it and, when enabled, a VPC with one subnet.
package program

import (
	"fmt"
	"sort"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/ibmcloud"
)

// Export names.
const (
	ResourceGroupIDExport   = "resourceGroupId"
	ResourceGroupNameExport = "resourceGroupName"
	StorageIDExport         = "cosInstanceId"
	StorageCrnExport        = "cosInstanceCrn"
	VpcIDExport             = "vpcId"
	VpcNameExport           = "vpcName"
	SubnetIDExport          = "subnetId"
	SubnetCidrExport        = "subnetCidr"
)

// Stack holds what Declare registered.
type Stack struct {
	Group   *ibmcloud.ResourceGroup
	Storage *ibmcloud.ResourceInstance
	Vpc     *ibmcloud.IsVpc    // nil unless networking is enabled
	Subnet  *ibmcloud.IsSubnet // nil unless networking is enabled

	// Exports maps each export name to the value registered for it.
	Exports pulumi.Map
}

// Run is the pulumi.RunFunc of the example.
func Run(ctx *pulumi.Context) error {
	settings, err := LoadSettings(ctx)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	contract.IgnoreError(ctx.Log.Debug(
		fmt.Sprintf("declaring stack %s (networking=%v)", ctx.Stack(), settings.Networking), nil))

	_, err = Declare(ctx, settings)
	return err
}

// Declare registers the resources described by settings for the current stack and exports
// their identifiers.
func Declare(ctx *pulumi.Context, settings Settings, opts ...pulumi.ResourceOption) (*Stack, error) {
	stack := ctx.Stack()

	group, err := ibmcloud.NewResourceGroup(ctx, GroupResourceName, &ibmcloud.ResourceGroupArgs{
		Name: pulumi.String(GroupName(stack)),
		Tags: pulumi.ToStringArray(settings.Tags),
	}, opts...)
	if err != nil {
		return nil, err
	}

	storage, err := ibmcloud.NewResourceInstance(ctx, StorageResourceName, &ibmcloud.ResourceInstanceArgs{
		Name:            pulumi.String(StorageName(stack)),
		Service:         pulumi.String(StorageService),
		Plan:            pulumi.String(settings.StoragePlan),
		Location:        pulumi.String(settings.StorageLocation),
		ResourceGroupId: group.ID().ToStringOutput(),
		Tags:            pulumi.ToStringArray(settings.StorageTags),
	}, opts...)
	if err != nil {
		return nil, err
	}

	s := &Stack{
		Group:   group,
		Storage: storage,
		Exports: pulumi.Map{
			ResourceGroupIDExport:   group.ID(),
			ResourceGroupNameExport: group.Name,
			StorageIDExport:         storage.ID(),
			StorageCrnExport:        storage.Crn,
		},
	}

	if settings.Networking {
		if err := declareNetwork(ctx, s, settings, opts); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(s.Exports))
	for name := range s.Exports {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ctx.Export(name, s.Exports[name])
	}
	return s, nil
}

func declareNetwork(ctx *pulumi.Context, s *Stack, settings Settings, opts []pulumi.ResourceOption) error {
	stack := ctx.Stack()
	groupID := s.Group.ID().ToStringOutput()

	vpc, err := ibmcloud.NewIsVpc(ctx, VpcResourceName, &ibmcloud.IsVpcArgs{
		Name:          pulumi.String(VpcName(stack)),
		ResourceGroup: groupID,
		Tags:          pulumi.ToStringArray(settings.NetworkTags),
	}, opts...)
	if err != nil {
		return err
	}

	subnet, err := ibmcloud.NewIsSubnet(ctx, SubnetResourceName, &ibmcloud.IsSubnetArgs{
		Name:          pulumi.String(SubnetName(stack)),
		Vpc:           vpc.ID().ToStringOutput(),
		Zone:          pulumi.String(settings.Zone),
		Ipv4CidrBlock: pulumi.String(settings.SubnetCidr),
		ResourceGroup: groupID,
	}, opts...)
	if err != nil {
		return err
	}

	s.Vpc, s.Subnet = vpc, subnet
	s.Exports[VpcIDExport] = vpc.ID()
	s.Exports[VpcNameExport] = vpc.Name
	s.Exports[SubnetIDExport] = subnet.ID()
	s.Exports[SubnetCidrExport] = subnet.Ipv4CidrBlock
	return nil
}
