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
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/internals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/ibmcloud"
)

// cloudMocks plays the part of the ibmcloud provider: it assigns ids, computes CRNs and
// remembers what was registered.
type cloudMocks struct {
	mu   sync.Mutex
	regs map[string]pulumi.MockResourceArgs
	ids  map[string]string
}

func newCloudMocks() *cloudMocks {
	return &cloudMocks{
		regs: map[string]pulumi.MockResourceArgs{},
		ids:  map[string]string{},
	}
}

func (m *cloudMocks) Call(args pulumi.MockCallArgs) (resource.PropertyMap, error) {
	return resource.PropertyMap{}, nil
}

func (m *cloudMocks) NewResource(args pulumi.MockResourceArgs) (string, resource.PropertyMap, error) {
	id := uuid.NewString()
	outs := args.Inputs.Copy()
	switch args.TypeToken {
	case ibmcloud.ResourceInstanceType:
		outs["crn"] = resource.NewStringProperty(
			"crn:v1:bluemix:public:cloud-object-storage:global:a/0123456789::" + id + "::")
		outs["status"] = resource.NewStringProperty("active")
	case ibmcloud.ResourceGroupType:
		outs["state"] = resource.NewStringProperty("ACTIVE")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.regs[args.Name] = args
	m.ids[args.Name] = id
	return id, outs, nil
}

func (m *cloudMocks) registered(name string) (pulumi.MockResourceArgs, string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	args, ok := m.regs[name]
	return args, m.ids[name], ok
}

func withConfig(values map[string]string) pulumi.RunOption {
	return func(info *pulumi.RunInfo) {
		cfg := make(map[string]string, len(values))
		for k, v := range values {
			cfg[info.Project+":"+k] = v
		}
		info.Config = cfg
	}
}

func await(t *testing.T, ctx *pulumi.Context, o pulumi.Input) interface{} {
	t.Helper()
	res, err := internals.UnsafeAwaitOutput(ctx.Context(), pulumi.ToOutput(o))
	require.NoError(t, err)
	require.True(t, res.Known)
	return res.Value
}

func TestDeclareNamesResourcesAfterStack(t *testing.T) {
	t.Parallel()

	mocks := newCloudMocks()
	err := pulumi.RunErr(func(ctx *pulumi.Context) error {
		s, err := Declare(ctx, DefaultSettings())
		require.NoError(t, err)

		assert.Equal(t, "pulumi-example-rg-dev", await(t, ctx, s.Group.Name))
		assert.Equal(t, "pulumi-example-cos-dev", await(t, ctx, s.Storage.Name))
		return nil
	}, pulumi.WithMocks("basic-go", "dev", mocks))
	require.NoError(t, err)

	group, _, ok := mocks.registered(GroupResourceName)
	require.True(t, ok)
	assert.Equal(t, ibmcloud.ResourceGroupType, group.TypeToken)
	assert.Equal(t, "pulumi-example-rg-dev", group.Inputs["name"].StringValue())

	storage, _, ok := mocks.registered(StorageResourceName)
	require.True(t, ok)
	assert.Equal(t, ibmcloud.ResourceInstanceType, storage.TypeToken)
	assert.Equal(t, "pulumi-example-cos-dev", storage.Inputs["name"].StringValue())
	assert.Equal(t, StorageService, storage.Inputs["service"].StringValue())
	assert.Equal(t, "standard", storage.Inputs["plan"].StringValue())
	assert.Equal(t, "global", storage.Inputs["location"].StringValue())
}

func TestStorageDependsOnGroupID(t *testing.T) {
	t.Parallel()

	mocks := newCloudMocks()
	err := pulumi.RunErr(func(ctx *pulumi.Context) error {
		s, err := Declare(ctx, DefaultSettings())
		require.NoError(t, err)

		groupID := await(t, ctx, s.Group.ID())
		ref := await(t, ctx, s.Storage.ResourceGroupId)
		assert.Equal(t, string(groupID.(pulumi.ID)), ref)
		return nil
	}, pulumi.WithMocks("basic-go", "dev", mocks))
	require.NoError(t, err)

	_, groupID, ok := mocks.registered(GroupResourceName)
	require.True(t, ok)
	storage, _, ok := mocks.registered(StorageResourceName)
	require.True(t, ok)
	assert.Equal(t, groupID, storage.Inputs["resourceGroupId"].StringValue())
}

func TestDeclareExportsIdentifiers(t *testing.T) {
	t.Parallel()

	mocks := newCloudMocks()
	err := pulumi.RunErr(func(ctx *pulumi.Context) error {
		s, err := Declare(ctx, DefaultSettings())
		require.NoError(t, err)

		assert.Len(t, s.Exports, 4)
		assert.Nil(t, s.Vpc)
		assert.Nil(t, s.Subnet)

		exportedGroupID := await(t, ctx, s.Exports[ResourceGroupIDExport])
		exportedGroupName := await(t, ctx, s.Exports[ResourceGroupNameExport])
		exportedStorageID := await(t, ctx, s.Exports[StorageIDExport])
		exportedCrn := await(t, ctx, s.Exports[StorageCrnExport])

		// Both registrations have completed once their outputs resolved.
		_, groupID, _ := mocks.registered(GroupResourceName)
		_, storageID, _ := mocks.registered(StorageResourceName)

		assert.Equal(t, pulumi.ID(groupID), exportedGroupID)
		assert.Equal(t, "pulumi-example-rg-prod", exportedGroupName)
		assert.Equal(t, pulumi.ID(storageID), exportedStorageID)
		assert.Contains(t, exportedCrn, storageID)
		return nil
	}, pulumi.WithMocks("basic-go", "prod", mocks))
	require.NoError(t, err)
}

func TestRunWithNetworking(t *testing.T) {
	t.Parallel()

	mocks := newCloudMocks()
	err := pulumi.RunErr(Run,
		pulumi.WithMocks("basic-go", "dev", mocks),
		withConfig(map[string]string{
			NetworkingKey: "true",
			ZoneKey:       "eu-de-2",
			SubnetCidrKey: "10.10.0.0/24",
		}))
	require.NoError(t, err)

	_, groupID, _ := mocks.registered(GroupResourceName)
	vpc, vpcID, ok := mocks.registered(VpcResourceName)
	require.True(t, ok)
	assert.Equal(t, "pulumi-example-vpc-dev", vpc.Inputs["name"].StringValue())
	assert.Equal(t, groupID, vpc.Inputs["resourceGroup"].StringValue())

	subnet, _, ok := mocks.registered(SubnetResourceName)
	require.True(t, ok)
	assert.Equal(t, "pulumi-example-subnet-dev", subnet.Inputs["name"].StringValue())
	assert.Equal(t, vpcID, subnet.Inputs["vpc"].StringValue())
	assert.Equal(t, groupID, subnet.Inputs["resourceGroup"].StringValue())
	assert.Equal(t, "eu-de-2", subnet.Inputs["zone"].StringValue())
	assert.Equal(t, "10.10.0.0/24", subnet.Inputs["ipv4CidrBlock"].StringValue())
}

func TestRunWithoutNetworkingSkipsVpc(t *testing.T) {
	t.Parallel()

	mocks := newCloudMocks()
	err := pulumi.RunErr(Run, pulumi.WithMocks("basic-go", "dev", mocks))
	require.NoError(t, err)

	_, _, ok := mocks.registered(VpcResourceName)
	assert.False(t, ok)
	_, _, ok = mocks.registered(SubnetResourceName)
	assert.False(t, ok)
}

func TestRunUsesConfiguredStorageSettings(t *testing.T) {
	t.Parallel()

	mocks := newCloudMocks()
	err := pulumi.RunErr(Run,
		pulumi.WithMocks("basic-go", "dev", mocks),
		withConfig(map[string]string{
			StoragePlanKey: "lite",
			TagsKey:        `["team-a","cost-center"]`,
		}))
	require.NoError(t, err)

	storage, _, ok := mocks.registered(StorageResourceName)
	require.True(t, ok)
	assert.Equal(t, "lite", storage.Inputs["plan"].StringValue())

	group, _, ok := mocks.registered(GroupResourceName)
	require.True(t, ok)
	tags := group.Inputs["tags"].ArrayValue()
	require.Len(t, tags, 2)
	assert.Equal(t, "team-a", tags[0].StringValue())
	assert.Equal(t, "cost-center", tags[1].StringValue())
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	mocks := newCloudMocks()
	err := pulumi.RunErr(Run,
		pulumi.WithMocks("basic-go", "dev", mocks),
		withConfig(map[string]string{
			NetworkingKey: "true",
			ZoneKey:       "nowhere",
			SubnetCidrKey: "10.0.0.0/33",
		}))
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid configuration")
	assert.ErrorContains(t, err, `zone "nowhere"`)
	assert.ErrorContains(t, err, `subnetCidr "10.0.0.0/33"`)

	_, _, ok := mocks.registered(GroupResourceName)
	assert.False(t, ok)
}
