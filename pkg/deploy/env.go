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

package deploy

import (
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/env"
)

// Environment variables understood by the ibmcloud provider. They are read here so that the
// driver can store them in stack config instead of relying on the provider's process
// environment.
var (
	APIKey = env.String("IC_API_KEY", "The IBM Cloud API key.",
		env.NoPrefix, env.Secret, env.Alternative("IBMCLOUD_API_KEY"))

	Region = env.String("IC_REGION", "The IBM Cloud region to deploy to.", env.NoPrefix)
)

// DefaultRegion is used when neither a flag nor IC_REGION names a region.
const DefaultRegion = "us-south"

// ResolveAPIKey returns the explicit key when set, else the first of IC_API_KEY and
// IBMCLOUD_API_KEY found in e.
func ResolveAPIKey(explicit string, e env.Env) string {
	if explicit != "" {
		return explicit
	}
	return e.GetString(APIKey)
}

// ResolveRegion returns the explicit region when set, else IC_REGION or DefaultRegion.
func ResolveRegion(explicit string, e env.Env) string {
	if explicit != "" {
		return explicit
	}
	if v := e.GetString(Region); v != "" {
		return v
	}
	return DefaultRegion
}
