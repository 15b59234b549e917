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
	"github.com/blang/semver"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// PackageName is the Pulumi package that owns every resource token in this package.
const PackageName = "ibmcloud"

// pkgVersion is the provider plugin version these bindings were written against.
const pkgVersion = "1.85.0"

// PluginDownloadURL is where the engine fetches the provider plugin from when it is not installed.
const PluginDownloadURL = "github://api.github.com/mapt-oss"

// PkgVersion returns the provider plugin version as a semver.Version.
func PkgVersion() semver.Version {
	return semver.MustParse(pkgVersion)
}

// pkgResourceDefaultOpts pins the provider version and download URL. Caller options come
// last so they win.
func pkgResourceDefaultOpts(opts []pulumi.ResourceOption) []pulumi.ResourceOption {
	defaults := []pulumi.ResourceOption{
		pulumi.Version(pkgVersion),
		pulumi.PluginDownloadURL(PluginDownloadURL),
	}
	return append(defaults, opts...)
}

// missingArg formats the error returned when a required argument is not set.
func missingArg(field string) error {
	return &MissingArgumentError{Field: field}
}

// MissingArgumentError is returned by a resource constructor when a required input is nil.
type MissingArgumentError struct {
	Field string
}

func (e *MissingArgumentError) Error() string {
	return "missing required argument '" + e.Field + "'"
}
