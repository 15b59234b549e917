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
	"encoding/json"
	"fmt"
	"net"
	"regexp"
	"strconv"

	"github.com/hashicorp/go-multierror"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"
)

// StorageService is the catalog name of Cloud Object Storage.
const StorageService = "cloud-object-storage"

// Config keys read from the project namespace.
const (
	TagsKey            = "tags"
	StorageTagsKey     = "storageTags"
	StoragePlanKey     = "storagePlan"
	StorageLocationKey = "storageLocation"
	NetworkingKey      = "networking"
	ZoneKey            = "zone"
	SubnetCidrKey      = "subnetCidr"
	NetworkTagsKey     = "networkTags"
)

var zonePattern = regexp.MustCompile(`^[a-z]+-[a-z]+-[0-9]+$`)

// Settings is the tunable part of the program. The zero value is not valid; start from
// DefaultSettings.
type Settings struct {
	Tags            []string `json:"tags" yaml:"tags"`
	StorageTags     []string `json:"storageTags" yaml:"storageTags"`
	StoragePlan     string   `json:"storagePlan" yaml:"storagePlan"`
	StorageLocation string   `json:"storageLocation" yaml:"storageLocation"`
	Networking      bool     `json:"networking" yaml:"networking"`
	Zone            string   `json:"zone" yaml:"zone"`
	SubnetCidr      string   `json:"subnetCidr" yaml:"subnetCidr"`
	NetworkTags     []string `json:"networkTags" yaml:"networkTags"`
}

// DefaultSettings returns the settings used when a stack sets no config.
func DefaultSettings() Settings {
	return Settings{
		Tags:            []string{"pulumi", "example", "go"},
		StorageTags:     []string{"pulumi", "example", "storage"},
		StoragePlan:     "standard",
		StorageLocation: "global",
		Networking:      false,
		Zone:            "us-south-1",
		SubnetCidr:      "10.240.0.0/24",
		NetworkTags:     []string{"pulumi", "example", "networking"},
	}
}

// LoadSettings reads settings from the project's config namespace, falling back to defaults
// for unset keys, and validates the result.
func LoadSettings(ctx *pulumi.Context) (Settings, error) {
	cfg := config.New(ctx, "")
	s := DefaultSettings()

	var errs *multierror.Error
	for key, dst := range map[string]*[]string{
		TagsKey:        &s.Tags,
		StorageTagsKey: &s.StorageTags,
		NetworkTagsKey: &s.NetworkTags,
	} {
		if err := cfg.GetObject(key, dst); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: expected a list of strings: %w", key, err))
		}
	}
	if v := cfg.Get(StoragePlanKey); v != "" {
		s.StoragePlan = v
	}
	if v := cfg.Get(StorageLocationKey); v != "" {
		s.StorageLocation = v
	}
	if v := cfg.Get(ZoneKey); v != "" {
		s.Zone = v
	}
	if v := cfg.Get(SubnetCidrKey); v != "" {
		s.SubnetCidr = v
	}
	if v := cfg.Get(NetworkingKey); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: expected a boolean, got %q", NetworkingKey, v))
		}
		s.Networking = b
	}
	if err := errs.ErrorOrNil(); err != nil {
		return Settings{}, err
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate reports every problem with the settings in one error.
func (s Settings) Validate() error {
	var errs *multierror.Error
	if s.StoragePlan == "" {
		errs = multierror.Append(errs, fmt.Errorf("%s must not be empty", StoragePlanKey))
	}
	if s.StorageLocation == "" {
		errs = multierror.Append(errs, fmt.Errorf("%s must not be empty", StorageLocationKey))
	}
	errs = multierror.Append(errs, validateTags(TagsKey, s.Tags)...)
	errs = multierror.Append(errs, validateTags(StorageTagsKey, s.StorageTags)...)

	// Network settings only matter once networking is on.
	if s.Networking {
		if !zonePattern.MatchString(s.Zone) {
			errs = multierror.Append(errs, fmt.Errorf("%s %q is not of the form <region>-<n>", ZoneKey, s.Zone))
		}
		if _, _, err := net.ParseCIDR(s.SubnetCidr); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s %q is not a valid CIDR block", SubnetCidrKey, s.SubnetCidr))
		}
		errs = multierror.Append(errs, validateTags(NetworkTagsKey, s.NetworkTags)...)
	}
	return errs.ErrorOrNil()
}

func validateTags(key string, tags []string) []error {
	var errs []error
	seen := make(map[string]bool, len(tags))
	for i, tag := range tags {
		switch {
		case tag == "":
			errs = append(errs, fmt.Errorf("%s[%d] must not be empty", key, i))
		case seen[tag]:
			errs = append(errs, fmt.Errorf("%s contains duplicate tag %q", key, tag))
		}
		seen[tag] = true
	}
	return errs
}

// ConfigValues renders the settings as the string values stored in stack config, keyed by
// the unqualified config key.
func (s Settings) ConfigValues() (map[string]string, error) {
	values := map[string]string{
		StoragePlanKey:     s.StoragePlan,
		StorageLocationKey: s.StorageLocation,
		NetworkingKey:      strconv.FormatBool(s.Networking),
		ZoneKey:            s.Zone,
		SubnetCidrKey:      s.SubnetCidr,
	}
	for key, tags := range map[string][]string{
		TagsKey:        s.Tags,
		StorageTagsKey: s.StorageTags,
		NetworkTagsKey: s.NetworkTags,
	} {
		b, err := json.Marshal(tags)
		if err != nil {
			return nil, err
		}
		values[key] = string(b)
	}
	return values, nil
}
