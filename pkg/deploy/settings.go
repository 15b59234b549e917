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
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mapt-oss/pulumi-ibmcloud/examples/basic-go/pkg/program"
)

// ReadSettings decodes program settings from YAML. Keys that are absent keep their default
// value; unknown keys are an error.
func ReadSettings(r io.Reader) (program.Settings, error) {
	s := program.DefaultSettings()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return program.Settings{}, errors.Wrap(err, "decoding settings")
	}
	if err := s.Validate(); err != nil {
		return program.Settings{}, err
	}
	return s, nil
}

// LoadSettingsFile reads settings from the YAML file at path. An empty path yields the
// defaults.
func LoadSettingsFile(path string) (program.Settings, error) {
	if path == "" {
		return program.DefaultSettings(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return program.Settings{}, errors.Wrapf(err, "reading settings file %s", path)
	}
	s, err := ReadSettings(bytes.NewReader(b))
	if err != nil {
		return program.Settings{}, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}
