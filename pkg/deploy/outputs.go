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
	"encoding/json"
	"fmt"
	"sort"

	"github.com/iancoleman/strcase"
	"github.com/pulumi/pulumi/sdk/v3/go/auto"
)

// SecretMask replaces secret values unless they are asked for.
const SecretMask = "[secret]"

// OutputFormat controls how stack outputs are flattened.
type OutputFormat struct {
	ShowSecrets bool
	// SnakeCase renames keys to snake_case, the names the Python flavour of the example uses.
	SnakeCase bool
}

// FlattenOutputs renders every output value as a string. Strings are kept verbatim; everything
// else is JSON encoded.
func FlattenOutputs(outs auto.OutputMap, f OutputFormat) (map[string]string, error) {
	flat := make(map[string]string, len(outs))
	for name, out := range outs {
		key := name
		if f.SnakeCase {
			key = strcase.ToSnake(name)
		}

		if out.Secret && !f.ShowSecrets {
			flat[key] = SecretMask
			continue
		}
		switch v := out.Value.(type) {
		case string:
			flat[key] = v
		case nil:
			flat[key] = ""
		default:
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("encoding output %q: %w", name, err)
			}
			flat[key] = string(b)
		}
	}
	return flat, nil
}

// SortedKeys returns the keys of m in order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
