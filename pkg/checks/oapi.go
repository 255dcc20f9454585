// skylark
// (C) 2025, CRU Project
//
// CRU Project and all other contributors /
// copyright owners license this file to you under the Apache
// License, Version 2.0 (the "License"); you may not use this
// file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package checks

import (
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
)

// SchemaFor takes a check's runtime configuration and returns an
// openapi3.SchemaRef of the summary entry the check produces, with the
// configuration schema attached under "config". This is a workaround,
// since the openapi3gen.NewSchemaRefForValue function does not work
// with any types.
func SchemaFor(cfg Runtime) (*openapi3.SchemaRef, error) {
	resultSchema, err := openapi3gen.NewSchemaRefForValue(Result{}, openapi3.Schemas{})
	if err != nil {
		return nil, err
	}
	cfgSchema, err := openapi3gen.NewSchemaRefForValue(cfg, openapi3.Schemas{}, openapi3gen.UseAllExportedFields())
	if err != nil {
		return nil, err
	}

	resultSchema.Value.Properties["config"] = cfgSchema
	return resultSchema, nil
}
