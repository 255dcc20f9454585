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
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cru-project/skylark/pkg/dataset"
)

// Status is the tri-state outcome of one check run
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusSkip Status = "SKIP"
)

// Result encapsulates the outcome of evaluating one check against its
// dataset. It is immutable after creation.
type Result struct {
	// Name identifies the check that produced the result
	Name string `json:"name" yaml:"name"`
	// Status is PASS, FAIL or SKIP
	Status Status `json:"status" yaml:"status"`
	// Details carries the numeric evidence the outcome was decided on
	Details string `json:"details" yaml:"details"`
}

// Pass builds a passing result with formatted details
func Pass(name, format string, args ...any) Result {
	return Result{Name: name, Status: StatusPass, Details: fmt.Sprintf(format, args...)}
}

// Fail builds a failing result with formatted details
func Fail(name, format string, args ...any) Result {
	return Result{Name: name, Status: StatusFail, Details: fmt.Sprintf(format, args...)}
}

// Skip builds a skipped result with formatted details
func Skip(name, format string, args ...any) Result {
	return Result{Name: name, Status: StatusSkip, Details: fmt.Sprintf(format, args...)}
}

// Check implementations evaluate one named numeric predicate against a
// local dataset and report the outcome.
type Check interface {
	// Run evaluates the check once. A missing backing dataset yields a
	// SKIP result, any other problem a FAIL result; Run never returns
	// an error, problems are propagated as data.
	Run(ctx context.Context, data dataset.Getter) Result
	// SetConfig updates the configuration of the check.
	// Zero-valued fields keep their defaults.
	// Returns an error if the configuration is invalid.
	SetConfig(config Runtime) error
	// GetConfig returns the current configuration of the check.
	GetConfig() Runtime
	// Name returns the name of the check.
	Name() string
	// Schema returns an openapi3.SchemaRef of the result type returned by the check.
	Schema() (*openapi3.SchemaRef, error)
}

// Runtime is the interface that all check configurations must implement
type Runtime interface {
	// For returns the name of the check being configured
	For() string
	// Validate checks if the configuration is valid
	Validate() error
}

// ResultFromLoadError maps a dataset load failure onto a check result:
// a missing file is a SKIP, everything else is a FAIL carrying the
// offending detail.
func ResultFromLoadError(name, file string, err error) Result {
	if dataset.IsMissingFile(err) {
		return Skip(name, "skipped: %s not present", file)
	}
	return Fail(name, "%v", err)
}
