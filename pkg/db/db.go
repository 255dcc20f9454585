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

package db

import (
	"sync"

	"github.com/cru-project/skylark/pkg/checks"
)

// DB collects check results between execution and reporting
type DB interface {
	Save(result checks.Result)
	Get(check string) (result checks.Result, ok bool)
	// List returns all results in the order they were saved,
	// which is the order they appear in the report.
	List() []checks.Result
}

var _ DB = (*InMemory)(nil)

// InMemory keeps the results of the current run in memory. Saving a
// result for an already-known check replaces it in place.
type InMemory struct {
	mu    sync.Mutex
	order []string
	data  map[string]checks.Result
}

// NewInMemory creates a new in-memory database
func NewInMemory() *InMemory {
	return &InMemory{
		data: map[string]checks.Result{},
	}
}

func (i *InMemory) Save(result checks.Result) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if _, ok := i.data[result.Name]; !ok {
		i.order = append(i.order, result.Name)
	}
	i.data[result.Name] = result
}

func (i *InMemory) Get(check string) (checks.Result, bool) {
	i.mu.Lock()
	defer i.mu.Unlock()
	result, ok := i.data[check]
	return result, ok
}

// List returns a copy of the saved results
func (i *InMemory) List() []checks.Result {
	i.mu.Lock()
	defer i.mu.Unlock()
	results := make([]checks.Result, 0, len(i.order))
	for _, name := range i.order {
		results = append(results, i.data[name])
	}
	return results
}
