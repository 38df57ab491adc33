// Copyright 2026 EngFlow Inc. All rights reserved.
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

package collections

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// declNames models the kind of projection resolve.go's declareParams does:
// turning a slice of declarator-ish values into their spelled names.
type declNames struct {
	name string
}

func TestMapSliceProjectsParamNames(t *testing.T) {
	params := []declNames{{"a"}, {"b"}, {"a"}}

	names := MapSlice(params, func(p declNames) string { return p.name })

	assert.Equal(t, []string{"a", "b", "a"}, names)
}

func TestFilterSliceKeepsOnlyPendingNames(t *testing.T) {
	allNames := []string{"main", "helper", "forward_only"}
	resolved := map[string]bool{"main": true}

	pending := FilterSlice(allNames, func(name string) bool {
		return !resolved[name]
	})

	assert.Equal(t, []string{"helper", "forward_only"}, pending)
}

func TestSetDedupesFeatureNames(t *testing.T) {
	seen := make(Set[string])
	var duplicates []string

	for _, feature := range []string{"simd", "gpu", "simd"} {
		if seen.Contains(feature) {
			duplicates = append(duplicates, feature)
			continue
		}
		seen.Add(feature)
	}

	assert.Equal(t, []string{"simd"}, duplicates)
	assert.True(t, seen.Contains("gpu"))

	values := slices.Collect(seen.All())
	slices.Sort(values)
	assert.Equal(t, []string{"gpu", "simd"}, values)
}

func TestSetAddSeqFromResolvedNames(t *testing.T) {
	resolved := make(Set[string])
	resolved.AddSeq(slices.Values([]string{"main", "helper"}))

	assert.True(t, resolved.Contains("main"))
	assert.True(t, resolved.Contains("helper"))
	assert.False(t, resolved.Contains("forward_only"))
}
