// Copyright 2024 The Cockroach Authors
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

package h64

// Stats is a snapshot of the instrumentation counters a Set maintains when
// built with the h64stats tag. Without the tag every field is zero. The
// counters have no effect on the set's behavior.
//
// HintSum/HintCount should average close to 255/2 for a well-distributed
// hasher. EqualCount/CompareCount is the hint filter's hit rate. The probe
// counters give average and maximum probe sequence lengths for lookups and
// for empty-slot searches. All counters reset on resize.
type Stats struct {
	HintSum   uint64
	HintCount uint64

	FindCount         uint64
	FindProbeCount    uint64
	FindMaxProbeCount uint64

	InsertCount         uint64
	InsertProbeCount    uint64
	InsertMaxProbeCount uint64

	CompareCount uint64
	EqualCount   uint64
}
