// Copyright 2026 go-purefp Authors
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

package fp

import (
	"os"
	"unsafe"
)

// Ints constrains to the signed fixed-width integer lane types.
type Ints interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Uints constrains to the unsigned fixed-width integer lane types.
type Uints interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers constrains to all fixed-width integer lane types.
type Integers interface {
	Ints | Uints
}

// Floats constrains to the floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Lanes constrains to every supported lane type: signed and unsigned
// 8/16/32/64-bit integers plus 32/64-bit floats.
type Lanes interface {
	Integers | Floats
}

// LaneWidth returns the element width of T in bytes (1, 2, 4, or 8).
func LaneWidth[T Lanes]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// MaxLanes returns the number of T lanes in one vector register at the
// current dispatch level. This is vector width divided by element width:
// with AVX2 (32 bytes) a float32 has 8 lanes, a float64 has 4, an int8
// has 32. Throughput of the lane kernels scales roughly with this value;
// results never depend on it.
func MaxLanes[T Lanes]() int {
	return currentWidth / LaneWidth[T]()
}

// DispatchLevel identifies which vector instruction family the process
// selected at startup.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchNEON
	DispatchAVX2
	DispatchAVX512
)

func (l DispatchLevel) String() string {
	switch l {
	case DispatchSSE2:
		return "sse2"
	case DispatchNEON:
		return "neon"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	default:
		return "scalar"
	}
}

// Dispatch state. Written exactly once by the per-GOARCH init and treated
// as immutable afterward.
var (
	currentLevel DispatchLevel
	currentWidth = 16
	currentName  = "scalar"
)

// CurrentLevel returns the dispatch level selected at startup.
func CurrentLevel() DispatchLevel { return currentLevel }

// CurrentWidth returns the vector register width in bytes at the current
// dispatch level (16 for scalar/SSE2/NEON, 32 for AVX2, 64 for AVX-512).
func CurrentWidth() int { return currentWidth }

// CurrentName returns the human-readable dispatch level name.
func CurrentName() string { return currentName }

// NoSimdEnv reports whether PUREFP_NO_SIMD is set, forcing scalar mode.
func NoSimdEnv() bool {
	v := os.Getenv("PUREFP_NO_SIMD")
	return v != "" && v != "0"
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // keep 16-byte striping even in scalar mode for consistency
	currentName = "scalar"
}
