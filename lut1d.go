// lut1d - a one-dimensional lookup-table operator for color pipelines
// Copyright (C) 2026  lut1d contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package lut1d

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
)

// ComponentProperties records what prepareArray discovered about one
// channel of an inverse LUT's forward data: its monotonic direction and
// the index range over which it is not flat.
type ComponentProperties struct {
	IsIncreasing bool

	StartDomain int
	EndDomain   int

	// NegStartDomain and NegEndDomain are only meaningful for a
	// half-domain LUT; they describe the negative half-code side.
	NegStartDomain int
	NegEndDomain   int
}

// Lut1D is a one-dimensional lookup-table operator: a sample array plus
// the flags, direction and post-processing settings that give it
// meaning inside a color pipeline.
//
// A Lut1D is not safe for concurrent mutation. Finalize is safe against
// concurrent callers that all hold a reference to the same operator;
// every other method assumes exclusive access.
type Lut1D struct {
	array *SampleArray

	halfFlags     HalfFlags
	interpolation Interpolation
	hueAdjust     Lut1DHueAdjust
	direction     TransformDirection

	inversionQuality   LutInversionQuality
	fileOutputBitDepth BitDepth

	metadata Metadata

	cacheID             string
	componentProperties [maxColorComponents]ComponentProperties

	mu sync.Mutex
}

// New constructs a forward, standard-domain identity LUT of the given
// length.
func New(length int) (*Lut1D, error) {
	return NewWithDirection(length, DirectionForward)
}

// NewWithDirection constructs a standard-domain identity LUT of the
// given length and direction.
func NewWithDirection(length int, dir TransformDirection) (*Lut1D, error) {
	return NewWithFlags(Standard, length, dir)
}

// NewHalfDomain constructs a forward half-domain identity LUT. length
// must be 65536; a mismatched length is accepted here (the array will
// simply hold that many rows) but fails at Finalize with
// InvalidHalfDomain, matching how other constructors defer validation.
func NewHalfDomain(length int) (*Lut1D, error) {
	return NewWithFlags(InputHalf, length, DirectionForward)
}

// NewWithFlags constructs an identity LUT with explicit half-domain
// flags, length and direction. This is the most general constructor;
// New, NewWithDirection and NewHalfDomain are convenience wrappers.
func NewWithFlags(flags HalfFlags, length int, dir TransformDirection) (*Lut1D, error) {
	array, err := newSampleArray(flags, length)
	if err != nil {
		return nil, err
	}
	return &Lut1D{
		array:              array,
		halfFlags:          flags,
		interpolation:      InterpDefault,
		hueAdjust:          HueAdjustNone,
		direction:          dir,
		inversionQuality:   InversionQualityFast,
		fileOutputBitDepth: BitDepthUnknown,
	}, nil
}

// Array returns the LUT's sample array for reading.
func (l *Lut1D) Array() *SampleArray { return l.array }

// MutableArray returns the LUT's sample array for mutation. Callers
// must mutate it and call Finalize before relying on CacheID or
// ComponentProperties.
func (l *Lut1D) MutableArray() *SampleArray { return l.array }

// Interpolation returns the configured interpolation algorithm.
func (l *Lut1D) Interpolation() Interpolation { return l.interpolation }

// SetInterpolation sets the interpolation algorithm.
func (l *Lut1D) SetInterpolation(algo Interpolation) { l.interpolation = algo }

// ConcreteInterpolation collapses DEFAULT and NEAREST to LINEAR: the
// evaluator this package models does not implement true nearest-sample
// lookup, so both settings resolve to the same behavior as LINEAR.
func (l *Lut1D) ConcreteInterpolation() Interpolation {
	switch l.interpolation {
	case InterpDefault, InterpNearest:
		return InterpLinear
	default:
		return l.interpolation
	}
}

// HalfFlags returns the LUT's half-domain flag set.
func (l *Lut1D) HalfFlags() HalfFlags { return l.halfFlags }

// SetInputHalfDomain toggles the INPUT_HALF bit independently of
// OUTPUT_RAW_HALF.
func (l *Lut1D) SetInputHalfDomain(v bool) {
	if v {
		l.halfFlags |= InputHalf
	} else {
		l.halfFlags &^= InputHalf
	}
}

// SetOutputRawHalfs toggles the OUTPUT_RAW_HALF bit independently of
// INPUT_HALF.
func (l *Lut1D) SetOutputRawHalfs(v bool) {
	if v {
		l.halfFlags |= OutputRawHalf
	} else {
		l.halfFlags &^= OutputRawHalf
	}
}

// Direction returns FORWARD or INVERSE.
func (l *Lut1D) Direction() TransformDirection { return l.direction }

// SetDirection sets FORWARD or INVERSE.
func (l *Lut1D) SetDirection(d TransformDirection) { l.direction = d }

// HueAdjust returns the configured hue-adjust mode.
func (l *Lut1D) HueAdjust() Lut1DHueAdjust { return l.hueAdjust }

// SetHueAdjust sets the hue-adjust mode.
func (l *Lut1D) SetHueAdjust(h Lut1DHueAdjust) { l.hueAdjust = h }

// InversionQuality returns the advisory inversion-quality setting.
// It is excluded from equality and from the cache ID.
func (l *Lut1D) InversionQuality() LutInversionQuality { return l.inversionQuality }

// SetInversionQuality sets the advisory inversion-quality setting.
func (l *Lut1D) SetInversionQuality(q LutInversionQuality) { l.inversionQuality = q }

// FileOutputBitDepth returns the advisory bit depth used only by
// MakeFastLut1DFromInverse.
func (l *Lut1D) FileOutputBitDepth() BitDepth { return l.fileOutputBitDepth }

// SetFileOutputBitDepth sets the advisory bit depth used only by
// MakeFastLut1DFromInverse.
func (l *Lut1D) SetFileOutputBitDepth(d BitDepth) { l.fileOutputBitDepth = d }

// Metadata returns the LUT's format metadata, never nil.
func (l *Lut1D) Metadata() Metadata {
	if l.metadata == nil {
		l.metadata = Metadata{}
	}
	return l.metadata
}

// SetMetadata replaces the LUT's format metadata.
func (l *Lut1D) SetMetadata(m Metadata) { l.metadata = m }

// GetCacheID returns the cache ID computed by the most recent Finalize.
// It is the empty string before the first Finalize.
func (l *Lut1D) GetCacheID() string { return l.cacheID }

// ComponentProperties returns channel c's properties as discovered by
// the most recent Finalize of an INVERSE-direction LUT. It is the zero
// value for a LUT that has never been finalized in the INVERSE
// direction; Clone and Inverse copy the properties as they are, so a
// forward clone of a finalized inverse LUT carries them too.
func (l *Lut1D) ComponentProperties(c int) ComponentProperties {
	return l.componentProperties[c]
}

// IsIdentity reports whether the array is an identity transform for
// the LUT's half-domain setting.
func (l *Lut1D) IsIdentity() bool {
	return l.array.isIdentity(l.halfFlags)
}

// IsNoOp reports whether evaluating this LUT has no effect at all. A
// standard-domain identity is not a no-op because it may still be used
// to change bit depth; only a half-domain identity qualifies.
func (l *Lut1D) IsNoOp() bool {
	return l.halfFlags.isInputHalf() && l.IsIdentity()
}

// HasChannelCrosstalk reports whether evaluating this LUT can mix
// channels. A LUT alone never does; hue-adjust does, regardless of
// whether the array happens to be an identity.
func (l *Lut1D) HasChannelCrosstalk() bool {
	return l.hueAdjust != HueAdjustNone
}

// AsOp adapts l into an Op that evaluates it per pixel, for callers
// that want to run a LUT over a pixel buffer directly instead of
// through Compose.
func (l *Lut1D) AsOp() Op {
	return lut1DOp{lut: l}
}

// IdentityReplacement returns a cheap Op that is behaviorally
// equivalent to this LUT when IsIdentity is true: an identity matrix
// for a half-domain LUT, or a [0,1] range clamp for a standard-domain
// one (which may still need to enforce the output range).
func (l *Lut1D) IdentityReplacement() Op {
	if l.halfFlags.isInputHalf() {
		return IdentityMatrixOp{}
	}
	return RangeOp{Min: 0, Max: 1}
}

// HasExtendedRange reports whether any non-NaN sample falls outside
// [0,1] by more than 1e-5.
func (l *Lut1D) HasExtendedRange() bool {
	const tol = 1e-5
	for _, v := range l.array.Values() {
		if math.IsNaN(float64(v)) {
			continue
		}
		if v < -tol || v > 1+tol {
			return true
		}
	}
	return false
}

// Validate checks that the LUT's settings are internally consistent.
// It is idempotent and may be called repeatedly without side effects.
func (l *Lut1D) Validate() error {
	if !l.interpolation.isValidForLut1D() {
		return newValidationError(InvalidInterpolation, "interpolation",
			"%s is not one of best, default, linear, nearest", l.interpolation)
	}
	if err := l.array.validate(); err != nil {
		return err
	}
	if l.halfFlags.isInputHalf() && l.array.Length() != halfDomainRequiredEntries {
		return newValidationError(InvalidHalfDomain, "length",
			"input half domain requires length %d, got %d", halfDomainRequiredEntries, l.array.Length())
	}
	if !l.hueAdjust.isValid() {
		return newValidationError(InvalidHueAdjust, "hueAdjust",
			"%d is not one of none, dw3", int(l.hueAdjust))
	}
	return nil
}

// Clone returns a deep copy of l, including its array and metadata.
func (l *Lut1D) Clone() *Lut1D {
	c := &Lut1D{
		array:              l.array.clone(),
		halfFlags:          l.halfFlags,
		interpolation:      l.interpolation,
		hueAdjust:          l.hueAdjust,
		direction:          l.direction,
		inversionQuality:   l.inversionQuality,
		fileOutputBitDepth: l.fileOutputBitDepth,
		cacheID:            l.cacheID,
	}
	c.componentProperties = l.componentProperties
	if l.metadata != nil {
		c.metadata = l.metadata.clone()
	}
	return c
}

// Inverse returns a clone of l with the opposite direction.
func (l *Lut1D) Inverse() *Lut1D {
	c := l.Clone()
	if c.direction == DirectionForward {
		c.direction = DirectionInverse
	} else {
		c.direction = DirectionForward
	}
	return c
}

// HaveEqualBasics reports whether l and other share the same half
// flags, hue-adjust mode and array contents, ignoring direction,
// interpolation and inversion quality.
func (l *Lut1D) HaveEqualBasics(other *Lut1D) bool {
	if l.halfFlags != other.halfFlags || l.hueAdjust != other.hueAdjust {
		return false
	}
	return l.array.equalContents(other.array)
}

// IsInverse reports whether other is the functional inverse of l: the
// directions are opposite and the basics match.
func (l *Lut1D) IsInverse(other *Lut1D) bool {
	if l.direction == other.direction {
		return false
	}
	return l.HaveEqualBasics(other)
}

// Equal implements the LUT's equality contract: same direction, same
// concrete interpolation, and equal basics. InversionQuality is
// deliberately excluded.
func (l *Lut1D) Equal(other *Lut1D) bool {
	if l.direction != other.direction {
		return false
	}
	if l.ConcreteInterpolation() != other.ConcreteInterpolation() {
		return false
	}
	return l.HaveEqualBasics(other)
}

// MayCompose reports whether l and other may be folded together by
// Compose: both must be forward, and neither may carry a hue-adjust
// (which would make composition lossy, since Compose only evaluates
// channel-separable stages).
func (l *Lut1D) MayCompose(other *Lut1D) bool {
	if l.direction != DirectionForward || other.direction != DirectionForward {
		return false
	}
	return l.hueAdjust == HueAdjustNone && other.hueAdjust == HueAdjustNone
}

// MayLookup reports whether this LUT is a direct lookup table for
// pixels at the given bit depth. A half-domain LUT is a direct lookup
// only for F16 and never for an integer depth; a standard-domain LUT is
// one when depth is not a float depth and its length equals the ideal
// size for that depth.
func (l *Lut1D) MayLookup(depth BitDepth) bool {
	if l.halfFlags.isInputHalf() {
		return depth == BitDepthF16
	}
	if depth.IsFloat() {
		return false
	}
	max, ok := depth.maxIntValue()
	if !ok {
		return false
	}
	return uint64(l.array.Length()) == max+1
}

// Finalize is the single canonicalization barrier for a Lut1D. If the
// direction is INVERSE it first runs prepareArray (see inverse.go),
// then recomputes the array's active-channel count, validates, and
// computes the cache ID. It is safe to call concurrently on the same
// operator; each call holds the operator's private mutex for its whole
// duration, from the inverse preparation through fingerprinting.
func (l *Lut1D) Finalize() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.direction == DirectionInverse {
		l.prepareArray()
	}
	l.array.adjustColorComponentNumber()

	if err := l.Validate(); err != nil {
		return err
	}

	l.cacheID = l.computeCacheID()
	return nil
}

// computeCacheID hashes the raw float bytes of the array and appends
// the textual direction, interpolation, domain kind and hue-adjust
// name. InversionQuality is deliberately excluded so FAST and EXACT
// variants of the same array share a cache entry.
func (l *Lut1D) computeCacheID() string {
	values := l.array.Values()
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	sum := md5.Sum(raw)
	return fmt.Sprintf("%x %s %s %s %s",
		sum, l.direction, l.ConcreteInterpolation(), l.halfFlags.domainName(), l.hueAdjust)
}

// GetLutIdealSize returns the ideal table length for depth: 2^bits for
// 8/10/12/14/16-bit unsigned integer depths, 65536 for 16f or 32f.
// UNKNOWN and UINT32 are not representable as a lookup table and fail.
func GetLutIdealSize(depth BitDepth) (int, error) {
	if depth.IsFloat() {
		return halfDomainRequiredEntries, nil
	}
	max, ok := depth.maxIntValue()
	if !ok || depth == BitDepthUint32 {
		return 0, newValidationError(InvalidBitDepth, "depth",
			"%s has no ideal LUT size", depth)
	}
	return int(max) + 1, nil
}

// GetLutIdealSizeForFlags is GetLutIdealSize, except that an
// INPUT_HALF domain unconditionally wants 65536 entries regardless of
// depth.
func GetLutIdealSizeForFlags(depth BitDepth, flags HalfFlags) (int, error) {
	if flags.isInputHalf() {
		return halfDomainRequiredEntries, nil
	}
	return GetLutIdealSize(depth)
}

// MakeLookupDomain constructs a new forward identity LUT whose domain
// kind matches depth (half domain for any float depth, standard
// domain for integer depths) and whose length is the ideal size for
// that pairing.
func MakeLookupDomain(depth BitDepth) (*Lut1D, error) {
	flags := Standard
	if depth.IsFloat() {
		flags = InputHalf
	}
	length, err := GetLutIdealSizeForFlags(depth, flags)
	if err != nil {
		return nil, err
	}
	return NewWithFlags(flags, length, DirectionForward)
}
