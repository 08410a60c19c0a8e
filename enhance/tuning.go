// tuning.go - the stricter retry-round parameter shift.

package enhance

import (
	"math"

	"github.com/anchorforge/sigil/style"
)

// Retry shift: push conditioning up and prompt freedom down, within the
// bounds the backend stays stable in.
const (
	retryConditioningStep = 0.15
	retryConditioningCap  = 1.5
	retryGuidanceStep     = 1.0
	retryGuidanceFloor    = 3.0
	retryDenoiseStep      = 0.05
	retryDenoiseFloor     = 0.15
	retryGuidanceEndStep  = 0.05
	retryGuidanceEndCap   = 1.0
	retryExtraSteps       = 5
)

// stricter returns the retry-round tuning: stronger structural
// conditioning, weaker prompt guidance, less denoise, a slightly longer
// schedule. Guidance start stays put.
func stricter(t style.Tuning) style.Tuning {
	t.ConditioningScale = math.Min(t.ConditioningScale+retryConditioningStep, retryConditioningCap)
	t.GuidanceScale = math.Max(t.GuidanceScale-retryGuidanceStep, retryGuidanceFloor)
	t.DenoiseStrength = math.Max(t.DenoiseStrength-retryDenoiseStep, retryDenoiseFloor)
	t.GuidanceEnd = math.Min(t.GuidanceEnd+retryGuidanceEndStep, retryGuidanceEndCap)
	t.InferenceSteps += retryExtraSteps

	return t
}
