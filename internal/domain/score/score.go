// Package score classifies numeric training results into the qualitative
// bands and verdicts shown to athletes.
package score

// Classification thresholds.
const (
	excellentThreshold = 90.0
	goodThreshold      = 70.0
	improveThreshold   = 50.0

	highIntensitySwings   = 20
	mediumIntensitySwings = 15

	exceededTargetFactor = 1.2
)

// Band is a qualitative score classification.
type Band string

// The four score bands, best to worst.
const (
	BandExcellent        Band = "excellent"
	BandGood             Band = "good"
	BandNeedsImprovement Band = "needs-improvement"
	BandPoor             Band = "poor"
)

// Classify maps a score to its band. Total over all finite inputs.
func Classify(score float64) Band {
	switch {
	case score >= excellentThreshold:
		return BandExcellent
	case score >= goodThreshold:
		return BandGood
	case score >= improveThreshold:
		return BandNeedsImprovement
	default:
		return BandPoor
	}
}

// Color returns the fixed display color token for the band.
func (b Band) Color() string {
	switch b {
	case BandExcellent:
		return "#50C878"
	case BandGood:
		return "#FFB347"
	case BandNeedsImprovement:
		return "#FF6B6B"
	default:
		return "#808080"
	}
}

// Verdict returns the textual performance verdict for the band.
func (b Band) Verdict() string {
	switch b {
	case BandExcellent:
		return "優秀"
	case BandGood:
		return "良好"
	case BandNeedsImprovement:
		return "需要改善"
	default:
		return "待加強"
	}
}

// Intensity is a training-volume judgment derived from the swing count.
type Intensity string

// Training intensity levels.
const (
	IntensityHigh   Intensity = "high"
	IntensityMedium Intensity = "medium"
	IntensityLight  Intensity = "light"
)

// ClassifyIntensity maps a swing count to a training intensity.
func ClassifyIntensity(swingCount int) Intensity {
	switch {
	case swingCount >= highIntensitySwings:
		return IntensityHigh
	case swingCount >= mediumIntensitySwings:
		return IntensityMedium
	default:
		return IntensityLight
	}
}

// Label returns the display text for the intensity.
func (i Intensity) Label() string {
	switch i {
	case IntensityHigh:
		return "高強度"
	case IntensityMedium:
		return "中強度"
	default:
		return "輕度訓練"
	}
}

// SpeedVerdict compares an average swing speed against the reference speed.
type SpeedVerdict string

// Speed verdicts relative to the reference speed.
const (
	SpeedExceededTarget SpeedVerdict = "exceeded target"
	SpeedMetTarget      SpeedVerdict = "met target"
	SpeedBelowTarget    SpeedVerdict = "below target"
)

// ClassifySpeed judges avgSpeed against refSpeed. Exceeding means at least
// refSpeed * 1.2.
func ClassifySpeed(avgSpeed, refSpeed float64) SpeedVerdict {
	switch {
	case avgSpeed >= refSpeed*exceededTargetFactor:
		return SpeedExceededTarget
	case avgSpeed >= refSpeed:
		return SpeedMetTarget
	default:
		return SpeedBelowTarget
	}
}

// Label returns the display text for the speed verdict.
func (v SpeedVerdict) Label() string {
	switch v {
	case SpeedExceededTarget:
		return "超越目標"
	case SpeedMetTarget:
		return "達到目標"
	default:
		return "需要提升"
	}
}
