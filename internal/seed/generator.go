package seed

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/denniswu/swinglab/internal/domain/duration"
	"github.com/denniswu/swinglab/internal/domain/session"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	tierDivisor        = 6
)

// Score tiers. Most synthetic athletes land in the solid band so the
// classifier output looks like real traffic.
const (
	eliteMin      = 90.0
	eliteRange    = 10.0
	solidMin      = 70.0
	solidRange    = 20.0
	developingMin = 50.0
	developRange  = 20.0
	rawMin        = 20.0
	rawRange      = 30.0
)

// Swing and session shape constants.
const (
	minSwings        = 3
	swingSpread      = 10 // swings per session in [minSwings, minSwings+swingSpread)
	refSpeed         = 14.0
	speedMin         = 9.0
	speedRange       = 9.0
	secondsPerSwing  = 20
	secondsJitter    = 20
	backfillWindow   = 30 * 24 * time.Hour
	videoEveryNth    = 3
	caseElite        = 0
	caseSolidA       = 1
	caseSolidB       = 2
	caseSolidC       = 3
	caseDeveloping   = 4
	caseRawBeginning = 5
)

// roster holds the athlete names sessions are attributed to.
var roster = []string{
	"張小明", "李小華", "王小剛", "陳大文", "林小美",
	"黃志豪", "吳雅婷", "劉家豪", "蔡宜君", "鄭承翰",
}

// randomFloat returns a random float64 in [0.0, 1.0) using crypto/rand.
func randomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

func randomInt(max int64) int64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(max))
	return n.Int64()
}

// Generate creates synthetic session records. Aggregates are computed from
// the generated swings, so avg never exceeds best and counts always match.
func Generate(cfg *Config) []session.Record {
	athletes := cfg.Athletes
	if athletes < 1 || athletes > len(roster) {
		athletes = len(roster)
	}

	records := make([]session.Record, cfg.Sessions)
	now := time.Now().UTC()
	for i := range records {
		who := int(randomInt(int64(athletes)))
		records[i] = generateRecord(who, now)
	}
	return records
}

func generateRecord(athlete int, now time.Time) session.Record {
	swingCount := minSwings + int(randomInt(swingSpread))
	baseline := tierScore()

	swings := make([]session.Swing, swingCount)
	var scoreSum, speedSum, bestScore, bestSpeed float64
	for i := range swings {
		score := clampScore(baseline + (randomFloat()-0.5)*10)
		speed := speedMin + randomFloat()*speedRange
		swings[i] = session.Swing{Score: score, Speed: speed}
		if i%videoEveryNth == 0 {
			swings[i].Video = fmt.Sprintf("videos/swing_%s.mp4", uuid.New().String()[:8])
		}
		scoreSum += score
		speedSum += speed
		if score > bestScore {
			bestScore = score
		}
		if speed > bestSpeed {
			bestSpeed = speed
		}
	}

	seconds := swingCount*secondsPerSwing + int(randomInt(secondsJitter))
	stamp := now.Add(-time.Duration(randomFloat() * float64(backfillWindow)))

	return session.Record{
		ID:          uuid.New().String(),
		AthleteID:   fmt.Sprintf("user%03d", athlete+1),
		AthleteName: roster[athlete],
		Timestamp:   session.At(stamp.Truncate(time.Second)),
		Duration:    duration.FromSeconds(float64(seconds)),
		SwingCount:  swingCount,
		AvgScore:    round1(scoreSum / float64(swingCount)),
		AvgSpeed:    round1(speedSum / float64(swingCount)),
		BestScore:   round1(bestScore),
		BestSpeed:   round1(bestSpeed),
		RefSpeed:    refSpeed,
		Swings:      swings,
	}
}

// tierScore picks a session's baseline score with the solid band most
// common.
func tierScore() float64 {
	switch randomInt(tierDivisor) {
	case caseElite:
		return eliteMin + randomFloat()*eliteRange
	case caseSolidA, caseSolidB, caseSolidC:
		return solidMin + randomFloat()*solidRange
	case caseDeveloping:
		return developingMin + randomFloat()*developRange
	default:
		return rawMin + randomFloat()*rawRange
	}
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
