package dtos

import "time"

// GapTuple identifies a single uncovered behavior leaf by its full ancestor
// chain.
type GapTuple struct {
	Pillar       string `json:"pillar"`
	SubComponent string `json:"subComponent"`
	Competence   string `json:"competence"`
	Behavior     string `json:"behavior"`
}

type PillarStats struct {
	Pillar           string     `json:"pillar"`
	TotalBehaviors   int        `json:"totalBehaviors"`
	CoveredBehaviors int        `json:"coveredBehaviors"`
	Coverage         int        `json:"coverage"`
	Missing          []GapTuple `json:"missing"`
}

// CoverageReport is the wire format the coverage engine produces. For a
// given input snapshot the report is deterministic apart from GeneratedAt.
type CoverageReport struct {
	PerPillar     []PillarStats `json:"perPillarStats"`
	GlobalMissing []GapTuple    `json:"globalMissing"`
	TotalGaps     int           `json:"totalGaps"`
	GeneratedAt   time.Time     `json:"generatedAt"`
}
