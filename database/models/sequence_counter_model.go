package models

// SequenceCounter backs the human-readable asset identifiers (DOC-001,
// VID-042, ...). One row per prefix, incremented atomically inside the
// allocation transaction - never cached in process memory.
type SequenceCounter struct {
	Prefix string `json:"prefix" gorm:"primarykey;type:text;"`
	Value  int    `json:"value" gorm:"not null;default:0;"`
}

func (c SequenceCounter) TableName() string {
	return "sequence_counters"
}
