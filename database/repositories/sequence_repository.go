package repositories

import (
	"gorm.io/gorm"

	"github.com/forshine-dev/shinebuilder/database/models"
)

type sequenceCounterRepository struct {
	db *gorm.DB
}

func NewSequenceCounterRepository(db *gorm.DB) *sequenceCounterRepository {
	return &sequenceCounterRepository{db: db}
}

// NextValue increments the per-prefix counter and returns the new value in
// a single upsert-and-return statement. Counters are monotonic and values
// are never reused, even across concurrent allocations.
func (r *sequenceCounterRepository) NextValue(prefix string) (int, error) {
	var counter models.SequenceCounter
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Raw(`INSERT INTO sequence_counters (prefix, value) VALUES (?, 1)
ON CONFLICT (prefix) DO UPDATE SET value = sequence_counters.value + 1
RETURNING prefix, value`, prefix).Scan(&counter).Error
	})
	if err != nil {
		return 0, err
	}
	return counter.Value, nil
}
