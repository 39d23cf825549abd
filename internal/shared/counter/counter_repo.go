package counter

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const EmployeeIDSequence = "employee_id"

// Sequence is a named singleton row holding the last issued value.
type Sequence struct {
	Name      string    `gorm:"column:name;type:varchar(50);primaryKey"`
	LastValue int64     `gorm:"column:last_value;not null;default:0"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Sequence) TableName() string {
	return "id_sequences"
}

//go:generate mockgen -source=counter_repo.go -destination=mock/counter_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	NextValue(ctx context.Context, name string) (int64, error)
}

type repository struct {
	db   *gorm.DB
	inTx bool
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx, inTx: true}
}

// NextValue locks the sequence row, increments it and returns the new value.
// Inside a caller transaction the lock is held until that transaction ends,
// so a rolled back caller leaves a gap instead of a duplicate.
func (r *repository) NextValue(ctx context.Context, name string) (int64, error) {
	if r.inTx {
		return next(ctx, r.db, name)
	}

	var value int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		v, err := next(ctx, tx, name)
		value = v
		return err
	})
	return value, err
}

func next(ctx context.Context, tx *gorm.DB, name string) (int64, error) {
	db := tx.WithContext(ctx)

	if err := db.Exec(
		`INSERT INTO id_sequences (name, last_value, updated_at) VALUES (?, 0, now()) ON CONFLICT (name) DO NOTHING`,
		name,
	).Error; err != nil {
		return 0, err
	}

	var seq Sequence
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", name).
		Take(&seq).Error; err != nil {
		return 0, err
	}

	seq.LastValue++
	if err := db.Exec(
		`UPDATE id_sequences SET last_value = ?, updated_at = now() WHERE name = ?`,
		seq.LastValue, name,
	).Error; err != nil {
		return 0, err
	}

	return seq.LastValue, nil
}
