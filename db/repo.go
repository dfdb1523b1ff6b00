package db

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repo struct{ DB *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{DB: db} }

// InTx runs fn against a Repo bound to a single database transaction. Any
// error from fn rolls back everything written inside it.
func (r *Repo) InTx(ctx context.Context, fn func(*Repo) error) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repo{DB: tx})
	})
}

var lockForUpdate = clause.Locking{Strength: "UPDATE"}

// forUpdate adds a row lock on stores that support it. SQLite (used by the
// tests) has no FOR UPDATE syntax; its single-writer lock covers the same races.
func (r *Repo) forUpdate(tx *gorm.DB) *gorm.DB {
	if r.DB.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(lockForUpdate)
}
