package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User    UserRepo
	Project ProjectRepo
	Bug     BugRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		User:    NewUserRepo(db),
		Project: NewProjectRepo(db),
		Bug:     NewBugRepo(db),
		db:      db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:    r.User.WithTx(tx),
		Project: r.Project.WithTx(tx),
		Bug:     r.Bug.WithTx(tx),
		db:      tx,
	}
}

// ExecTx runs fn inside a transaction. Repos assembled without a database
// handle (as in unit tests) run fn directly.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
