package repository

import (
	"github.com/linskybing/bugtrackr/internal/domain/bug"
	"github.com/linskybing/bugtrackr/internal/domain/project"
	"gorm.io/gorm"
)

//go:generate mockgen -source=bug.go -destination=mock/bug.go -package=mock

type BugRepo interface {
	GetBugByID(id string) (bug.Bug, error)
	ListBugs() ([]bug.Bug, error)
	CreateBug(b *bug.Bug) error
	UpdateBug(b *bug.Bug) error
	DeleteBug(id string) error
	CountOrphanedBugs() (int64, error)
	WithTx(tx *gorm.DB) BugRepo
}

type DBBugRepo struct {
	db *gorm.DB
}

func NewBugRepo(db *gorm.DB) *DBBugRepo {
	return &DBBugRepo{
		db: db,
	}
}

func (r *DBBugRepo) GetBugByID(id string) (bug.Bug, error) {
	var b bug.Bug
	err := r.db.Where("id = ?", id).First(&b).Error
	return b, err
}

// ListBugs returns every bug, newest first.
func (r *DBBugRepo) ListBugs() ([]bug.Bug, error) {
	var bugs []bug.Bug
	err := r.db.Order("created_at DESC").Find(&bugs).Error
	return bugs, err
}

func (r *DBBugRepo) CreateBug(b *bug.Bug) error {
	return r.db.Create(b).Error
}

func (r *DBBugRepo) UpdateBug(b *bug.Bug) error {
	return r.db.Save(b).Error
}

func (r *DBBugRepo) DeleteBug(id string) error {
	return r.db.Where("id = ?", id).Delete(&bug.Bug{}).Error
}

// CountOrphanedBugs counts bugs whose project row no longer exists.
func (r *DBBugRepo) CountOrphanedBugs() (int64, error) {
	var n int64
	projectIDs := r.db.Model(&project.Project{}).Select("id")
	err := r.db.Model(&bug.Bug{}).Where("project_id NOT IN (?)", projectIDs).Count(&n).Error
	return n, err
}

func (r *DBBugRepo) WithTx(tx *gorm.DB) BugRepo {
	if tx == nil {
		return r
	}
	return &DBBugRepo{
		db: tx,
	}
}
