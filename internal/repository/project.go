package repository

import (
	"github.com/linskybing/bugtrackr/internal/domain/project"
	"gorm.io/gorm"
)

//go:generate mockgen -source=project.go -destination=mock/project.go -package=mock

type ProjectRepo interface {
	GetProjectByID(id string) (project.Project, error)
	ListProjects() ([]project.Project, error)
	ListProjectsByIDs(ids []string) ([]project.Project, error)
	CreateProject(p *project.Project) error
	UpdateProject(p *project.Project) error
	DeleteProject(id string) error
	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{
		db: db,
	}
}

func (r *DBProjectRepo) GetProjectByID(id string) (project.Project, error) {
	var p project.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	return p, err
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Order("created_at ASC").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByIDs(ids []string) ([]project.Project, error) {
	if len(ids) == 0 {
		return []project.Project{}, nil
	}
	var projects []project.Project
	err := r.db.Where("id IN ?", ids).Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) UpdateProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id string) error {
	return r.db.Where("id = ?", id).Delete(&project.Project{}).Error
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{
		db: tx,
	}
}
