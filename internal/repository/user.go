package repository

import (
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user.go -destination=mock/user.go -package=mock

type UserRepo interface {
	GetUserByID(id string) (user.User, error)
	GetUserByEmail(email string) (user.User, error)
	ListUsers() ([]user.User, error)
	ListUsersByIDs(ids []string) ([]user.User, error)
	CreateUser(u *user.User) error
	SaveUser(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) GetUserByID(id string) (user.User, error) {
	var u user.User
	err := r.db.Where("id = ?", id).First(&u).Error
	return u, err
}

func (r *DBUserRepo) GetUserByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.Where("email = ?", email).First(&u).Error
	return u, err
}

func (r *DBUserRepo) ListUsers() ([]user.User, error) {
	var users []user.User
	err := r.db.Order("name ASC").Find(&users).Error
	return users, err
}

func (r *DBUserRepo) ListUsersByIDs(ids []string) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}
	var users []user.User
	err := r.db.Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
