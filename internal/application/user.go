package application

import (
	"errors"
	"strings"

	"github.com/linskybing/bugtrackr/internal/api/middleware"
	"github.com/linskybing/bugtrackr/internal/config"
	"github.com/linskybing/bugtrackr/internal/domain/user"
	"github.com/linskybing/bugtrackr/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPasswordHashFailure = errors.New("failed to hash password")

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{
		Repos: repos,
	}
}

// RegisterUser creates a regular account. A role in the input is ignored;
// admins are only created through CreateAdmin.
func (s *UserService) RegisterUser(input user.RegisterInput) (user.User, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return user.User{}, ErrUserFieldsRequired
	}

	_, err := s.Repos.User.GetUserByEmail(email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if err == nil {
		return user.User{}, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	usr := user.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     user.RoleUser,
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		// lost a race with a concurrent sign-up on the unique email index
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, err
	}
	return usr, nil
}

// LoginUser checks the credentials and issues a bearer token.
func (s *UserService) LoginUser(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Role, config.TokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) ListUserSummaries(actor user.Actor) ([]user.Summary, error) {
	if err := authenticated(actor); err != nil {
		return nil, err
	}
	users, err := s.Repos.User.ListUsers()
	if err != nil {
		return nil, err
	}
	out := make([]user.Summary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}
	return out, nil
}

// CreateAdmin creates an admin account, or promotes and re-keys the existing
// account with that email.
func (s *UserService) CreateAdmin(name, email, password string) (user.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return user.User{}, ErrUserFieldsRequired
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, ErrPasswordHashFailure
	}

	var admin user.User
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		existing, err := r.User.GetUserByEmail(email)
		switch {
		case err == nil:
			existing.Name = name
			existing.Password = string(hashed)
			existing.Role = user.RoleAdmin
			admin = existing
			return r.User.SaveUser(&admin)
		case errors.Is(err, gorm.ErrRecordNotFound):
			admin = user.User{
				Name:     name,
				Email:    email,
				Password: string(hashed),
				Role:     user.RoleAdmin,
			}
			return r.User.CreateUser(&admin)
		default:
			return err
		}
	})
	if err != nil {
		return user.User{}, err
	}
	return admin, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
