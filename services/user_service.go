package services

import (
	"golang.org/x/crypto/bcrypt"

	"kaalchakra-cms/logger"
	"kaalchakra-cms/models"
	"kaalchakra-cms/repositories"
	"kaalchakra-cms/workflow"
)

type UserService interface {
	GetUsers(actor workflow.Actor, page, limit int) ([]models.User, int64, error)
	CreateUser(actor workflow.Actor, in models.CreateUserInput) (*models.User, error)
	UpdateUser(actor workflow.Actor, id uint, in models.UpdateUserInput) (*models.User, error)
	DeleteUser(actor workflow.Actor, id uint) error
}

type userService struct {
	userRepo repositories.UserRepository
	authz    *workflow.Authorizer
}

func NewUserService(userRepo repositories.UserRepository, authz *workflow.Authorizer) UserService {
	return &userService{userRepo: userRepo, authz: authz}
}

func (s *userService) GetUsers(actor workflow.Actor, page, limit int) ([]models.User, int64, error) {
	if err := observe(string(workflow.ActionManageUsers), s.authz.AuthorizeListUsers(actor)); err != nil {
		return nil, 0, err
	}
	users, total, err := s.userRepo.List(page, limit)
	if err != nil {
		return nil, 0, translateDBError(err, "users")
	}
	return users, total, nil
}

func (s *userService) CreateUser(actor workflow.Actor, in models.CreateUserInput) (*models.User, error) {
	user, err := s.authz.AuthorizeCreateUser(actor, in)
	if err := observe(string(workflow.ActionManageUsers), err); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(user.Email); err == nil {
		return nil, models.ErrConflict("a user with email %s already exists", user.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.Password = string(hashed)

	if err := s.userRepo.Create(user); err != nil {
		return nil, translateDBError(err, "user")
	}
	logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Uint("created_by", actor.ID).Msg("user created")
	return user, nil
}

func (s *userService) UpdateUser(actor workflow.Actor, id uint, in models.UpdateUserInput) (*models.User, error) {
	target, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, translateDBError(err, "user")
	}

	updated, err := s.authz.AuthorizeUpdateUser(actor, target, in)
	if err := observe(string(workflow.ActionManageUsers), err); err != nil {
		return nil, err
	}

	if err := s.userRepo.Update(updated); err != nil {
		return nil, translateDBError(err, "user")
	}
	if updated.Role != target.Role {
		logger.Info().Uint("user_id", id).Str("from", string(target.Role)).Str("to", string(updated.Role)).Uint("actor_id", actor.ID).Msg("user role changed")
	}
	return updated, nil
}

func (s *userService) DeleteUser(actor workflow.Actor, id uint) error {
	target, err := s.userRepo.GetByID(id)
	if err != nil {
		return translateDBError(err, "user")
	}
	if err := observe(string(workflow.ActionDeleteUser), s.authz.AuthorizeDeleteUser(actor, target)); err != nil {
		return err
	}

	count, err := s.userRepo.CountArticles(id)
	if err != nil {
		return translateDBError(err, "user")
	}
	if count > 0 {
		return models.ErrConflict("user still has %d articles, reassign or delete them first", count)
	}

	if err := s.userRepo.Delete(id); err != nil {
		return translateDBError(err, "user")
	}
	logger.Info().Uint("user_id", id).Uint("actor_id", actor.ID).Msg("user deleted")
	return nil
}
