package workflow

import (
	"strings"

	"kaalchakra-cms/models"
)

func (a *Authorizer) AuthorizeListUsers(actor Actor) error {
	return a.Authorize(actor, ActionManageUsers)
}

// AuthorizeCreateUser returns the account to create, without its password
// hash.
func (a *Authorizer) AuthorizeCreateUser(actor Actor, in models.CreateUserInput) (*models.User, error) {
	if err := a.Authorize(actor, ActionManageUsers); err != nil {
		return nil, err
	}
	if !in.Role.Valid() {
		return nil, models.ErrInvalidRequest("invalid role %q", in.Role)
	}
	if !CanAssign(actor.Role, in.Role) {
		return nil, models.ErrForbidden("%s cannot create %s accounts", actor.Role, in.Role)
	}
	return &models.User{
		Name:  strings.TrimSpace(in.Name),
		Email: strings.ToLower(strings.TrimSpace(in.Email)),
		Role:  in.Role,
	}, nil
}

// AuthorizeUpdateUser returns target with the requested name and role
// applied. Acting on one's own account is rejected before any role rule.
func (a *Authorizer) AuthorizeUpdateUser(actor Actor, target *models.User, in models.UpdateUserInput) (*models.User, error) {
	if err := checkActor(actor); err != nil {
		return nil, err
	}
	if target.ID == actor.ID {
		return nil, models.ErrInvalidRequest("you cannot modify your own account")
	}
	if !Can(actor.Role, ActionManageUsers) {
		return nil, models.ErrForbidden("%s is not allowed to manage users", actor.Role)
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, models.ErrInvalidRequest("invalid role %q", *in.Role)
		}
		if !CanAssign(actor.Role, *in.Role) {
			return nil, models.ErrForbidden("%s cannot assign the %s role", actor.Role, *in.Role)
		}
	}
	if !CanAssign(actor.Role, target.Role) {
		return nil, models.ErrForbidden("%s cannot modify %s accounts", actor.Role, target.Role)
	}

	result := *target
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, models.ErrInvalidRequest("name cannot be empty")
		}
		result.Name = name
	}
	if in.Role != nil {
		result.Role = *in.Role
	}
	return &result, nil
}

func (a *Authorizer) AuthorizeDeleteUser(actor Actor, target *models.User) error {
	if err := checkActor(actor); err != nil {
		return err
	}
	if target.ID == actor.ID {
		return models.ErrInvalidRequest("you cannot delete your own account")
	}
	if !Can(actor.Role, ActionDeleteUser) {
		return models.ErrForbidden("only %s can delete users", models.RoleOwner)
	}
	if !CanAssign(actor.Role, target.Role) {
		return models.ErrForbidden("%s cannot delete %s accounts", actor.Role, target.Role)
	}
	return nil
}
