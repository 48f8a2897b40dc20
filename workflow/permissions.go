// Package workflow decides whether an actor may perform a content or user
// mutation and computes the fields the caller has to persist. Nothing in it
// touches the database or the request; every input is passed explicitly.
package workflow

import (
	"kaalchakra-cms/models"
)

// Actor is the authenticated user a decision is made for.
type Actor struct {
	ID   uint
	Role models.UserRole
}

type Action string

const (
	ActionCreateArticle     Action = "article:create"
	ActionReadArticle       Action = "article:read"
	ActionUpdateArticle     Action = "article:update"
	ActionDeleteArticle     Action = "article:delete"
	ActionPublishArticle    Action = "article:publish"
	ActionManageUsers       Action = "user:manage"
	ActionDeleteUser        Action = "user:delete"
	ActionManageCategories  Action = "category:manage"
	ActionManageTags        Action = "tag:manage"
	ActionModerateComments  Action = "comment:moderate"
	ActionManageENewspapers Action = "enewspaper:manage"
)

// Scope is how far a grant reaches.
type Scope int

const (
	ScopeNone Scope = iota
	// ScopeOwn limits the grant to articles the actor authored.
	ScopeOwn
	// ScopeDrafts limits the grant to articles still in DRAFT.
	ScopeDrafts
	ScopeAny
)

var (
	staffGrants = map[Action]Scope{
		ActionCreateArticle:     ScopeAny,
		ActionReadArticle:       ScopeAny,
		ActionUpdateArticle:     ScopeAny,
		ActionDeleteArticle:     ScopeAny,
		ActionPublishArticle:    ScopeAny,
		ActionManageUsers:       ScopeAny,
		ActionManageCategories:  ScopeAny,
		ActionManageTags:        ScopeAny,
		ActionModerateComments:  ScopeAny,
		ActionManageENewspapers: ScopeAny,
	}

	grants = map[models.UserRole]map[Action]Scope{
		models.RoleOwner: withGrant(staffGrants, ActionDeleteUser, ScopeAny),
		models.RoleAdmin: staffGrants,
		models.RoleEditor: {
			ActionCreateArticle:     ScopeAny,
			ActionReadArticle:       ScopeAny,
			ActionUpdateArticle:     ScopeAny,
			ActionDeleteArticle:     ScopeDrafts,
			ActionPublishArticle:    ScopeAny,
			ActionModerateComments:  ScopeAny,
			ActionManageENewspapers: ScopeAny,
		},
		models.RoleReporter: {
			ActionCreateArticle: ScopeAny,
			ActionReadArticle:   ScopeOwn,
			ActionUpdateArticle: ScopeOwn,
		},
	}

	// assignable lists, per role, the roles it may create, assign and
	// manage. OWNER appears in nobody's list.
	assignable = map[models.UserRole][]models.UserRole{
		models.RoleOwner: {models.RoleAdmin, models.RoleEditor, models.RoleReporter},
		models.RoleAdmin: {models.RoleEditor, models.RoleReporter},
	}
)

func withGrant(base map[Action]Scope, action Action, scope Scope) map[Action]Scope {
	m := make(map[Action]Scope, len(base)+1)
	for k, v := range base {
		m[k] = v
	}
	m[action] = scope
	return m
}

// ScopeOf returns the scope role holds for action.
func ScopeOf(role models.UserRole, action Action) Scope {
	return grants[role][action]
}

// Can reports whether role holds action in any scope.
func Can(role models.UserRole, action Action) bool {
	return ScopeOf(role, action) != ScopeNone
}

// CanAssign reports whether role may create, assign or manage accounts of
// the target role.
func CanAssign(role, target models.UserRole) bool {
	for _, r := range assignable[role] {
		if r == target {
			return true
		}
	}
	return false
}

