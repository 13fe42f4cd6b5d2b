// Package rights models in-memory editing of a user's permission set
// (global scope plus per-site overrides) ahead of a single save round-trip.
package rights

import (
	"context"
	"sort"

	"asset-console/internal/entities"
)

// Updater persists one scope's rights through the platform API.
type Updater interface {
	UpdateRights(ctx context.Context, userID int, rightsList []string, scopeID string) error
}

// SessionMirror pushes a saved rights set into the session's cached
// permission set, so in-session permission checks see the change without a
// re-login.
type SessionMirror interface {
	ReplaceScope(ctx context.Context, userID int, scopeID string, rightsList []string) error
}

// Editor holds the working copy for exactly one (user, scope) pair.
// Switching user or scope discards unsaved edits; the last selection wins.
type Editor struct {
	updater       Updater
	mirror        SessionMirror
	sessionUserID int

	selectedUser  *entities.UserRightsRecord
	selectedScope string
	editedRights  map[string]struct{}
}

func NewEditor(updater Updater, mirror SessionMirror, sessionUserID int) *Editor {
	return &Editor{
		updater:       updater,
		mirror:        mirror,
		sessionUserID: sessionUserID,
		selectedScope: ScopeGlobal,
		editedRights:  make(map[string]struct{}),
	}
}

// SelectUser resets the editor onto u's global scope.
func (e *Editor) SelectUser(u *entities.UserRightsRecord) {
	e.selectedUser = u
	e.selectedScope = ScopeGlobal
	e.loadScope()
}

// SelectScope switches the working copy to the given scope. A site with no
// override entry yet starts from an empty set.
func (e *Editor) SelectScope(scopeID string) {
	e.selectedScope = scopeID
	e.loadScope()
}

func (e *Editor) loadScope() {
	e.editedRights = make(map[string]struct{})
	if e.selectedUser == nil {
		return
	}
	for _, code := range e.scopeRights(e.selectedScope) {
		e.editedRights[code] = struct{}{}
	}
}

func (e *Editor) scopeRights(scopeID string) []string {
	if scopeID == ScopeGlobal {
		return e.selectedUser.GlobalRights
	}
	for _, sr := range e.selectedUser.SiteRights {
		if sr.SiteID == scopeID {
			return sr.Rights
		}
	}
	return nil
}

// ToggleRight adds the code if absent, removes it if present.
func (e *Editor) ToggleRight(code string) {
	if _, ok := e.editedRights[code]; ok {
		delete(e.editedRights, code)
	} else {
		e.editedRights[code] = struct{}{}
	}
}

func (e *Editor) SelectedScope() string { return e.selectedScope }

func (e *Editor) SelectedUser() *entities.UserRightsRecord { return e.selectedUser }

// EditedRights returns the working copy in stable order.
func (e *Editor) EditedRights() []string {
	out := make([]string, 0, len(e.editedRights))
	for code := range e.editedRights {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func (e *Editor) HasRight(code string) bool {
	_, ok := e.editedRights[code]
	return ok
}

// Save persists the working copy for the selected scope. On success the
// in-memory record is updated (a new site entry is created when the site had
// no override) and, if the edited user is the signed-in user, the session's
// cached rights are replaced for the same scope. On failure nothing changes.
func (e *Editor) Save(ctx context.Context) error {
	if e.selectedUser == nil {
		return ErrNoUserSelected
	}

	rightsList := e.EditedRights()
	if err := e.updater.UpdateRights(ctx, e.selectedUser.User.ID, rightsList, e.selectedScope); err != nil {
		return err
	}

	e.applyToRecord(rightsList)

	if e.mirror != nil && e.selectedUser.User.ID == e.sessionUserID {
		if err := e.mirror.ReplaceScope(ctx, e.sessionUserID, e.selectedScope, rightsList); err != nil {
			// The save itself succeeded; a stale session cache heals on
			// the next login and must not fail the operation.
			return nil
		}
	}
	return nil
}

func (e *Editor) applyToRecord(rightsList []string) {
	if e.selectedScope == ScopeGlobal {
		e.selectedUser.GlobalRights = rightsList
		return
	}
	for i := range e.selectedUser.SiteRights {
		if e.selectedUser.SiteRights[i].SiteID == e.selectedScope {
			e.selectedUser.SiteRights[i].Rights = rightsList
			return
		}
	}
	e.selectedUser.SiteRights = append(e.selectedUser.SiteRights, entities.SiteRights{
		SiteID: e.selectedScope,
		Rights: rightsList,
	})
}
