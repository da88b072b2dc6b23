// file: internals/features/users/user_rights/service/gate.go
//
// Gate permission: fungsi murni atas (role, matrix, page, action).
// Superadmin bypass total; user tanpa row ditolak (fail-closed).
package service

import (
	"fmt"
	"log"

	"lembagaku_backend/internals/constants"
	"lembagaku_backend/internals/features/users/user_rights/model"
)

type Action string

const (
	ActionView   Action = "view"
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

func (a Action) IsValid() bool {
	switch a {
	case ActionView, ActionAdd, ActionEdit, ActionDelete:
		return true
	}
	return false
}

type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Authorize memutuskan boleh/tidaknya (user, page, action).
// rights boleh nil (user belum pernah diberi matrix).
func Authorize(role string, rights *model.UserRightModel, page string, action Action) Decision {
	if constants.IsPrivilegedRole(role) {
		return allow()
	}

	if !action.IsValid() {
		return deny(fmt.Sprintf("Unknown action %q", action))
	}
	if !constants.IsValidPage(page) {
		return deny(fmt.Sprintf("Unknown page %q", page))
	}

	if rights == nil {
		return deny("No permissions assigned")
	}

	perms, err := rights.PagePermissions()
	if err != nil {
		log.Printf("[ERROR] matrix permission user %s rusak: %v", rights.UserID, err)
		return deny("No permissions assigned")
	}

	for _, p := range perms {
		if p.Page != page {
			continue
		}
		var ok bool
		switch action {
		case ActionView:
			ok = p.View
		case ActionAdd:
			ok = p.Add
		case ActionEdit:
			ok = p.Edit
		case ActionDelete:
			ok = p.Delete
		}
		if ok {
			return allow()
		}
		return deny(fmt.Sprintf("Access denied to %s %s", action, page))
	}

	// page tidak ada di matrix = ditolak, bukan diloloskan
	return deny(fmt.Sprintf("Access denied to %s %s", action, page))
}
