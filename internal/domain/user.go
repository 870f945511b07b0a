package domain

// User is the canonical end-user shape. A reference must carry an id or an
// email so the backend user can be resolved or created.
type User struct {
	ID    *int
	Name  string
	Email string
}

// Resolvable reports whether the user carries enough identity to resolve or
// create a backend record.
func (u *User) Resolvable() bool {
	if u == nil {
		return false
	}
	return u.ID != nil || u.Email != ""
}
