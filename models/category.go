package models

// Category groups posts under a unique name. Categories have no
// owner; only admins manage them.
type Category struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
}
