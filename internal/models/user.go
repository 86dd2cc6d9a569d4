package models

type User struct {
	ID       int32  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser is the caller-supplied part of a User. Password is opaque here;
// the user service stores a bcrypt hash in it.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
