package domain

// User is an operator account for the administrative interface.
// PasswordHash holds a bcrypt hash; the plain password never reaches storage.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Active       bool   `json:"ativo"`
}
