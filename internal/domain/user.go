package domain

// Credential is a login record. Exactly one of Password or PasswordHash is
// set: seeded demo records carry a plaintext password, records provisioned
// with a bcrypt hash carry PasswordHash. Email is the lookup key.
type Credential struct {
	Email        string `json:"email"`
	Password     string `json:"-"`
	PasswordHash string `json:"-"`
	Tenant       string `json:"tenant"`
	Role         Role   `json:"role"`
}
