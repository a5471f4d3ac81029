package domain

// Session is an issued dashboard session token plus the claim snapshot it
// carries. The snapshot reflects the account at login time; live state is
// always re-read from the store.
type Session struct {
	AccessToken string
	TokenType   string // "Bearer"
	ExpiresIn   int64  // seconds

	AccountID         string
	Username          string
	Verified          bool
	AcceptingMessages bool
}
