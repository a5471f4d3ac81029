package sdk

// Envelope is the common response wrapper every API endpoint uses.
// Success reports whether the operation happened; Message is a
// human-readable explanation either way.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SignUpRequest registers a new account.
type SignUpRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpResponse reports the sign-up outcome. EmailDelivered is false when
// the verification email could not be sent; the account still exists.
type SignUpResponse struct {
	Envelope
	EmailDelivered bool `json:"emailDelivered"`
}

// CheckUsernameResponse reports whether a username can still be claimed.
type CheckUsernameResponse struct {
	Envelope
	Available bool `json:"available"`
}

// VerifyCodeRequest confirms account ownership with an emailed code.
type VerifyCodeRequest struct {
	Username string `json:"username"`
	Code     string `json:"code"`
}

// SignInRequest authenticates by username or email.
type SignInRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// SignInResponse carries the session token and a snapshot of the account
// at login time.
type SignInResponse struct {
	Envelope
	AccessToken string      `json:"accessToken"`
	TokenType   string      `json:"tokenType"`
	ExpiresIn   int64       `json:"expiresIn"`
	User        SessionUser `json:"user"`
}

// SessionUser is the account snapshot returned at login.
type SessionUser struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	Verified            bool   `json:"verified"`
	IsAcceptingMessages bool   `json:"isAcceptingMessages"`
}

// AcceptMessagesRequest updates the owner's acceptance flag.
type AcceptMessagesRequest struct {
	AcceptMessages bool `json:"acceptMessages"`
}

// AcceptMessagesResponse reports the current acceptance flag.
type AcceptMessagesResponse struct {
	Envelope
	IsAcceptingMessages bool `json:"isAcceptingMessages"`
}

// SendMessageRequest delivers an anonymous message to a recipient.
type SendMessageRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// SendMessageResponse confirms delivery and carries the new message's id.
type SendMessageResponse struct {
	Envelope
	ID string `json:"id"`
}

// Message is a received anonymous message as the owner sees it.
type Message struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"` // RFC 3339
}

// MessagesResponse lists the owner's messages, newest first.
type MessagesResponse struct {
	Envelope
	Messages []Message `json:"messages"`
}

// SuggestResponse carries suggested questions a sender can pick from.
// Raw is the provider's "a||b||c" batch; Suggestions is the parsed form.
type SuggestResponse struct {
	Envelope
	Raw         string   `json:"raw"`
	Suggestions []string `json:"suggestions"`
}

// HealthChecks itemizes dependency status in readiness responses.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
	Signer   string `json:"signer,omitempty"`
}

// HealthResponse is returned by the livez and readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
