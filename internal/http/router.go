package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lumenlab/whisperbox/internal/service"
	"github.com/lumenlab/whisperbox/internal/store"
	"github.com/lumenlab/whisperbox/pkg/httpx"
	"github.com/lumenlab/whisperbox/pkg/jwtx"
	"github.com/lumenlab/whisperbox/pkg/slogx"

	_ "github.com/lumenlab/whisperbox/api" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	SignupService       *service.SignupService
	VerificationService *service.VerificationService
	SessionService      *service.SessionService
	AcceptanceService   *service.AcceptanceService
	MessageService      *service.MessageService
	SuggestService      *service.SuggestService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerMessages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			WhisperBox API
//	@version		0.1.0
//	@description	Anonymous messaging service: registered owners share a public link,
//	@description	anyone can drop them a message without revealing who they are.
//
//	@contact.name	LumenLab
//	@contact.url	https://github.com/lumenlab/whisperbox
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAccounts() {
	// POST /api/sign-up - strict rate limit (account creation)
	signUp := &SignUpHandler{SignupService: r.SignupService}
	r.Mux.Handle("POST /api/sign-up",
		httpx.Chain(signUp,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /api/check-username-unique - public lookup, high limit
	checkUsername := &CheckUsernameHandler{SignupService: r.SignupService}
	r.Mux.Handle("GET /api/check-username-unique",
		httpx.Chain(checkUsername,
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /api/verify-code - strict rate limit (code guessing)
	verifyCode := &VerifyCodeHandler{VerificationService: r.VerificationService}
	r.Mux.Handle("POST /api/verify-code",
		httpx.Chain(verifyCode,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/sign-in - strict rate limit (credential attempts)
	signIn := &SignInHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /api/sign-in",
		httpx.Chain(signIn,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// Acceptance flag: owner-only, both verbs
	acceptance := &AcceptMessagesHandler{AcceptanceService: r.AcceptanceService}
	r.Mux.Handle("GET /api/accept-messages",
		httpx.Chain(http.HandlerFunc(acceptance.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /api/accept-messages",
		httpx.Chain(http.HandlerFunc(acceptance.HandlePost),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerMessages() {
	// POST /api/send-message - anonymous intake, lenient limit
	send := &SendMessageHandler{MessageService: r.MessageService}
	r.Mux.Handle("POST /api/send-message",
		httpx.Chain(send,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// Owner inbox
	messages := &MessagesHandler{MessageService: r.MessageService}
	r.Mux.Handle("GET /api/messages",
		httpx.Chain(http.HandlerFunc(messages.HandleList),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("DELETE /api/messages/{id}",
		httpx.Chain(http.HandlerFunc(messages.HandleDelete),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByAccount(httpx.ModerateLimit),
		),
	)

	// POST /api/suggest-messages - calls the upstream model, moderate limit
	suggest := &SuggestHandler{SuggestService: r.SuggestService}
	r.Mux.Handle("POST /api/suggest-messages",
		httpx.Chain(suggest,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
