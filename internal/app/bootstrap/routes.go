// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	errorsfeature "github.com/dalemusser/codetrack/internal/app/features/errors"
	exercisesfeature "github.com/dalemusser/codetrack/internal/app/features/exercises"
	healthfeature "github.com/dalemusser/codetrack/internal/app/features/health"
	linksfeature "github.com/dalemusser/codetrack/internal/app/features/links"
	loginfeature "github.com/dalemusser/codetrack/internal/app/features/login"
	logoutfeature "github.com/dalemusser/codetrack/internal/app/features/logout"
	profilefeature "github.com/dalemusser/codetrack/internal/app/features/profile"
	programsfeature "github.com/dalemusser/codetrack/internal/app/features/programs"
	registerfeature "github.com/dalemusser/codetrack/internal/app/features/register"
	userstore "github.com/dalemusser/codetrack/internal/app/store/users"
	"github.com/dalemusser/codetrack/internal/app/system/auth"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// CodeTrack initializes the template engine, applies session and CSRF
// middleware, and attaches the feature routers: authentication, profile,
// exercises, programs, and links.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// A session whose user was removed from the database counts as signed out.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	r := chi.NewRouter()
	r.NotFound(errorsHandler.NotFound)
	r.MethodNotAllowed(errorsHandler.MethodNotAllowed)

	// Health and static assets sit outside session and CSRF handling.
	healthHandler := healthfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(r chi.Router) {
		if !secure {
			// Over plain http the Referer check must not demand https.
			r.Use(plaintextRequests)
		}
		r.Use(csrfMiddleware(appCfg, secure, logger))

		// Loads SessionUser into context if logged in.
		r.Use(sessionMgr.LoadSessionUser)

		loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
		r.Mount("/login", loginfeature.Routes(loginHandler))

		registerHandler := registerfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
		r.Mount("/register", registerfeature.Routes(registerHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
		r.Mount("/logout", logoutfeature.Routes(logoutHandler))

		profileHandler := profilefeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
		r.Mount("/profile", profilefeature.Routes(profileHandler, sessionMgr))

		exercisesHandler := exercisesfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
		r.Group(exercisesfeature.Routes(exercisesHandler, sessionMgr))

		programsHandler := programsfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
		r.Group(programsfeature.Routes(programsHandler, sessionMgr))

		linksHandler := linksfeature.NewHandler(deps.MongoDatabase, sessionMgr, errLog, logger)
		r.Group(linksfeature.Routes(linksHandler, sessionMgr))
	})

	return r, nil
}

// csrfKey returns the configured CSRF key, or one derived from the session
// key so a single secret is enough to run the app.
func csrfKey(appCfg AppConfig) []byte {
	if appCfg.CSRFKey != "" {
		return []byte(appCfg.CSRFKey)
	}
	sum := sha256.Sum256([]byte("csrf:" + appCfg.SessionKey))
	return sum[:]
}

func csrfMiddleware(appCfg AppConfig, secure bool, logger *zap.Logger) func(http.Handler) http.Handler {
	return csrf.Protect(csrfKey(appCfg),
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("csrf check failed",
				zap.String("path", r.URL.Path),
				zap.Error(csrf.FailureReason(r)))
			errorsfeature.RenderForbidden(w, r, "Your form expired. Please go back and try again.", "/")
		})),
	)
}

func plaintextRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
