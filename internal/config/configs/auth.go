package configs

// Auth configures verification of the bearer tokens that guard admin
// routes. Tokens are HMAC-signed JWTs issued by the identity service; this
// application only verifies them.
type Auth struct {
	// Secret is the shared HMAC signing secret. The default exists for
	// local development only.
	Secret string `env:"SECRET" envDefault:"dev-secret-change-me"`
}
