package resend

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
// An empty APIKey means the provider is not configured; callers must not
// construct a Sender in that case and should fail fast instead.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
}
