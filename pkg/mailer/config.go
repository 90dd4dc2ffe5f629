package mailer

// Config holds contact notification settings: the fixed operator inbox and
// the fixed sender identity the notification is dispatched under.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Recipient     string `env:"CONTACT_RECIPIENT" envDefault:"thomas@nuverum.com"`
	SenderEmail   string `env:"CONTACT_FROM_EMAIL" envDefault:"noreply@nuverum.com"`
	SenderName    string `env:"CONTACT_FROM_NAME" envDefault:"Contact Form"`
	SubjectPrefix string `env:"CONTACT_SUBJECT_PREFIX" envDefault:"Contact Form: "`
}
