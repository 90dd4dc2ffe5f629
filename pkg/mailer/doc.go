// Package mailer assembles and delivers the contact-form notification email.
//
// The package separates three concerns:
//   - Email is a provider-agnostic, fully-prepared message value.
//   - Sender is the minimal provider interface (see the resend subpackage
//     for the production adapter); test doubles implement it directly.
//   - Mailer wraps a Sender with a per-attempt timeout and a bounded retry,
//     and is the only thing handlers talk to.
//
// ContactNotification builds the one outbound message this service ever
// produces: fixed sender identity, fixed operator recipient, prefixed
// subject, HTML body rendered from an embedded template with entity
// escaping applied at render time, and Reply-To pointing back at the
// person who submitted the form.
package mailer
