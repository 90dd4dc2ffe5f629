// Package sanitizer is the canonical input sanitizer shared by the client
// submission controller and the server endpoint. Keeping both sides on one
// implementation eliminates drift between the preview the user sees and
// what the server actually enforces.
//
// Sanitize removes malicious constructs from free text; Strict layers a
// bluemonday StrictPolicy pass on top of Sanitize for the authoritative
// pre-send path. Making the surviving text literal for an HTML context is
// a rendering concern, handled by html/template in the mailer.
package sanitizer
