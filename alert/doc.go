// Package alert sends email notifications when a comparison finds
// changes. It speaks plain SMTP with AUTH PLAIN, which covers Gmail
// app-password setups and most relay hosts. The mailer is opt-in: the
// engine never calls it, and [Mailer.Configured] lets callers skip
// sending when no credentials were provided.
package alert
