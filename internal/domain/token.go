package domain

// Token is the short-lived credential used to initialize the vendor's
// client-side widget. It is opaque to the gateway: issued by the vendor,
// forwarded to the browser unchanged, never persisted and never logged.
type Token string
