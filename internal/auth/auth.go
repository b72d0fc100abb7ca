// Package auth holds the shared-secret token credential for the CIF API.
package auth

// Token is the shared-secret credential identifying the caller to the
// remote service. It travels as a query parameter on every request.
type Token string

// Valid reports whether a token is configured.
func (t Token) Valid() bool {
	return t != ""
}

// Redacted returns a loggable form of the token: the first four characters
// followed by an ellipsis. Short tokens are fully masked.
func (t Token) Redacted() string {
	if len(t) <= 4 {
		return "****"
	}
	return string(t[:4]) + "..."
}
