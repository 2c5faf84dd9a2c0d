package acl

// Error codes returned by the authorization server that have a canonical
// user-facing message.
const (
	CodeAuthenticationFailed = "E0000004"
	CodeInvalidToken         = "E0000011"
	CodePasswordResetFailed  = "E0000017"
	CodeRateLimited          = "E0000047"
	CodePasswordExpired      = "E0000064"
	CodeInvalidPasscode      = "E0000068"
	CodeMFALockedOut         = "E0000069"
	CodePasswordComplexity   = "E0000080"
	CodeAccountLocked        = "E0000119"
	CodeIncorrectCredentials = "E0000207"
)

// errorCodeMessages is initialized once and never written afterwards,
// so concurrent reads need no locking.
var errorCodeMessages = map[string]string{
	CodeAuthenticationFailed: "Sign in failed!",
	CodeInvalidToken:         "Invalid token provided",
	CodePasswordResetFailed:  "Password reset failed",
	CodeRateLimited:          "You exceeded the maximum number of requests. Try again in a while.",
	CodePasswordExpired:      "Your password has expired.",
	CodeInvalidPasscode:      "Invalid Passcode/Answer",
	CodeMFALockedOut:         "Your account was locked due to excessive MFA attempts.",
	CodePasswordComplexity:   "The password does not meet the complexity requirements of the current password policy.",
	CodeAccountLocked:        "Your account is locked. Please contact your administrator.",
	CodeIncorrectCredentials: "Incorrect username or password.",
}

// LookupErrorCode returns the canonical message for an error code.
func LookupErrorCode(code string) (string, bool) {
	if code == "" {
		return "", false
	}

	msg, ok := errorCodeMessages[code]

	return msg, ok
}
