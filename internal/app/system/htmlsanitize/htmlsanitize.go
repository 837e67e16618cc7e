// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize cleans free-text coming back from the BMS (mentor
// feedback, detailed interview feedback, remarks) before it is rendered as
// HTML. The text originates from other users, so it is treated as untrusted.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = bluemonday.UGCPolicy()

// Sanitize strips everything outside the user-generated-content policy:
// scripts, event handlers, javascript: URLs. Basic formatting survives.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}
