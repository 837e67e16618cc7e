// internal/domain/bench/feedback.go
package bench

import "regexp"

// Entry is a feedback string split into its date and body. Date is empty
// when the source text carried no recognizable date.
type Entry struct {
	Date string
	Text string
}

// Feedback strings arrive in two historical shapes:
//
//	Training on 2024-06-01 by Jane: Great progress
//	(2024-07-01): Good technical skills.
//
// The trainer shape is tried first. Anything else is kept verbatim as Text.
var (
	trainerFeedbackRe   = regexp.MustCompile(`^Training on (\d{4}-\d{2}-\d{2}) by .+?: (.*)$`)
	interviewFeedbackRe = regexp.MustCompile(`^\((\d{4}-\d{2}-\d{2})\): (.*)$`)
)

// ParseFeedback splits a free-text feedback string into date and text.
// A string matching neither pattern is returned whole as Text with no date;
// malformed input is never an error.
func ParseFeedback(s string) Entry {
	if m := trainerFeedbackRe.FindStringSubmatch(s); m != nil {
		return Entry{Date: m[1], Text: m[2]}
	}
	if m := interviewFeedbackRe.FindStringSubmatch(s); m != nil {
		return Entry{Date: m[1], Text: m[2]}
	}
	return Entry{Text: s}
}
