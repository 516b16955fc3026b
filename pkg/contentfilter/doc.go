// Package contentfilter detects prohibited and profane content in listing text.
//
// Two checks with different consequences are provided:
//
//   - ContainsSpam is a case-insensitive substring match against a list of
//     prohibited phrases (scam wording, adult terms, payment fraud phrases).
//     A match is meant to block the submission.
//   - ContainsProfanity is a case-insensitive whole-word match against a
//     profanity list. A match is advisory only; Review reports it to a
//     Flagger so a human can look at it later, and the submission proceeds.
//
// The default lists live in DefaultLists. Custom lists can be supplied in
// code or loaded from YAML:
//
//	spam:
//	  - "buy now"
//	  - "wire transfer"
//	profanity:
//	  - "darn"
//
//	lists, err := contentfilter.LoadListsFile("filters.yaml")
//	f, err := contentfilter.New(lists, contentfilter.WithFlagger(myQueue))
//
// Case folding uses golang.org/x/text/cases so matching is not limited to
// ASCII.
package contentfilter
