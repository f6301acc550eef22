// Package importance decides how prominently a runtime log line is shown.
//
// # Levels
//
// Low < Medium < High < VeryHigh are ordered. Error sits outside that order
// and always gets the heaviest style.
//
// # Rules
//
// Classify walks an ordered rule list and returns the result of the first
// rule that matches:
//
//  1. The lower-cased body contains "error: ", "error ", "err: ", "err ",
//     "failure: ", "failure ", "failed: ", "failed ", "fail: " or "fail ":
//     Error, whatever the level.
//  2. INFO: VeryHigh.
//  3. DEBUG with "signer privilege escalated" in the body: High.
//  4. DEBUG tagged "Program log:": VeryHigh.
//  5. DEBUG from a source ending in "stable_log": Medium.
//  6. Any other DEBUG: Medium.
//  7. TRACE: Low.
//  8. Anything else: Low.
//
// The failure keywords are plain substrings, not word matches: "fail "
// matches, "failing " does not. Only rule 1 ignores case, and only in the
// body. The level, source and tag are compared exactly.
package importance
