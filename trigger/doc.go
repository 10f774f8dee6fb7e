// Package trigger assigns the numeric event codes that align stimulus
// presentation with the recorded electrophysiological signal.
//
// Two independent numbering passes run per list:
//
//   - Target-word codes: distinct target-word strings, in first-occurrence
//     order within the list, receive 40, 41, … up to 99.
//   - Sentence codes: distinct full sentence strings, in first-occurrence
//     order within the list, receive 110, 111, … up to 253.
//
// All rows sharing a target word (resp. sentence) within a list receive
// the same code. Numbering restarts per list — the code space is shared
// across the whole experiment, so exceeding either allowed range is a
// configuration error (ErrCodeRange), not a wrap-around.
package trigger
