// Package timing computes the per-word presentation durations and absorbs
// the trigger-emission latency of the presentation hardware.
//
// Duration rule per word slot: 250 ms when the word has at most 3
// letters, otherwise 250 + 35×(letters − 3) ms. Letters are counted with
// unicode.IsLetter, so capitalization and the terminal period do not
// distort timing.
//
// After all slot durations are computed, a fixed 40 ms is subtracted from
// the slot at the trial's recorded target position: the hardware's fixed
// code-emission lag is absorbed into that word's display window instead
// of adding to perceived timing. Only positions 3 and 4 are legal target
// positions; anything else is a configuration error.
package timing
