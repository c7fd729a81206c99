// Package progress renders probe progress on the terminal.
//
// Bar satisfies the checker's observer contract: Start once with the number
// of candidates, Observe once per finished probe with a strictly increasing
// count, and Finish after the last probe.
package progress
