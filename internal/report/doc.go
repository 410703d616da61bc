// Package report defines diagnostic records produced by globalclass and a
// concurrency safe collector for them.
package report
