// Package resource computes village resource accrual.
//
// Accrual is lazy: nothing ticks in the background. Whenever a village is read, the
// levels stored at the last checkpoint are advanced by hourly production over the
// elapsed time and clamped to storage capacity. The caller persists the result as the
// new checkpoint before handing it out, so the next read accrues from there.
package resource
