// Package align registers energy scans against a common reference.
//
// Repeated scans of the same sample drift in energy calibration and beam
// intensity. AlignAndScale picks one scan as the reference, estimates each
// other scan's energy shift by FFT cross-correlation of the counts, resamples
// the counts onto the reference energy grid, and rescales them so the peak
// amplitudes match the reference. The aligned scans can then be averaged
// channel by channel.
package align
