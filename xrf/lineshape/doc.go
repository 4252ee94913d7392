// Package lineshape provides the peak profiles used to model XRF spectra.
//
// All profiles are evaluated over an energy axis in keV. The building
// blocks are an area-normalized Gaussian, an erfc step, and an exponential
// low-energy tail; [Elastic] and [Compton] combine them into the coherent
// and incoherent scatter peaks with widths driven by the shared detector
// [Response].
//
// # Usage
//
//	resp := lineshape.Response{FWHMOffset: 0.12, FanoPrime: 1.15e-4}
//	el := lineshape.Elastic{Amplitude: 1e4, Energy: 11.0, Response: resp}
//	y := make([]float64, len(energy))
//	_ = el.Eval(y, energy)
package lineshape
