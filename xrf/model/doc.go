// Package model composes XRF spectrum models from element emission-line
// peaks plus Compton and elastic scatter components.
//
// A [Spectrum] owns an ordered, named parameter set. Detector calibration
// and resolution parameters (e_offset, e_linear, e_quadratic, fwhm_offset,
// fwhm_fanoprime) are shared by every component, element line areas are
// tied within a line group through fixed branching ratios, and every
// parameter carries a bound policy ([Bound]) that the fitting engine maps
// to box constraints. Bound policies can be switched in bulk with
// [Params.ApplyProfile] or selectively with [Spectrum.Adjust].
//
// The model is evaluated over detector channels; the energy axis is
// derived from the calibration parameters on every evaluation, so the
// calibration itself can be fitted.
package model
