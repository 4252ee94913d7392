// Package fit performs nonlinear least-squares fitting of XRF spectrum
// models to measured counts, plus a fast non-negative linear pre-fit for
// screening which elements a spectrum actually contains.
//
// Fit drives a bounded Levenberg-Marquardt minimizer over the model's
// non-fixed parameters. Screen solves the linear problem over the model
// components with non-negativity constraints and reports per-component
// amplitudes, which is cheap enough to run on every spectrum of a scan.
package fit
