package model

// Global parameter names. They double as configuration file keys, so they
// stay in snake_case.
const (
	ParamEOffset     = "e_offset"
	ParamELinear     = "e_linear"
	ParamEQuadratic  = "e_quadratic"
	ParamFWHMOffset  = "fwhm_offset"
	ParamFanoPrime   = "fwhm_fanoprime"
	ParamCoherentE   = "coherent_sct_energy"
	ParamCoherentAmp = "coherent_sct_amplitude"

	ParamComptonAmp      = "compton_amplitude"
	ParamComptonAngle    = "compton_angle"
	ParamComptonGamma    = "compton_gamma"
	ParamComptonFTail    = "compton_f_tail"
	ParamComptonFStep    = "compton_f_step"
	ParamComptonFWHMCorr = "compton_fwhm_corr"
	ParamComptonHiGamma  = "compton_hi_gamma"
	ParamComptonHiFTail  = "compton_hi_f_tail"
)

// defaultGlobals declares the shared calibration, detector response, and
// scatter parameters with their default bound policies per fitting profile.
func defaultGlobals(incidentKeV float64) []Param {
	calProfile := map[Profile]Bound{
		ProfileECalibration: BoundLoHi,
		ProfileLinear:       BoundFixed,
	}
	shapeProfile := map[Profile]Bound{
		ProfileFreeMore: BoundLoHi,
		ProfileLinear:   BoundFixed,
	}

	return []Param{
		{Name: ParamEOffset, Value: 0, Min: -0.2, Max: 0.2, Bound: BoundFixed, Profiles: calProfile},
		{Name: ParamELinear, Value: 0.01, Min: 1e-5, Max: 0.1, Bound: BoundFixed, Profiles: calProfile},
		{Name: ParamEQuadratic, Value: 0, Min: -1e-4, Max: 1e-4, Bound: BoundFixed, Profiles: calProfile},

		{Name: ParamFWHMOffset, Value: 0.12, Min: 0.005, Max: 0.5, Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamFanoPrime, Value: 1.15e-4, Min: 1e-7, Max: 0.05, Bound: BoundFixed, Profiles: shapeProfile},

		{Name: ParamCoherentE, Value: incidentKeV, Min: incidentKeV - 0.4, Max: incidentKeV + 0.4,
			Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamCoherentAmp, Value: 1e5, Min: 0, Bound: BoundLo},

		{Name: ParamComptonAmp, Value: 1e5, Min: 0, Bound: BoundLo},
		{Name: ParamComptonAngle, Value: 90, Min: 75, Max: 135, Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamComptonGamma, Value: 5, Min: 0.1, Max: 10, Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamComptonFTail, Value: 0.1, Min: 0, Max: 1, Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamComptonFStep, Value: 0.01, Min: 0, Max: 1.5, Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamComptonFWHMCorr, Value: 1.5, Min: 1, Max: 4, Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamComptonHiGamma, Value: 1, Min: 0.1, Max: 3, Bound: BoundFixed, Profiles: shapeProfile},
		{Name: ParamComptonHiFTail, Value: 0.01, Min: 1e-6, Max: 1, Bound: BoundFixed, Profiles: shapeProfile},
	}
}

// Per-line parameter defaults. Areas stay non-negative; position, width,
// and branching-ratio tweaks are frozen until ProfileAdjustElement (or
// Spectrum.Adjust) frees them.
func defaultArea() Param {
	return Param{
		Value: 1000, Min: 0, Max: 1e9,
		Bound: BoundLo,
		Profiles: map[Profile]Bound{
			ProfileAdjustElement: BoundFixed,
			ProfileECalibration:  BoundFixed,
			ProfileFreeMore:      BoundLo,
			ProfileLinear:        BoundLo,
		},
	}
}

func defaultDeltaCenter() Param {
	return Param{
		Value: 0, Min: -0.005, Max: 0.005,
		Bound:    BoundFixed,
		Profiles: map[Profile]Bound{ProfileAdjustElement: BoundLoHi},
	}
}

func defaultDeltaSigma() Param {
	return Param{
		Value: 0, Min: -0.02, Max: 0.02,
		Bound:    BoundFixed,
		Profiles: map[Profile]Bound{ProfileAdjustElement: BoundLoHi},
	}
}

func defaultRatioAdjust() Param {
	return Param{
		Value: 1, Min: 0.1, Max: 5,
		Bound:    BoundFixed,
		Profiles: map[Profile]Bound{ProfileAdjustElement: BoundLoHi},
	}
}
