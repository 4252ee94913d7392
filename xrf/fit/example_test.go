package fit_test

import (
	"fmt"

	"github.com/cwbudde/algo-xrf/xrf/fit"
	"github.com/cwbudde/algo-xrf/xrf/model"
)

func ExampleScreen() {
	m, err := model.New(model.Config{
		Elements:       []string{"Fe", "Cu"},
		IncidentEnergy: 12,
	})
	if err != nil {
		panic(err)
	}

	// Measured counts: iron at twice the model's starting amplitude,
	// no copper.
	x := make([]float64, 1400)
	for i := range x {
		x[i] = float64(i)
	}

	v := m.Params().Values()
	if i, ok := m.Params().Index("Fe_ka1_area"); ok {
		v[i] *= 2
	}

	if i, ok := m.Params().Index("Cu_ka1_area"); ok {
		v[i] = 0
	}

	y := make([]float64, len(x))
	if err := m.Eval(y, x, v); err != nil {
		panic(err)
	}

	amps, _, err := fit.Screen(m, x, y)
	if err != nil {
		panic(err)
	}

	for _, a := range amps {
		fmt.Printf("%-8s %.2f\n", a.Name, a.Scale)
	}

	// Output:
	// Fe       2.00
	// Cu       0.00
	// compton  1.00
	// elastic  1.00
}
