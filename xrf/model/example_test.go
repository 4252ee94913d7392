package model_test

import (
	"fmt"

	"github.com/cwbudde/algo-xrf/xrf/model"
)

func ExampleNew() {
	s, err := model.New(model.Config{
		Elements:       []string{"Fe", "Pb_L", "Zr"},
		IncidentEnergy: 18,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(s.ComponentNames())

	area, _ := s.SumArea("Fe", s.Params().Values())
	fmt.Printf("Fe group area %.0f\n", area)

	// Output:
	// [Fe Pb_L Zr compton elastic]
	// Fe group area 165000
}

func ExampleSpectrum_Adjust() {
	s, err := model.New(model.Config{
		Elements:       []string{"Cu"},
		IncidentEnergy: 12,
	})
	if err != nil {
		panic(err)
	}

	s.Params().ApplyProfile(model.ProfileAdjustElement)

	if err := s.Adjust([]string{"Cu"}, model.Position, model.BoundLoHi); err != nil {
		panic(err)
	}

	p, _ := s.Params().Get("Cu_ka1_delta_center")
	fmt.Println(p.Name, p.Bound)

	// Output:
	// Cu_ka1_delta_center lohi
}
