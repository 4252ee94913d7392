package element

// Reference line and edge energies in keV, condensed from standard X-ray
// data tables. Branching ratios are representative values: Ka2/Ka1 is close
// to 0.51 across the K series, while Kb/Ka grows slowly with Z.

const ka2Ratio = 0.51

func kbRatio(z int) float64 {
	switch {
	case z < 16:
		return 0.06
	case z < 26:
		return 0.12
	case z < 36:
		return 0.14
	case z < 46:
		return 0.17
	default:
		return 0.20
	}
}

type kRow struct {
	sym                string
	z                  int
	edge               float64
	ka1, ka2, kb1, kb2 float64 // kb2 == 0 when unresolved
}

var kTable = []kRow{
	{"Na", 11, 1.072, 1.041, 1.041, 1.071, 0},
	{"Mg", 12, 1.305, 1.254, 1.254, 1.302, 0},
	{"Al", 13, 1.560, 1.487, 1.486, 1.557, 0},
	{"Si", 14, 1.839, 1.740, 1.739, 1.836, 0},
	{"P", 15, 2.146, 2.014, 2.013, 2.139, 0},
	{"S", 16, 2.472, 2.308, 2.307, 2.464, 0},
	{"Cl", 17, 2.822, 2.622, 2.621, 2.816, 0},
	{"Ar", 18, 3.206, 2.958, 2.956, 3.190, 0},
	{"K", 19, 3.608, 3.314, 3.311, 3.590, 0},
	{"Ca", 20, 4.039, 3.692, 3.688, 4.013, 0},
	{"Sc", 21, 4.492, 4.091, 4.086, 4.461, 0},
	{"Ti", 22, 4.966, 4.511, 4.505, 4.932, 0},
	{"V", 23, 5.465, 4.952, 4.944, 5.427, 0},
	{"Cr", 24, 5.989, 5.415, 5.406, 5.947, 0},
	{"Mn", 25, 6.539, 5.899, 5.888, 6.490, 0},
	{"Fe", 26, 7.112, 6.404, 6.391, 7.058, 0},
	{"Co", 27, 7.709, 6.930, 6.915, 7.649, 0},
	{"Ni", 28, 8.333, 7.478, 7.461, 8.265, 0},
	{"Cu", 29, 8.979, 8.048, 8.028, 8.905, 0},
	{"Zn", 30, 9.659, 8.639, 8.616, 9.572, 0},
	{"Ga", 31, 10.367, 9.252, 9.225, 10.264, 0},
	{"Ge", 32, 11.103, 9.886, 9.855, 10.982, 0},
	{"As", 33, 11.867, 10.544, 10.508, 11.726, 0},
	{"Se", 34, 12.658, 11.222, 11.181, 12.496, 0},
	{"Br", 35, 13.474, 11.924, 11.878, 13.291, 0},
	{"Kr", 36, 14.326, 12.649, 12.598, 14.112, 0},
	{"Rb", 37, 15.200, 13.395, 13.336, 14.961, 0},
	{"Sr", 38, 16.105, 14.165, 14.098, 15.835, 0},
	{"Y", 39, 17.038, 14.958, 14.883, 16.738, 0},
	{"Zr", 40, 17.998, 15.775, 15.691, 17.668, 17.970},
	{"Nb", 41, 18.986, 16.615, 16.521, 18.623, 18.953},
	{"Mo", 42, 20.000, 17.479, 17.374, 19.608, 19.965},
	{"Tc", 43, 21.044, 18.367, 18.251, 20.619, 21.005},
	{"Ru", 44, 22.117, 19.279, 19.150, 21.657, 22.074},
	{"Rh", 45, 23.220, 20.216, 20.074, 22.724, 23.173},
	{"Pd", 46, 24.350, 21.177, 21.020, 23.819, 24.299},
	{"Ag", 47, 25.514, 22.163, 21.990, 24.942, 25.456},
	{"Cd", 48, 26.711, 23.174, 22.984, 26.096, 26.644},
	{"In", 49, 27.940, 24.210, 24.002, 27.276, 27.861},
	{"Sn", 50, 29.200, 25.271, 25.044, 28.486, 29.109},
	{"Sb", 51, 30.491, 26.359, 26.111, 29.726, 30.390},
	{"Te", 52, 31.814, 27.472, 27.202, 30.996, 31.700},
	{"I", 53, 33.169, 28.612, 28.317, 32.295, 33.042},
}

// Relative L line intensities, normalized to La1.
var lRatios = map[Line]float64{
	La1: 1.0,
	La2: 0.11,
	Lb1: 0.90,
	Lb2: 0.20,
	Lb3: 0.06,
	Lg1: 0.15,
	Lg2: 0.02,
	Ll:  0.04,
}

type lRow struct {
	sym                                     string
	z                                       int
	edge                                    float64
	la1, la2, lb1, lb2, lb3, lg1, lg2, llin float64
}

var lTable = []lRow{
	{"Ta", 73, 9.881, 8.146, 8.088, 9.343, 9.652, 9.487, 10.895, 11.217, 7.173},
	{"W", 74, 10.207, 8.398, 8.335, 9.672, 9.961, 9.819, 11.286, 11.608, 7.387},
	{"Pt", 78, 11.564, 9.442, 9.362, 11.071, 11.251, 11.235, 12.942, 13.361, 8.268},
	{"Au", 79, 11.919, 9.713, 9.628, 11.442, 11.585, 11.610, 13.382, 13.709, 8.494},
	{"Hg", 80, 12.284, 9.989, 9.898, 11.823, 11.924, 11.992, 13.830, 14.265, 8.721},
	{"Pb", 82, 13.035, 10.552, 10.450, 12.614, 12.622, 12.793, 14.764, 15.178, 9.184},
	{"Bi", 83, 13.419, 10.839, 10.731, 13.024, 13.053, 13.210, 15.248, 15.710, 9.420},
	{"Th", 90, 16.300, 12.969, 12.810, 16.202, 15.623, 16.426, 18.982, 19.599, 11.118},
	{"U", 92, 17.166, 13.615, 13.439, 17.220, 16.428, 17.455, 20.167, 20.844, 11.618},
}

type mRow struct {
	sym      string
	z        int
	edge     float64
	ma1, mb1 float64
}

var mTable = []mRow{
	{"Pt", 78, 2.122, 2.051, 2.127},
	{"Au", 79, 2.206, 2.123, 2.205},
	{"Pb", 82, 2.484, 2.346, 2.444},
	{"Th", 90, 3.332, 2.996, 3.146},
	{"U", 92, 3.552, 3.171, 3.336},
}

const (
	ma1Ratio = 1.0
	mbRatio  = 0.60
)

var table = buildTable()

func buildTable() map[string]Element {
	t := make(map[string]Element, len(kTable)+len(lTable))

	for _, r := range kTable {
		e := Element{Symbol: r.sym, Z: r.z, KEdge: r.edge}
		e.lines = append(e.lines,
			LineInfo{Ka1, r.ka1, 1.0},
			LineInfo{Ka2, r.ka2, ka2Ratio},
			LineInfo{Kb1, r.kb1, kbRatio(r.z)},
		)

		if r.kb2 > 0 {
			e.lines = append(e.lines, LineInfo{Kb2, r.kb2, 0.05})
		}

		t[r.sym] = e
	}

	for _, r := range lTable {
		e := t[r.sym]
		if e.Symbol == "" {
			e = Element{Symbol: r.sym, Z: r.z}
		}

		e.L3Edge = r.edge
		e.lines = append(e.lines,
			LineInfo{La1, r.la1, lRatios[La1]},
			LineInfo{La2, r.la2, lRatios[La2]},
			LineInfo{Lb1, r.lb1, lRatios[Lb1]},
			LineInfo{Lb2, r.lb2, lRatios[Lb2]},
			LineInfo{Lb3, r.lb3, lRatios[Lb3]},
			LineInfo{Lg1, r.lg1, lRatios[Lg1]},
			LineInfo{Lg2, r.lg2, lRatios[Lg2]},
			LineInfo{Ll, r.llin, lRatios[Ll]},
		)
		t[r.sym] = e
	}

	for _, r := range mTable {
		e := t[r.sym]
		if e.Symbol == "" {
			e = Element{Symbol: r.sym, Z: r.z}
		}

		e.M5Edge = r.edge
		e.lines = append(e.lines,
			LineInfo{Ma1, r.ma1, ma1Ratio},
			LineInfo{Mb, r.mb1, mbRatio},
		)
		t[r.sym] = e
	}

	return t
}
