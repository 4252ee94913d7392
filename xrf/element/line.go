package element

// Group identifies an emission line series.
type Group int

// Supported line groups.
const (
	GroupK Group = iota + 1
	GroupL
	GroupM
)

// String returns the conventional series letter.
func (g Group) String() string {
	switch g {
	case GroupK:
		return "K"
	case GroupL:
		return "L"
	case GroupM:
		return "M"
	default:
		return "?"
	}
}

// Line identifies a single emission line within a series.
type Line int

// Supported emission lines.
const (
	Ka1 Line = iota
	Ka2
	Kb1
	Kb2
	La1
	La2
	Lb1
	Lb2
	Lb3
	Lg1
	Lg2
	Ll
	Ma1
	Mb
)

var lineNames = [...]string{
	Ka1: "ka1",
	Ka2: "ka2",
	Kb1: "kb1",
	Kb2: "kb2",
	La1: "la1",
	La2: "la2",
	Lb1: "lb1",
	Lb2: "lb2",
	Lb3: "lb3",
	Lg1: "lg1",
	Lg2: "lg2",
	Ll:  "ll",
	Ma1: "ma1",
	Mb:  "mb",
}

// String returns the lowercase Siegbahn name, e.g. "ka1".
func (l Line) String() string {
	if l < 0 || int(l) >= len(lineNames) {
		return "unknown"
	}

	return lineNames[l]
}

// Group returns the series the line belongs to.
func (l Line) Group() Group {
	switch {
	case l <= Kb2:
		return GroupK
	case l <= Ll:
		return GroupL
	default:
		return GroupM
	}
}

// ParseLine resolves a Siegbahn name to a Line.
func ParseLine(name string) (Line, bool) {
	for i, n := range lineNames {
		if n == name {
			return Line(i), true
		}
	}

	return 0, false
}
