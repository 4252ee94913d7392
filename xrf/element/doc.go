// Package element provides X-ray emission line and absorption edge data
// for the elements commonly quantified in XRF analysis.
//
// Line groups follow the usual XRF convention: the K series covers the
// light-to-medium elements (Na through I), the L series the heavy elements,
// and the M series a handful of actinides and noble metals whose M lines
// fall into the detectable band. An element contributes a line group to a
// spectrum only when the incident beam energy exceeds the corresponding
// shell edge; use [Element.Activated] to test this.
//
// Energies are in keV. Relative intensities are branching ratios normalized
// to the strongest line of the group (Ka1, La1 or Ma1 = 1.0). The tables are
// condensed reference values adequate for peak modeling, not a full
// cross-section database.
package element
