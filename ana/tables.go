// Copyright 2025 The EngiVault Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements reference solutions for compressible duct flow: the
// classic γ=1.4 table checkpoints and an independent numerical integration of
// the fanno line
package ana

// IsenEntry holds one row of the isentropic flow table (ratios to stagnation)
type IsenEntry struct {
	M   float64 // Mach number
	T   float64 // T/T0
	P   float64 // P/P0
	Rho float64 // ρ/ρ0
}

// FannoEntry holds one row of the fanno flow table (ratios to the sonic section)
type FannoEntry struct {
	M   float64 // Mach number
	Fld float64 // 4・f・Lmax/D
	T   float64 // T/T*
	P   float64 // P/P*
	V   float64 // v/v*
	P0  float64 // P0/P0*
}

// RayleighEntry holds one row of the rayleigh flow table (ratios to the sonic section)
type RayleighEntry struct {
	M  float64 // Mach number
	T0 float64 // T0/T0*
	T  float64 // T/T*
	P  float64 // P/P*
	V  float64 // v/v*
	P0 float64 // P0/P0*
}

// IsenAir returns checkpoints of the isentropic flow table for γ = 1.4
func IsenAir() []*IsenEntry {
	return []*IsenEntry{
		{0.1, 0.998004, 0.993031, 0.995017},
		{0.2, 0.992063, 0.972497, 0.980277},
		{0.3, 0.982318, 0.939470, 0.956380},
		{0.4, 0.968992, 0.895614, 0.924274},
		{0.5, 0.952381, 0.843019, 0.885170},
		{0.6, 0.932836, 0.784004, 0.840452},
		{0.7, 0.910747, 0.720928, 0.791579},
		{0.8, 0.886525, 0.656022, 0.739992},
		{0.9, 0.860585, 0.591260, 0.687044},
		{1.0, 0.833333, 0.528282, 0.633938},
		{1.5, 0.689655, 0.272403, 0.394984},
		{2.0, 0.555556, 0.127805, 0.230048},
		{3.0, 0.357143, 0.027224, 0.076226},
	}
}

// FannoAir returns checkpoints of the fanno flow table for γ = 1.4
func FannoAir() []*FannoEntry {
	return []*FannoEntry{
		{0.1, 66.921560, 1.197605, 10.943513, 0.109435, 5.821829},
		{0.2, 14.533266, 1.190476, 5.455447, 0.218218, 2.963520},
		{0.3, 5.299253, 1.178782, 3.619057, 0.325715, 2.035065},
		{0.4, 2.308493, 1.162791, 2.695819, 0.431331, 1.590140},
		{0.5, 1.069060, 1.142857, 2.138090, 0.534522, 1.339844},
		{0.6, 0.490822, 1.119403, 1.763364, 0.634811, 1.188200},
		{0.7, 0.208139, 1.092896, 1.493452, 0.731792, 1.094373},
		{0.8, 0.072290, 1.063830, 1.289277, 0.825137, 1.038230},
		{0.9, 0.014512, 1.032702, 1.129133, 0.914598, 1.008863},
		{1.0, 0.000000, 1.000000, 1.000000, 1.000000, 1.000000},
		{1.5, 0.136050, 0.827586, 0.606478, 1.364576, 1.176167},
		{2.0, 0.304997, 0.666667, 0.408248, 1.632993, 1.687500},
		{3.0, 0.522159, 0.428571, 0.218218, 1.963961, 4.234568},
	}
}

// RayleighAir returns checkpoints of the rayleigh flow table for γ = 1.4
func RayleighAir() []*RayleighEntry {
	return []*RayleighEntry{
		{0.1, 0.046777, 0.056020, 2.366864, 0.023669, 1.259146},
		{0.2, 0.173554, 0.206612, 2.272727, 0.090909, 1.234596},
		{0.3, 0.346860, 0.408873, 2.131439, 0.191829, 1.198549},
		{0.4, 0.529027, 0.615148, 1.960784, 0.313725, 1.156577},
		{0.5, 0.691358, 0.790123, 1.777778, 0.444444, 1.114053},
		{0.6, 0.818923, 0.916704, 1.595745, 0.574468, 1.075253},
		{0.7, 0.908499, 0.992895, 1.423488, 0.697509, 1.043104},
		{0.8, 0.963948, 1.025477, 1.265823, 0.810127, 1.019343},
		{0.9, 0.992073, 1.024516, 1.124649, 0.910965, 1.004856},
		{1.0, 1.000000, 1.000000, 1.000000, 1.000000, 1.000000},
		{1.5, 0.909276, 0.752504, 0.578313, 1.301205, 1.121545},
		{2.0, 0.793388, 0.528926, 0.363636, 1.454545, 1.503096},
		{3.0, 0.653979, 0.280277, 0.176471, 1.588235, 3.424452},
	}
}
