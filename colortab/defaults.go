package colortab

// DefaultCatalog returns the built-in catalog: the color tables that
// historically shipped inline with the well-log viewer. Pick rendering
// and the default template reference "Stratigraphy" from this set.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTables())
	if err != nil {
		// Names below are literals; a duplicate is a programming error.
		panic(err)
	}

	return c
}

func defaultTables() []ColorTable {
	return []ColorTable{
		{
			Name:        "Physics",
			Discrete:    false,
			Description: "Full options color table",
			ColorNaN:    []float64{255, 255, 255},
			ColorBelow:  []float64{255, 0, 0},
			ColorAbove:  []float64{0, 0, 255},
			Colors: [][4]float64{
				{0, 255, 0, 0}, {0.25, 182, 182, 0}, {0.5, 0, 255, 0},
				{0.75, 0, 182, 182}, {1, 0, 0, 255},
			},
		},
		{
			Name:     "Physics reverse",
			Discrete: false,
			Colors: [][4]float64{
				{0, 0, 0, 255}, {0.25, 0, 182, 182}, {0.5, 0, 255, 0},
				{0.75, 182, 182, 0}, {1, 255, 0, 0},
			},
		},
		{
			Name:     "Rainbow",
			Discrete: false,
			Colors: [][4]float64{
				{0, 255, 0, 0}, {0.2, 182, 182, 0}, {0.4, 0, 255, 0},
				{0.6, 0, 182, 182}, {0.8, 0, 0, 255}, {1, 182, 0, 182},
			},
		},
		{
			Name:     "Rainbow reverse",
			Discrete: false,
			Colors: [][4]float64{
				{0, 182, 0, 182}, {0.2, 0, 0, 255}, {0.4, 0, 182, 182},
				{0.6, 0, 255, 0}, {0.8, 182, 182, 0}, {1, 255, 0, 0},
			},
		},
		{
			Name:     "Colors_set_1",
			Discrete: true,
			Colors: [][4]float64{
				{0, 255, 13, 186}, {1, 255, 64, 53}, {2, 247, 255, 164},
				{3, 112, 255, 97}, {4, 9, 254, 133}, {5, 254, 4, 135},
				{6, 255, 5, 94}, {7, 32, 50, 255}, {8, 109, 255, 32},
				{9, 254, 146, 92}, {10, 185, 116, 255}, {11, 255, 144, 1},
				{12, 157, 32, 255}, {13, 255, 26, 202}, {14, 73, 255, 35},
			},
		},
		{
			Name:     "Stratigraphy",
			Discrete: true,
			ColorNaN: []float64{255, 64, 64},
			Colors: [][4]float64{
				{0, 255, 193, 0}, {1, 255, 120, 61}, {2, 255, 155, 76},
				{3, 255, 223, 161}, {4, 226, 44, 118}, {5, 255, 243, 53},
				{6, 255, 212, 179}, {7, 255, 155, 23}, {8, 255, 246, 117},
				{9, 255, 241, 0}, {10, 255, 211, 178}, {11, 255, 173, 128},
				{12, 248, 152, 0}, {13, 154, 89, 24}, {14, 0, 138, 185},
				{15, 82, 161, 40}, {16, 219, 228, 163}, {17, 0, 119, 64},
				{18, 0, 110, 172}, {19, 116, 190, 230}, {20, 0, 155, 212},
				{21, 0, 117, 190}, {22, 143, 40, 112}, {23, 220, 153, 190},
				{24, 226, 44, 118}, {25, 126, 40, 111}, {26, 73, 69, 43},
				{27, 203, 63, 42}, {28, 255, 198, 190}, {29, 135, 49, 45},
				{30, 150, 136, 120}, {31, 198, 182, 175}, {32, 166, 154, 145},
				{33, 191, 88, 22}, {34, 255, 212, 179}, {35, 251, 139, 105},
				{36, 154, 89, 24}, {37, 186, 222, 200}, {38, 0, 124, 140},
				{39, 87, 84, 83},
			},
		},
		{
			Name:     "Colors_set_3",
			Discrete: true,
			Colors: [][4]float64{
				{0, 120, 181, 255}, {1, 255, 29, 102}, {2, 247, 255, 173},
				{3, 239, 157, 255}, {4, 186, 255, 236}, {5, 46, 255, 121},
				{6, 212, 255, 144}, {7, 165, 255, 143}, {8, 122, 255, 89},
				{9, 255, 212, 213},
			},
		},
		{
			Name:     "Porosity",
			Discrete: false,
			Colors: [][4]float64{
				{0, 255, 246, 117}, {0.11, 255, 243, 53}, {0.18, 255, 241, 0},
				{0.25, 155, 193, 0}, {0.32, 255, 155, 23}, {0.39, 255, 162, 61},
				{0.46, 255, 126, 45}, {0.53, 227, 112, 24}, {0.6, 246, 96, 31},
				{0.67, 229, 39, 48}, {0.74, 252, 177, 170}, {0.81, 236, 103, 146},
				{0.88, 226, 44, 118}, {1, 126, 40, 111},
			},
		},
	}
}
