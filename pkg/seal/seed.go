package seal

// SeedCatalog returns the example records a Selector is built with by default.
// Each call returns fresh copies.
func SeedCatalog() []Record {
	return []Record{
		{
			PartNumber:      "SS-4810-30N",
			InnerDiameterMM: 48.0,
			CrossSectionMM:  3.0,
			OuterDiameterMM: 54.0,
			MaxPressureBar:  250,
			MaxTempC:        120,
			Materials:       []string{"NBR"},
			Motion:          MotionBoth,
			MaxSpeedMPS:     0.5,
			Notes:           "General purpose nitrile for mineral oil hydraulics",
		},
		{
			PartNumber:      "SS-6210-40V",
			InnerDiameterMM: 95.2,
			CrossSectionMM:  4.0,
			OuterDiameterMM: 103.2,
			MaxPressureBar:  200,
			MaxTempC:        200,
			Materials:       []string{"FKM"},
			Motion:          MotionBoth,
			Notes:           "Fluoroelastomer for hot oil and fuels",
		},
		{
			PartNumber:      "SS-7520-50E",
			InnerDiameterMM: 75.0,
			CrossSectionMM:  5.0,
			OuterDiameterMM: 85.0,
			MaxPressureBar:  160,
			MaxTempC:        150,
			Materials:       []string{"EPDM"},
			Motion:          MotionStatic,
			Notes:           "Water, steam and glycol service; not for mineral oil",
		},
		{
			PartNumber:      "SS-1200-53K",
			InnerDiameterMM: 120.0,
			CrossSectionMM:  5.3,
			OuterDiameterMM: 130.6,
			MaxPressureBar:  300,
			MaxTempC:        250,
			Materials:       []string{"FFKM", "FKM"},
			Motion:          MotionDynamic,
			MaxSpeedMPS:     2.0,
			Notes:           "Perfluoroelastomer for aggressive chemicals",
		},
	}
}
