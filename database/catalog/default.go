package catalog

// Default returns the built-in catalog. Each call returns a fresh copy, so
// callers may modify the result freely.
func Default() Catalog {
	c := Catalog{
		BrandSystems: make([]BrandSystem, len(defaultBrandSystems)),
		Accessories:  make([]Accessory, len(defaultAccessories)),
		Equipment:    make([]Equipment, len(defaultEquipment)),
	}
	copy(c.BrandSystems, defaultBrandSystems)
	copy(c.Accessories, defaultAccessories)
	for i, e := range defaultEquipment {
		e.ImageURLs = append([]string(nil), e.ImageURLs...)
		c.Equipment[i] = e
	}
	return c
}

var defaultBrandSystems = []BrandSystem{
	{Name: "Canon RF", Description: "Canon mirrorless camera system with the RF mount"},
	{Name: "Nikon Z", Description: "Nikon mirrorless camera system with the Z mount"},
	{Name: "Sony E", Description: "Sony mirrorless camera system with the E mount"},
	{Name: "Godox", Description: "Godox studio lighting system"},
	{Name: "Profoto", Description: "Profoto professional lighting system"},
	{Name: "Elinchrom", Description: "Elinchrom studio lighting system"},
	{Name: "Westcott", Description: "Westcott light modifier system"},
	{Name: "Gitzo", Description: "Gitzo tripod system"},
	{Name: "Manfrotto", Description: "Manfrotto tripod system"},
}

var defaultAccessories = []Accessory{
	{Name: "SanDisk Extreme Pro 128GB memory card", Category: "Storage", Price: 50.0, Description: "Fast memory card for professional shooting"},
	{Name: "Canon LP-E6NH battery", Category: "Battery", Price: 80.0, Description: "Genuine battery for Canon EOS R cameras"},
	{Name: "Sony NP-FZ100 battery", Category: "Battery", Price: 90.0, Description: "Genuine battery for Sony A7/A9 cameras"},
	{Name: "Universal charger", Category: "Charger", Price: 120.0, Description: "Universal charger for various battery types"},
	{Name: "UV filter 77mm", Category: "Filter", Price: 60.0, Description: "Protective UV filter for 77mm lenses"},
	{Name: "Polarizing filter 82mm", Category: "Filter", Price: 150.0, Description: "Circular polarizer that cuts glare and reflections"},
	{Name: "Camera strap", Category: "Accessory", Price: 40.0, Description: "Comfortable strap for carrying a camera"},
	{Name: "Lens case", Category: "Case", Price: 30.0, Description: "Protective case for transporting lenses"},
}

var defaultEquipment = []Equipment{
	// Cameras
	{
		Category: "Camera", Brand: "Canon", Name: "EOS R5",
		Description:      "Professional mirrorless camera with 45 MP resolution, 8K video and in-body stabilization",
		ShortDescription: "Canon EOS R5 professional mirrorless camera",
		DailyRate:        2500.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/canon-r5-1.jpg", "https://example.com/canon-r5-2.jpg"},
		BrandSystem: "Canon RF",
	},
	{
		Category: "Camera", Brand: "Canon", Name: "EOS R6 Mark II",
		Description:      "Versatile mirrorless camera with excellent low-light performance",
		ShortDescription: "Canon EOS R6 Mark II versatile mirrorless camera",
		DailyRate:        2000.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/canon-r6-ii-1.jpg"},
		BrandSystem: "Canon RF",
	},
	{
		Category: "Camera", Brand: "Nikon", Name: "Z9",
		Description:      "Flagship mirrorless camera with 45.7 MP resolution and an advanced autofocus system",
		ShortDescription: "Nikon Z9 flagship mirrorless camera",
		DailyRate:        3000.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/nikon-z9-1.jpg", "https://example.com/nikon-z9-2.jpg"},
		BrandSystem: "Nikon Z",
	},
	{
		Category: "Camera", Brand: "Sony", Name: "A7R V",
		Description:      "High-resolution 61 MP mirrorless camera with AI autofocus",
		ShortDescription: "Sony A7R V high-resolution mirrorless camera",
		DailyRate:        2800.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/sony-a7r5-1.jpg"},
		BrandSystem: "Sony E",
	},

	// Canon RF lenses
	{
		Category: "Lens", Brand: "Canon", Name: "RF 24-70mm f/2.8L IS USM",
		Description:      "Professional standard zoom with a constant f/2.8 aperture",
		ShortDescription: "Canon RF 24-70mm f/2.8L standard zoom",
		DailyRate:        1200.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/canon-rf-24-70-1.jpg"},
		BrandSystem: "Canon RF",
	},
	{
		Category: "Lens", Brand: "Canon", Name: "RF 70-200mm f/2.8L IS USM",
		Description:      "Telephoto zoom for portrait and sports work with optical stabilization",
		ShortDescription: "Canon RF 70-200mm f/2.8L telephoto zoom",
		DailyRate:        1500.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/canon-rf-70-200-1.jpg"},
		BrandSystem: "Canon RF",
	},
	{
		Category: "Lens", Brand: "Canon", Name: "RF 85mm f/1.2L USM",
		Description:      "Portrait prime with a very fast f/1.2 aperture",
		ShortDescription: "Canon RF 85mm f/1.2L portrait prime",
		DailyRate:        1800.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/canon-rf-85-1.jpg"},
		BrandSystem: "Canon RF",
	},

	// Nikon Z lenses
	{
		Category: "Lens", Brand: "Nikon", Name: "Z 24-70mm f/2.8 S",
		Description:      "Professional standard zoom with a constant aperture and excellent image quality",
		ShortDescription: "Nikon Z 24-70mm f/2.8 S standard zoom",
		DailyRate:        1300.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/nikon-z-24-70-1.jpg"},
		BrandSystem: "Nikon Z",
	},
	{
		Category: "Lens", Brand: "Nikon", Name: "Z 70-200mm f/2.8 VR S",
		Description:      "Stabilized telephoto zoom for professional work",
		ShortDescription: "Nikon Z 70-200mm f/2.8 VR S telephoto zoom",
		DailyRate:        1600.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/nikon-z-70-200-1.jpg"},
		BrandSystem: "Nikon Z",
	},

	// Sony E lenses
	{
		Category: "Lens", Brand: "Sony", Name: "FE 24-70mm f/2.8 GM",
		Description:      "Flagship G Master standard zoom with outstanding image quality",
		ShortDescription: "Sony FE 24-70mm f/2.8 GM standard zoom",
		DailyRate:        1400.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/sony-fe-24-70-1.jpg"},
		BrandSystem: "Sony E",
	},
	{
		Category: "Lens", Brand: "Sony", Name: "FE 85mm f/1.4 GM",
		Description:      "G Master portrait prime with exceptional sharpness and bokeh",
		ShortDescription: "Sony FE 85mm f/1.4 GM portrait prime",
		DailyRate:        1700.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/sony-fe-85-1.jpg"},
		BrandSystem: "Sony E",
	},

	// Studio lighting
	{
		Category: "Lighting", Brand: "Godox", Name: "AD600Pro",
		Description:      "Powerful battery-powered portable flash for studio and location work",
		ShortDescription: "Godox AD600Pro portable flash",
		DailyRate:        800.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/godox-ad600pro-1.jpg"},
		BrandSystem: "Godox",
	},
	{
		Category: "Lighting", Brand: "Profoto", Name: "A1X",
		Description:      "Compact on-camera flash with high quality of light",
		ShortDescription: "Profoto A1X compact flash",
		DailyRate:        600.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/profoto-a1x-1.jpg"},
		BrandSystem: "Profoto",
	},

	// Light modifiers
	{
		Category: "Light Modifier", Brand: "Elinchrom", Name: "Rotalux 100cm Octa",
		Description:      "Large octabox for soft diffused light",
		ShortDescription: "Elinchrom Rotalux 100cm octabox",
		DailyRate:        300.0, Condition: "Good",
		ImageURLs:   []string{"https://example.com/elinchrom-octa-1.jpg"},
		BrandSystem: "Elinchrom",
	},
	{
		Category: "Light Modifier", Brand: "Westcott", Name: `Rapid Box 26"`,
		Description:      "Versatile softbox for portrait and product photography",
		ShortDescription: `Westcott Rapid Box 26" softbox`,
		DailyRate:        200.0, Condition: "Good",
		ImageURLs:   []string{"https://example.com/westcott-rapid-1.jpg"},
		BrandSystem: "Westcott",
	},

	// Tripods
	{
		Category: "Tripod", Brand: "Gitzo", Name: "GT3543XLS",
		Description:      "Professional carbon fiber tripod with a 25 kg load capacity",
		ShortDescription: "Gitzo GT3543XLS carbon fiber tripod",
		DailyRate:        500.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/gitzo-gt3543xls-1.jpg"},
		BrandSystem: "Gitzo",
	},
	{
		Category: "Tripod", Brand: "Manfrotto", Name: "055 Carbon Fiber",
		Description:      "Reliable carbon fiber tripod for professional shooting",
		ShortDescription: "Manfrotto 055 carbon fiber tripod",
		DailyRate:        400.0, Condition: "Good",
		ImageURLs:   []string{"https://example.com/manfrotto-055-1.jpg"},
		BrandSystem: "Manfrotto",
	},

	// Video
	{
		Category: "Video Camera", Brand: "Sony", Name: "FX6",
		Description:      "Full-frame cinema camera with professional features",
		ShortDescription: "Sony FX6 cinema camera",
		DailyRate:        4000.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/sony-fx6-1.jpg"},
		BrandSystem: "Sony E",
	},
	{
		Category: "Video Camera", Brand: "Canon", Name: "C70",
		Description:      "Compact full-frame cinema camera with built-in ND filters",
		ShortDescription: "Canon C70 compact cinema camera",
		DailyRate:        3500.0, Condition: "Excellent",
		ImageURLs:   []string{"https://example.com/canon-c70-1.jpg"},
		BrandSystem: "Canon RF",
	},
}
