package body

// Default returns the built-in solar system dataset, so the program
// runs without an external catalog file. Sizes and distances are
// stylized for presentation, loosely proportional to the real values.
func Default() Catalog {
	return Catalog{
		Star: Star{
			Id:           "sun",
			Name:         "Sun",
			Radius:       10,
			Color:        "#FDB813",
			RotationRate: 0.2,
			Description:  "The star at the center of the system. A near-perfect sphere of hot plasma.",
		},
		Belt: &Belt{
			Id:          "belt",
			Name:        "Asteroid Belt",
			InnerRadius: 58,
			OuterRadius: 66,
			Count:       BeltCount{Low: 120, Medium: 400, High: 1200},
			RockMin:     0.08,
			RockMax:     0.3,
			Color:       "#8A7F70",
			OrbitalRate: 0.12,
			Description: "A torus of rocky debris between Mars and Jupiter.",
		},
		Planets: []Planet{
			{
				Id: "mercury", Name: "Mercury", Radius: 0.9, Distance: 16,
				Color: "#B5B5B5", RotationRate: 0.1, OrbitalRate: 2.4,
				Description: "The smallest planet and the closest to the Sun. No atmosphere, extreme temperature swings.",
			},
			{
				Id: "venus", Name: "Venus", Radius: 1.6, Distance: 24,
				Color: "#E8CDA2", RotationRate: -0.05, OrbitalRate: 1.8,
				Description: "The hottest planet, wrapped in a thick carbon-dioxide atmosphere. Rotates backwards.",
			},
			{
				Id: "earth", Name: "Earth", Radius: 1.7, Distance: 32,
				Color: "#2E86AB", RotationRate: 1.0, OrbitalRate: 1.5,
				Description: "The only known world to support life. 71% of its surface is covered by water.",
				Moons: []Moon{
					{Id: "moon", Name: "Moon", Radius: 0.45, Distance: 3.4,
						Color: "#C9C9C9", RotationRate: 0.3, OrbitalRate: 4.5,
						Description: "Earth's only natural satellite, tidally locked to its parent."},
				},
			},
			{
				Id: "mars", Name: "Mars", Radius: 1.2, Distance: 42,
				Color: "#C1440E", RotationRate: 0.97, OrbitalRate: 1.2,
				Description: "The Red Planet, home to Olympus Mons, the tallest mountain in the system.",
				Moons: []Moon{
					{Id: "phobos", Name: "Phobos", Radius: 0.18, Distance: 2.2,
						Color: "#9B8579", RotationRate: 0.4, OrbitalRate: 6.0,
						Description: "The larger and closer of Mars' two moons, slowly spiraling inward."},
					{Id: "deimos", Name: "Deimos", Radius: 0.14, Distance: 3.1,
						Color: "#A89A8C", RotationRate: 0.3, OrbitalRate: 3.8,
						Description: "Mars' small outer moon."},
				},
			},
			{
				Id: "jupiter", Name: "Jupiter", Radius: 5.6, Distance: 78,
				Color: "#C88B3A", RotationRate: 2.4, OrbitalRate: 0.65,
				Description: "The largest planet. The Great Red Spot is a storm older than three centuries.",
				Moons: []Moon{
					{Id: "io", Name: "Io", Radius: 0.5, Distance: 7.6,
						Color: "#E8D44D", RotationRate: 0.5, OrbitalRate: 5.2,
						Description: "The most volcanically active body in the system."},
					{Id: "europa", Name: "Europa", Radius: 0.45, Distance: 9.0,
						Color: "#B8A990", RotationRate: 0.5, OrbitalRate: 4.1,
						Description: "An ice-crusted moon likely hiding a subsurface ocean."},
					{Id: "ganymede", Name: "Ganymede", Radius: 0.75, Distance: 10.8,
						Color: "#9E9284", RotationRate: 0.4, OrbitalRate: 3.2,
						Description: "The largest moon in the system, bigger than Mercury."},
					{Id: "callisto", Name: "Callisto", Radius: 0.7, Distance: 12.8,
						Color: "#7A6F63", RotationRate: 0.3, OrbitalRate: 2.4,
						Description: "A heavily cratered moon, geologically quiet."},
				},
			},
			{
				Id: "saturn", Name: "Saturn", Radius: 4.8, Distance: 98,
				Color: "#E4D191", RotationRate: 2.2, OrbitalRate: 0.45,
				Description: "Famous for its ring system of ice and rock. Less dense than water.",
				Moons: []Moon{
					{Id: "titan", Name: "Titan", Radius: 0.72, Distance: 8.8,
						Color: "#D8A856", RotationRate: 0.3, OrbitalRate: 3.6,
						Description: "The only moon with a dense atmosphere, and lakes of liquid methane."},
					{Id: "rhea", Name: "Rhea", Radius: 0.35, Distance: 6.4,
						Color: "#BFBFBF", RotationRate: 0.3, OrbitalRate: 4.4,
						Description: "Saturn's second-largest moon."},
				},
			},
			{
				Id: "uranus", Name: "Uranus", Radius: 3.0, Distance: 116,
				Color: "#7DE8E8", RotationRate: -1.4, OrbitalRate: 0.3,
				Description: "An ice giant rotating on its side, tilted 98 degrees.",
				Moons: []Moon{
					{Id: "titania", Name: "Titania", Radius: 0.38, Distance: 5.6,
						Color: "#AFA8A0", RotationRate: 0.3, OrbitalRate: 3.9,
						Description: "The largest moon of Uranus."},
				},
			},
			{
				Id: "neptune", Name: "Neptune", Radius: 2.9, Distance: 132,
				Color: "#3F54BA", RotationRate: 1.5, OrbitalRate: 0.22,
				Description: "The outermost planet, with the fastest winds in the system.",
				Moons: []Moon{
					{Id: "triton", Name: "Triton", Radius: 0.4, Distance: 5.2,
						Color: "#C4D3D8", RotationRate: 0.3, OrbitalRate: -3.4,
						Description: "A captured moon orbiting backwards relative to Neptune's spin."},
				},
			},
		},
	}
}
