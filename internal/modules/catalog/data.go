package catalog

var clubs = []Club{
	{
		ID:       "1",
		Name:     "Indie Pádel Club",
		Image:    "https://images.unsplash.com/photo-1626224583764-f87db24ac4ea?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Address:  "Avenida de la Democracia 11, Madrid",
		Distance: "1053km",
		City:     "Madrid",
		Rating:   4.8,
		Courts:   6,
	},
	{
		ID:       "2",
		Name:     "Urban Padel Center",
		Image:    "https://images.unsplash.com/photo-1526232761682-d26e03ac148e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Address:  "Calle Gran Vía 28, Barcelona",
		Distance: "12km",
		City:     "Barcelona",
		Rating:   4.6,
		Courts:   8,
	},
	{
		ID:       "3",
		Name:     "Padel Pro Academy",
		Image:    "https://images.unsplash.com/photo-1574629810360-7efbbe195018?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
		Address:  "Paseo de la Castellana 89, Madrid",
		Distance: "1050km",
		City:     "Madrid",
		Rating:   4.9,
		Courts:   10,
	},
}

var coaches = []Coach{
	{
		ID:          "1",
		Name:        "Carlos Rodriguez",
		Image:       "https://images.unsplash.com/photo-1568602471122-7832951cc4c5?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
		Experience:  "8 years",
		Rating:      4.9,
		Specialties: []string{"Technique", "Strategy", "Beginners"},
		Price:       45,
	},
	{
		ID:          "2",
		Name:        "Maria Gonzalez",
		Image:       "https://images.unsplash.com/photo-1580489944761-15a19d654956?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
		Experience:  "6 years",
		Rating:      4.7,
		Specialties: []string{"Advanced Players", "Competition", "Fitness"},
		Price:       50,
	},
	{
		ID:          "3",
		Name:        "Juan Martín",
		Image:       "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?ixlib=rb-1.2.1&auto=format&fit=crop&w=256&q=80",
		Experience:  "10 years",
		Rating:      4.8,
		Specialties: []string{"Professional Training", "Mental Coaching", "Technique"},
		Price:       55,
	},
}

var matches = []Match{
	{
		ID:       "1",
		Club:     "Indie Pádel Club",
		Date:     "2025-07-15",
		Time:     "18:00",
		Duration: 90,
		Players: []MatchPlayer{
			{ID: "1", Name: "Alex", Level: 3.5},
			{ID: "2", Name: "Sofia", Level: 3.2},
			{ID: "3", Name: "Marco", Level: 3.6},
			{ID: "4", Name: "Elena", Level: 3.4},
		},
		Level:  "Intermediate",
		Court:  3,
		Status: "open",
	},
	{
		ID:       "2",
		Club:     "Urban Padel Center",
		Date:     "2025-07-16",
		Time:     "19:30",
		Duration: 90,
		Players: []MatchPlayer{
			{ID: "1", Name: "Alex", Level: 3.5},
			{ID: "5", Name: "Carlos", Level: 3.7},
			{ID: "6", Name: "Lucia", Level: 3.8},
			{ID: "7", Name: "Pablo", Level: 3.6},
		},
		Level:  "Intermediate-Advanced",
		Court:  5,
		Status: "confirmed",
	},
}

var timeSlots = []string{
	"16:00", "16:30", "17:00", "17:30", "18:00",
	"18:30", "19:00", "19:30", "20:00", "20:30",
	"21:00", "21:30", "22:00", "22:30",
}
