package catalog

// Reference data consumed by the booking and profile slices. Never
// mutated - lookups hand out copies.

type Club struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Address  string  `json:"address"`
	Distance string  `json:"distance"`
	City     string  `json:"city"`
	Rating   float64 `json:"rating"`
	Courts   int     `json:"courts"`
}

type Coach struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Image       string   `json:"image"`
	Experience  string   `json:"experience"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
	Price       int      `json:"price"`
}

type MatchPlayer struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Level float64 `json:"level"`
}

type Match struct {
	ID       string        `json:"id"`
	Club     string        `json:"club"`
	Date     string        `json:"date"`
	Time     string        `json:"time"`
	Duration int           `json:"duration"`
	Players  []MatchPlayer `json:"players"`
	Level    string        `json:"level"`
	Court    int           `json:"court"`
	Status   string        `json:"status"`
}

type Repository struct {
	clubs     []Club
	coaches   []Coach
	matches   []Match
	timeSlots []string
}

func NewRepository() *Repository {
	return &Repository{
		clubs:     clubs,
		coaches:   coaches,
		matches:   matches,
		timeSlots: timeSlots,
	}
}

func (r *Repository) Clubs() []Club {
	return append([]Club{}, r.clubs...)
}

func (r *Repository) Club(id string) (Club, bool) {
	for _, club := range r.clubs {
		if club.ID == id {
			return club, true
		}
	}

	return Club{}, false
}

func (r *Repository) Coaches() []Coach {
	return append([]Coach{}, r.coaches...)
}

func (r *Repository) Coach(id string) (Coach, bool) {
	for _, coach := range r.coaches {
		if coach.ID == id {
			return coach, true
		}
	}

	return Coach{}, false
}

func (r *Repository) Matches() []Match {
	return append([]Match{}, r.matches...)
}

func (r *Repository) Match(id string) (Match, bool) {
	for _, match := range r.matches {
		if match.ID == id {
			return match, true
		}
	}

	return Match{}, false
}

// TimeSlots is the half-hour grid the availability UI renders.
func (r *Repository) TimeSlots() []string {
	return append([]string{}, r.timeSlots...)
}
