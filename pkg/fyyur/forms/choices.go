package forms

// States lists the accepted values of the state field
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Genres lists the accepted values of the genres field
var Genres = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

var (
	stateSet = toSet(States)
	genreSet = toSet(Genres)
)

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
