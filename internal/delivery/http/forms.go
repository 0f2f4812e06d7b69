package http

import (
	"net/http"
	"strconv"
)

// genreChoices are the options offered by the venue and artist forms.
var genreChoices = []string{
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

// Validator is implemented by form structs. Validate returns a slice of
// error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// formPage feeds the create-form templates their genre options.
type formPage struct {
	GenreChoices []string
}

// pathID parses the {id} path segment. A non-numeric id is treated the
// same as an unknown one: the caller renders the 404 page.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
