package tutor

// Family classifies a subject into one of the two tutoring flow shapes.
type Family string

const (
	FamilySTEM       Family = "STEM"
	FamilyHumanities Family = "Humanities"
)

// Subject is one entry in the fixed learning catalog.
type Subject struct {
	Name   string   `json:"name"`
	Family Family   `json:"family"`
	Topics []string `json:"topics"`
}

// catalog is the fixed set of subjects and topics offered to learners.
var catalog = []Subject{
	{Name: "Math", Family: FamilySTEM, Topics: []string{"Basic Arithmetic", "Fractions", "Algebra", "Geometry"}},
	{Name: "Physics", Family: FamilySTEM, Topics: []string{"Motion", "Forces", "Energy", "Light"}},
	{Name: "Chemistry", Family: FamilySTEM, Topics: []string{"Elements", "Reactions", "Molecules", "Acids & Bases"}},
	{Name: "History", Family: FamilyHumanities, Topics: []string{"Ancient Civilizations", "World Wars", "American History", "Cultural History"}},
	{Name: "Geography", Family: FamilyHumanities, Topics: []string{"Continents", "Climate", "Natural Resources", "Countries"}},
	{Name: "Biology", Family: FamilyHumanities, Topics: []string{"Human Body", "Plants", "Animals", "Ecosystems"}},
}

// Catalog returns the full subject catalog.
func Catalog() []Subject {
	out := make([]Subject, len(catalog))
	copy(out, catalog)
	return out
}

// LookupSubject finds a catalog subject by name.
func LookupSubject(name string) (Subject, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Subject{}, false
}

// ValidatePair checks that topic is offered for subject and returns the
// subject's flow family.
func ValidatePair(subject, topic string) (Family, bool) {
	s, ok := LookupSubject(subject)
	if !ok {
		return "", false
	}
	for _, t := range s.Topics {
		if t == topic {
			return s.Family, true
		}
	}
	return "", false
}
