package config

// Category is one of the branch categories gflow knows how to create
type Category int

// Branch categories
const (
	Epic Category = iota
	Feature
	Fix
	Hotfix
)

// Categories lists every category in usage order
var Categories = []Category{Epic, Feature, Fix, Hotfix}

// Key returns the configuration key holding the category label
func (c Category) Key() string {
	switch c {
	case Epic:
		return KeyEpic
	case Feature:
		return KeyFeature
	case Fix:
		return KeyFix
	case Hotfix:
		return KeyHotfix
	default:
		return ""
	}
}

// Description is the human readable purpose shown in usage text
func (c Category) Description() string {
	switch c {
	case Epic:
		return "Creates an epic branch"
	case Feature:
		return "Creates a feature branch"
	case Fix:
		return "Creates a fix branch"
	case Hotfix:
		return "Creates a hotfix branch"
	default:
		return ""
	}
}

func (c Category) String() string {
	switch c {
	case Epic:
		return "epic"
	case Feature:
		return "feature"
	case Fix:
		return "fix"
	case Hotfix:
		return "hotfix"
	default:
		return "unknown"
	}
}

// Label returns the configured branch prefix for a category
func (c Config) Label(cat Category) string {
	v, _ := c.Get(cat.Key())
	return v
}

// Labels returns the configured labels in category order
func (c Config) Labels() []string {
	labels := make([]string, 0, len(Categories))
	for _, cat := range Categories {
		labels = append(labels, c.Label(cat))
	}
	return labels
}

// CategoryForLabel maps a command line token to its category. Matching is case-sensitive.
func (c Config) CategoryForLabel(token string) (Category, bool) {
	if token == "" {
		return 0, false
	}
	for _, cat := range Categories {
		if c.Label(cat) == token {
			return cat, true
		}
	}
	return 0, false
}
