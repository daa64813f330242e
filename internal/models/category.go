package models

// Category labels assigned by the keyword categorizer. CategoryOther is
// the fallback when no keyword scores.
const (
	CategoryFood      = "food"
	CategoryTransport = "transport"
	CategoryShopping  = "shopping"
	CategoryServices  = "services"
	CategoryUtilities = "utilities"
	CategoryTransfer  = "transfer"
	CategoryATM       = "atm"
	CategorySalary    = "salary"
	CategoryOther     = "other"
)

// CategoryKeywords maps one category label to its substring keywords.
// The slice order of a table is significant: when two categories reach
// the same score, the one defined earlier keeps the transaction.
type CategoryKeywords struct {
	Name     string   `yaml:"name" json:"name"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// CategoryLabels returns the label set of a table in definition order.
func CategoryLabels(table []CategoryKeywords) []string {
	labels := make([]string, 0, len(table))
	for _, c := range table {
		labels = append(labels, c.Name)
	}
	return labels
}

// DefaultCategoryKeywords returns the built-in keyword table for CIB
// statements. Keywords are lowercase and matched as substrings against
// the lowercased description plus continuation lines.
func DefaultCategoryKeywords() []CategoryKeywords {
	return []CategoryKeywords{
		{Name: CategoryFood, Keywords: []string{
			"bolt", "lidl", "spar", "tesco", "aldi", "coop", "étterem",
			"food", "pizza", "kfc", "mcdonald", "burger", "reál", "pék",
		}},
		{Name: CategoryTransport, Keywords: []string{
			"mol", "jegy", "bkk", "uber", "bolt taxi", "taxi", "shell",
			"omv", "avia", "parkolás",
		}},
		{Name: CategoryShopping, Keywords: []string{
			"media", "mall", "emag", "edigital", "obl", "ikea", "rossmann",
			"dm", "jysk", "pepco", "sparks",
		}},
		{Name: CategoryServices, Keywords: []string{
			"netflix", "hbo", "spotify", "youtube", "google", "apple",
			"szolgáltatás", "díjbekérés",
		}},
		{Name: CategoryUtilities, Keywords: []string{
			"eon", "elmű", "távhő", "víz", "rezsi", "számla",
		}},
		{Name: CategoryTransfer, Keywords: []string{
			"kimenő utalás", "azonnali utalás", "saját számlák", "átvezetés",
		}},
		{Name: CategoryATM, Keywords: []string{
			"kpfelvétel", "atm", "kp felvétel", "készpénzfelvétel",
		}},
		{Name: CategorySalary, Keywords: []string{
			"bér", "fizetés", "munkabér", "jövedelem",
		}},
		{Name: CategoryOther, Keywords: []string{}},
	}
}
