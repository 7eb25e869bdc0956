package phone

import (
	"sort"
	"strings"
)

// Country is a dialling entry.
type Country struct {
	Code string `json:"code"` // ISO 3166-1 alpha-2
	Name string `json:"name"`
	Dial string `json:"dial"`
}

var countryTable = []Country{
	{"US", "United States", "+1"},
	{"GB", "United Kingdom", "+44"},
	{"CA", "Canada", "+1"},
	{"AU", "Australia", "+61"},
	{"DE", "Germany", "+49"},
	{"FR", "France", "+33"},
	{"IT", "Italy", "+39"},
	{"ES", "Spain", "+34"},
	{"NL", "Netherlands", "+31"},
	{"BE", "Belgium", "+32"},
	{"CH", "Switzerland", "+41"},
	{"AT", "Austria", "+43"},
	{"SE", "Sweden", "+46"},
	{"NO", "Norway", "+47"},
	{"DK", "Denmark", "+45"},
	{"FI", "Finland", "+358"},
	{"PL", "Poland", "+48"},
	{"PT", "Portugal", "+351"},
	{"IE", "Ireland", "+353"},
	{"GR", "Greece", "+30"},
	{"CZ", "Czech Republic", "+420"},
	{"HU", "Hungary", "+36"},
	{"RO", "Romania", "+40"},
	{"BG", "Bulgaria", "+359"},
	{"HR", "Croatia", "+385"},
	{"SK", "Slovakia", "+421"},
	{"SI", "Slovenia", "+386"},
	{"LT", "Lithuania", "+370"},
	{"LV", "Latvia", "+371"},
	{"EE", "Estonia", "+372"},
	{"RU", "Russia", "+7"},
	{"UA", "Ukraine", "+380"},
	{"TR", "Turkey", "+90"},
	{"IN", "India", "+91"},
	{"PK", "Pakistan", "+92"},
	{"BD", "Bangladesh", "+880"},
	{"LK", "Sri Lanka", "+94"},
	{"NP", "Nepal", "+977"},
	{"CN", "China", "+86"},
	{"JP", "Japan", "+81"},
	{"KR", "South Korea", "+82"},
	{"TH", "Thailand", "+66"},
	{"VN", "Vietnam", "+84"},
	{"MY", "Malaysia", "+60"},
	{"SG", "Singapore", "+65"},
	{"ID", "Indonesia", "+62"},
	{"PH", "Philippines", "+63"},
	{"AE", "UAE", "+971"},
	{"SA", "Saudi Arabia", "+966"},
	{"QA", "Qatar", "+974"},
	{"KW", "Kuwait", "+965"},
	{"BH", "Bahrain", "+973"},
	{"OM", "Oman", "+968"},
	{"JO", "Jordan", "+962"},
	{"LB", "Lebanon", "+961"},
	{"IL", "Israel", "+972"},
	{"EG", "Egypt", "+20"},
	{"MA", "Morocco", "+212"},
	{"TN", "Tunisia", "+216"},
	{"DZ", "Algeria", "+213"},
	{"NG", "Nigeria", "+234"},
	{"KE", "Kenya", "+254"},
	{"ZA", "South Africa", "+27"},
	{"GH", "Ghana", "+233"},
	{"ET", "Ethiopia", "+251"},
	{"TZ", "Tanzania", "+255"},
	{"UG", "Uganda", "+256"},
	{"MX", "Mexico", "+52"},
	{"BR", "Brazil", "+55"},
	{"AR", "Argentina", "+54"},
	{"CO", "Colombia", "+57"},
	{"CL", "Chile", "+56"},
	{"PE", "Peru", "+51"},
	{"VE", "Venezuela", "+58"},
	{"EC", "Ecuador", "+593"},
	{"NZ", "New Zealand", "+64"},
}

var byCode map[string]Country

func init() {
	sort.SliceStable(countryTable, func(i, j int) bool {
		return strings.ToLower(countryTable[i].Name) < strings.ToLower(countryTable[j].Name)
	})

	byCode = make(map[string]Country, len(countryTable))
	for _, c := range countryTable {
		byCode[c.Code] = c
	}
}

// Countries returns the table sorted by display name. The slice is a copy.
func Countries() []Country {
	out := make([]Country, len(countryTable))
	copy(out, countryTable)
	return out
}

// Lookup finds a country by ISO code.
func Lookup(code string) (Country, bool) {
	c, ok := byCode[code]
	return c, ok
}

// DefaultCountryCode preselected on intake forms.
const DefaultCountryCode = "US"
