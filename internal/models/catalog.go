package models

// Fixed enumerations shared by validation, filters and the catalog endpoint.

const (
	JobTypeFullTime = "Full-time"
	JobTypePartTime = "Part-time"
	JobTypeContract = "Contract"
)

var JobCategories = []string{"Warehousing", "Construction", "Kitchen", "Cleaning"}

var JobTypes = []string{JobTypeFullTime, JobTypePartTime, JobTypeContract}

// ApplicationIndustries are offered on the CV application form.
var ApplicationIndustries = []string{
	"Agriculture",
	"Automotive",
	"Construction",
	"Education",
	"Energy & Utilities",
	"Finance & Banking",
	"Food & Beverage",
	"Healthcare",
	"Hospitality & Tourism",
	"Information Technology",
	"Logistics & Transportation",
	"Manufacturing",
	"Mining",
	"Oil & Gas",
	"Real Estate",
	"Retail",
	"Security Services",
	"Telecommunications",
	"Warehouse & Distribution",
	"Other",
}

// InquiryIndustries are the industries an employer can pick when posting a job.
var InquiryIndustries = []string{"hotels", "construction", "plumbing", "helper", "Manufacturing", "Cleaning", "Warehouse", "Kitchen"}

// Regions doubles as the country list for preferred countries.
var Regions = []string{
	"Afghanistan", "Albania", "Algeria", "Andorra", "Angola", "Argentina", "Armenia", "Australia", "Austria", "Azerbaijan",
	"Bahrain", "Bangladesh", "Belarus", "Belgium", "Bolivia", "Bosnia and Herzegovina", "Brazil", "Bulgaria",
	"Cambodia", "Cameroon", "Canada", "Chile", "China", "Colombia", "Costa Rica", "Croatia", "Cuba", "Cyprus", "Czech Republic",
	"Denmark", "Dominican Republic",
	"Ecuador", "Egypt", "El Salvador", "Estonia", "Ethiopia",
	"Finland", "France",
	"Georgia", "Germany", "Ghana", "Greece", "Guatemala",
	"Honduras", "Hong Kong", "Hungary",
	"Iceland", "India", "Indonesia", "Iran", "Iraq", "Ireland", "Israel", "Italy",
	"Jamaica", "Japan", "Jordan",
	"Kazakhstan", "Kenya", "Kuwait", "Kyrgyzstan",
	"Latvia", "Lebanon", "Libya", "Lithuania", "Luxembourg",
	"Macedonia", "Malaysia", "Malta", "Mexico", "Moldova", "Monaco", "Mongolia", "Montenegro", "Morocco", "Myanmar",
	"Nepal", "Netherlands", "New Zealand", "Nicaragua", "Nigeria", "North Korea", "Norway",
	"Oman",
	"Pakistan", "Palestine", "Panama", "Paraguay", "Peru", "Philippines", "Poland", "Portugal",
	"Qatar",
	"Romania", "Russia",
	"Saudi Arabia", "Serbia", "Singapore", "Slovakia", "Slovenia", "South Africa", "South Korea", "Spain", "Sri Lanka", "Sudan", "Sweden", "Switzerland", "Syria",
	"Taiwan", "Tajikistan", "Tanzania", "Thailand", "Tunisia", "Turkey", "Turkmenistan",
	"UAE", "Uganda", "UK", "Ukraine", "Uruguay", "USA", "Uzbekistan",
	"Venezuela", "Vietnam",
	"Yemen",
	"Zambia", "Zimbabwe",
}

func IsJobCategory(v string) bool {
	return contains(JobCategories, v)
}

func IsJobType(v string) bool {
	return contains(JobTypes, v)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
