package schemaorg

import (
	"sort"
	"strings"
)

// DefaultBusinessType is used when a category is empty or not in the table.
const DefaultBusinessType = "LocalBusiness"

// businessTypes maps common business categories to LocalBusiness subtypes.
// See https://schema.org/LocalBusiness#subtypes for the full list.
var businessTypes = map[string]string{
	"attorney":      "Attorney",
	"lawyer":        "Attorney",
	"accountant":    "AccountingService",
	"restaurant":    "Restaurant",
	"cafe":          "CafeOrCoffeeShop",
	"bar":           "BarOrPub",
	"dentist":       "Dentist",
	"doctor":        "Physician",
	"medical":       "MedicalBusiness",
	"real_estate":   "RealEstateAgent",
	"plumber":       "Plumber",
	"electrician":   "Electrician",
	"hvac":          "HVACBusiness",
	"auto_repair":   "AutoRepair",
	"beauty_salon":  "BeautySalon",
	"hair_salon":    "HairSalon",
	"spa":           "DaySpa",
	"gym":           "HealthClub",
	"store":         "Store",
	"florist":       "Florist",
	"bakery":        "Bakery",
	"travel_agency": "TravelAgency",
	"insurance":     "InsuranceAgency",
	"financial":     "FinancialService",
	"veterinarian":  "VeterinaryCare",
	"pet_store":     "PetStore",
	"photographer":  "Photographer",
	"general":       DefaultBusinessType,
}

// BusinessType resolves a category key such as " Restaurant " to its
// Schema.org type. Matching ignores case and surrounding whitespace.
// Unknown categories resolve to DefaultBusinessType.
func BusinessType(category string) string {
	if t, ok := businessTypes[strings.ToLower(strings.TrimSpace(category))]; ok {
		return t
	}
	return DefaultBusinessType
}

// BusinessCategories returns every recognised category key in sorted order.
func BusinessCategories() []string {
	keys := make([]string, 0, len(businessTypes))
	for k := range businessTypes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsBusinessType reports whether t is one of the Schema.org types a
// category can resolve to.
func IsBusinessType(t string) bool {
	if t == DefaultBusinessType {
		return true
	}
	for _, v := range businessTypes {
		if v == t {
			return true
		}
	}
	return false
}
