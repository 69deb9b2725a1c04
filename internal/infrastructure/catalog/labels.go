package catalog

// serviceLabels maps known catalog keys to display labels. The remote
// document carries keys only; labels are resolved locally. Unknown keys fall
// back to the raw key — graceful degradation, not an error.
var serviceLabels = map[string]string{
	"maintenance":     "Maintenance",
	"cleaning":        "Cleaning",
	"appliance":       "Appliance Repair",
	"moving":          "Moving & Delivery",
	"electrician":     "Electrician",
	"plumber":         "Plumber",
	"painter":         "Painter",
	"carpenter":       "Carpenter",
	"house_cleaning":  "House Cleaning",
	"office_cleaning": "Office Cleaning",
	"laundry":         "Laundry",
	"fridge_repair":   "Fridge Repair",
	"tv_repair":       "TV Repair",
	"washer_repair":   "Washing Machine Repair",
	"house_moving":    "House Moving",
	"furniture":       "Furniture Delivery",
}

func labelFor(key string) string {
	if label, ok := serviceLabels[key]; ok {
		return label
	}
	return key
}
