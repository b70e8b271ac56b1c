package valueobjects

// Category buckets tickets by the kind of issue reported.
type Category string

const (
	CategoryHardware      Category = "hardware"
	CategorySoftware      Category = "software"
	CategoryNetwork       Category = "network"
	CategoryLMS           Category = "lms"
	CategoryAccount       Category = "account"
	CategoryOther         Category = "other"
)

var validCategories = map[Category]bool{
	CategoryHardware: true,
	CategorySoftware: true,
	CategoryNetwork:  true,
	CategoryLMS:      true,
	CategoryAccount:  true,
	CategoryOther:    true,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}
