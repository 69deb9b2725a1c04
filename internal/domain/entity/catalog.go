package entity

// Category katalogdagi yuqori daraja bo'limi
type Category struct {
	Key   string
	Label string
}

// ServiceOption bitta xizmat turi (kategoriya ichida)
type ServiceOption struct {
	Key   string
	Label string
}

// CategoryRecord is the wire shape of one category inside the remote
// catalog document: a key plus the ordered service keys under it.
type CategoryRecord struct {
	Key      string   `json:"key"`
	Services []string `json:"services"`
}
