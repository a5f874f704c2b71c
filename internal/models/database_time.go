package models

// DatabaseTime is the row returned by the connectivity probe
type DatabaseTime struct {
	Now string `json:"now"`
}
