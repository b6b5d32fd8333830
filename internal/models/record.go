package models

// Record is a single field/value pair extracted from a query result.
// Value keeps the store-native type (float, int, string or bool).
type Record struct {
	Field string
	Value interface{}
}
