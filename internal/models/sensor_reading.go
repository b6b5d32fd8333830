package models

// Recognized sensor field names, in response order.
const (
	FieldTemperature = "Temperature"
	FieldHumidity    = "Humidity"
	FieldPressure    = "Pressure"
	FieldSensor      = "Sensor"
)

// SensorFields lists the recognized field names in the order they appear
// in the JSON response.
var SensorFields = []string{FieldTemperature, FieldHumidity, FieldPressure, FieldSensor}

// SensorReading holds the latest observed value per sensor field.
// Struct field order fixes the JSON key order; nil values marshal as null.
type SensorReading struct {
	Temperature *string `json:"Temperature"`
	Humidity    *string `json:"Humidity"`
	Pressure    *string `json:"Pressure"`
	Sensor      *string `json:"Sensor"`
}

// Set stores value under the given field name. Later writes overwrite
// earlier ones; unrecognized field names are ignored.
func (s *SensorReading) Set(field, value string) {
	switch field {
	case FieldTemperature:
		s.Temperature = &value
	case FieldHumidity:
		s.Humidity = &value
	case FieldPressure:
		s.Pressure = &value
	case FieldSensor:
		s.Sensor = &value
	}
}
