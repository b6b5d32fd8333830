package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSensorReadingMarshalsAllNull(t *testing.T) {
	var reading SensorReading

	data, err := json.Marshal(reading)
	require.NoError(t, err)
	assert.Equal(t, `{"Temperature":null,"Humidity":null,"Pressure":null,"Sensor":null}`, string(data))
}

func TestSensorReadingKeyOrderIsFixed(t *testing.T) {
	var reading SensorReading
	// Populate in reverse order; the JSON key order must not change.
	reading.Set(FieldSensor, "OK")
	reading.Set(FieldPressure, "1013.2")
	reading.Set(FieldHumidity, "55")
	reading.Set(FieldTemperature, "20.1")

	data, err := json.Marshal(reading)
	require.NoError(t, err)
	assert.Equal(t, `{"Temperature":"20.1","Humidity":"55","Pressure":"1013.2","Sensor":"OK"}`, string(data))
}

func TestSensorReadingSetLastWriteWins(t *testing.T) {
	var reading SensorReading
	reading.Set(FieldTemperature, "21.5")
	reading.Set(FieldTemperature, "21.8")

	require.NotNil(t, reading.Temperature)
	assert.Equal(t, "21.8", *reading.Temperature)
}

func TestSensorReadingSetIgnoresUnknownFields(t *testing.T) {
	var reading SensorReading
	reading.Set("Voltage", "3.3")
	reading.Set("temperature", "19.0") // case matters

	assert.Nil(t, reading.Temperature)
	assert.Nil(t, reading.Humidity)
	assert.Nil(t, reading.Pressure)
	assert.Nil(t, reading.Sensor)
}

func TestSensorFieldsOrder(t *testing.T) {
	assert.Equal(t, []string{"Temperature", "Humidity", "Pressure", "Sensor"}, SensorFields)
}
