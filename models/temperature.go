package models

// HealthReading is one row of the health API. Temperature arrives as text.
type HealthReading struct {
	Time        LooseText `json:"time"`
	Temperature LooseText `json:"temperature"`
}

type HealthListResponse struct {
	Data []HealthReading `json:"data"`
}

type TemperaturePoint struct {
	Value float64 `json:"value"`
	At    string  `json:"at"`
}

type TemperatureSampleResponse struct {
	Time        string   `json:"time"`
	Temperature *float64 `json:"temperature"`
}

type TemperatureSeriesResponse struct {
	Samples []TemperatureSampleResponse `json:"samples"`
	Highest *TemperaturePoint           `json:"highest"`
	Lowest  *TemperaturePoint           `json:"lowest"`
}
