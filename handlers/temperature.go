package handlers

import (
	"html/template"
	"log"
	"net/http"

	"attendance_dashboard/models"
	"attendance_dashboard/temperature"

	"github.com/gin-gonic/gin"
)

type TemperatureHandler struct {
	loader *temperature.Loader
}

func NewTemperatureHandler(loader *temperature.Loader) *TemperatureHandler {
	return &TemperatureHandler{loader: loader}
}

type temperaturePage struct {
	Chart   template.HTML
	Summary string
	Samples int
	Error   string
}

// TemperaturePage renders the chart inline with the highest/lowest line.
// A failed fetch renders the empty state instead of an error page.
func (h *TemperatureHandler) TemperaturePage(c *gin.Context) {
	series, err := h.loader.Load(c.Request.Context())
	page := temperaturePage{}
	if err != nil {
		log.Printf("Error loading temperature series: %v", err)
		page.Error = "Temperature data is currently unavailable."
	}

	ext := temperature.TrackExtremes(series)
	page.Chart = template.HTML(temperature.GenerateChart(series, ext))
	page.Summary = ext.Summary()
	page.Samples = len(series)

	c.HTML(http.StatusOK, "temperature.html", page)
}

// GetChart serves the chart on its own as SVG
func (h *TemperatureHandler) GetChart(c *gin.Context) {
	series, err := h.loader.Load(c.Request.Context())
	if err != nil {
		log.Printf("Error loading temperature series: %v", err)
		c.String(http.StatusBadGateway, "Chart not available")
		return
	}
	ext := temperature.TrackExtremes(series)
	c.Data(http.StatusOK, "image/svg+xml", temperature.GenerateChart(series, ext))
}

// GetSeries returns the parsed series and its extremes
func (h *TemperatureHandler) GetSeries(c *gin.Context) {
	series, err := h.loader.Load(c.Request.Context())
	if err != nil {
		log.Printf("Error loading temperature series: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch temperature series"})
		return
	}

	response := models.TemperatureSeriesResponse{
		Samples: make([]models.TemperatureSampleResponse, 0, len(series)),
	}
	for _, s := range series {
		sample := models.TemperatureSampleResponse{Time: s.Time}
		if s.Valid {
			v := s.Temperature
			sample.Temperature = &v
		}
		response.Samples = append(response.Samples, sample)
	}

	ext := temperature.TrackExtremes(series)
	if ext.Found {
		response.Highest = &models.TemperaturePoint{Value: ext.Max.Value, At: ext.Max.At}
		response.Lowest = &models.TemperaturePoint{Value: ext.Min.Value, At: ext.Min.At}
	}

	c.JSON(http.StatusOK, response)
}
