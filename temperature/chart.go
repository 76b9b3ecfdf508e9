package temperature

import (
	"bytes"
	"fmt"
	"html"
	"math"
)

const (
	chartWidth   = 800
	chartHeight  = 400
	chartPadLeft = 50
	chartPadTop  = 20
	chartPadBot  = 40
	chartPadRght = 20
	gridLines    = 5
)

// GenerateChart draws the series as an SVG line chart. The y axis is fitted
// to the valid samples; invalid samples break the line.
func GenerateChart(series []Sample, ext Extremes) []byte {
	plotW := float64(chartWidth - chartPadLeft - chartPadRght)
	plotH := float64(chartHeight - chartPadTop - chartPadBot)

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		chartWidth, chartHeight, chartWidth, chartHeight))
	buf.WriteString(fmt.Sprintf("<rect width=\"%d\" height=\"%d\" fill=\"white\"/>\n", chartWidth, chartHeight))

	if !ext.Found {
		buf.WriteString(fmt.Sprintf("<text x=\"%d\" y=\"%d\" text-anchor=\"middle\" fill=\"#666\">No temperature data</text>\n",
			chartWidth/2, chartHeight/2))
		buf.WriteString("</svg>")
		return buf.Bytes()
	}

	lo, hi := math.Floor(ext.Min.Value)-1, math.Ceil(ext.Max.Value)+1

	tempToY := func(temp float64) float64 {
		return chartPadTop + plotH - (temp-lo)/(hi-lo)*plotH
	}
	indexToX := func(i int) float64 {
		if len(series) < 2 {
			return chartPadLeft + plotW/2
		}
		return chartPadLeft + float64(i)/float64(len(series)-1)*plotW
	}

	// Horizontal grid with temperature labels
	buf.WriteString("<g stroke=\"#ddd\" stroke-width=\"1\" stroke-dasharray=\"3 3\">\n")
	for i := 0; i <= gridLines; i++ {
		y := chartPadTop + plotH*float64(i)/gridLines
		buf.WriteString(fmt.Sprintf("<line x1=\"%d\" y1=\"%.1f\" x2=\"%d\" y2=\"%.1f\"/>\n",
			chartPadLeft, y, chartWidth-chartPadRght, y))
	}
	buf.WriteString("</g>\n")

	buf.WriteString("<g font-size=\"11\" fill=\"#666\" text-anchor=\"end\">\n")
	for i := 0; i <= gridLines; i++ {
		temp := hi - (hi-lo)*float64(i)/gridLines
		y := chartPadTop + plotH*float64(i)/gridLines
		buf.WriteString(fmt.Sprintf("<text x=\"%d\" y=\"%.1f\">%.1f</text>\n", chartPadLeft-6, y+4, temp))
	}
	buf.WriteString("</g>\n")

	// Time labels at the first, middle and last sample
	buf.WriteString("<g font-size=\"11\" fill=\"#666\" text-anchor=\"middle\">\n")
	for _, i := range labelIndexes(len(series)) {
		buf.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%d\">%s</text>\n",
			indexToX(i), chartHeight-chartPadBot+18, html.EscapeString(series[i].Time)))
	}
	buf.WriteString("</g>\n")

	// Line, one path segment per run of valid samples
	buf.WriteString("<path fill=\"none\" stroke=\"#8884d8\" stroke-width=\"2\" d=\"")
	pen := false
	for i, s := range series {
		if !s.Valid {
			pen = false
			continue
		}
		cmd := "L"
		if !pen {
			cmd = "M"
			pen = true
		}
		buf.WriteString(fmt.Sprintf("%s%.1f %.1f ", cmd, indexToX(i), tempToY(s.Temperature)))
	}
	buf.WriteString("\"/>\n")

	// Markers on the extremes
	for i, s := range series {
		if !s.Valid {
			continue
		}
		// Max and min may be the same sample; both markers are drawn.
		if s.Time == ext.Max.At && s.Temperature == ext.Max.Value {
			buf.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"#d62728\"/>\n", indexToX(i), tempToY(s.Temperature)))
		}
		if s.Time == ext.Min.At && s.Temperature == ext.Min.Value {
			buf.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"#1f77b4\"/>\n", indexToX(i), tempToY(s.Temperature)))
		}
	}

	buf.WriteString("</svg>")
	return buf.Bytes()
}

func labelIndexes(n int) []int {
	switch {
	case n == 0:
		return nil
	case n == 1:
		return []int{0}
	case n == 2:
		return []int{0, 1}
	default:
		return []int{0, n / 2, n - 1}
	}
}
