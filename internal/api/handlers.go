package api

import (
	"bytes"
	"net/http"
	"strconv"

	"nathanbeddoewebdev/ecoprint/internal/cache"
	"nathanbeddoewebdev/ecoprint/internal/chart"
	"nathanbeddoewebdev/ecoprint/internal/emissions"
	"nathanbeddoewebdev/ecoprint/internal/form"
	"nathanbeddoewebdev/ecoprint/internal/report"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const contentTypeJSON = "application/json; charset=utf-8"

type handler struct {
	logger zerolog.Logger
	charts *cache.Cache
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type regionResponse struct {
	Name      string  `json:"name"`
	Label     string  `json:"label"`
	Intensity float64 `json:"intensity"`
}

func (h *handler) regions(c *gin.Context) {
	out := make([]regionResponse, len(emissions.GridPresets))
	for i, p := range emissions.GridPresets {
		out[i] = regionResponse{Name: p.Name, Label: p.Label, Intensity: p.Intensity}
	}
	c.JSON(http.StatusOK, out)
}

func (h *handler) estimateQuery(c *gin.Context) {
	h.writeEstimate(c, queryFields(c))
}

func (h *handler) estimateBody(c *gin.Context) {
	fields, err := bodyFields(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be a JSON object"})
		return
	}
	h.writeEstimate(c, fields)
}

func (h *handler) writeEstimate(c *gin.Context, fields form.Fields) {
	in := form.Parse(fields)
	est := emissions.Calculate(in)
	h.logger.Debug().
		Interface("input", in).
		Int("eco_score", est.Metrics.EcoScore).
		Msg("estimate computed")

	var buf bytes.Buffer
	if err := report.WriteJSON(&buf, est); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode estimate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to encode estimate"})
		return
	}
	c.Data(http.StatusOK, contentTypeJSON, buf.Bytes())
}

func (h *handler) chartPNG(c *gin.Context) { h.writeChart(c, chart.FormatPNG, "image/png") }
func (h *handler) chartSVG(c *gin.Context) { h.writeChart(c, chart.FormatSVG, "image/svg+xml") }

func (h *handler) writeChart(c *gin.Context, format chart.Format, contentType string) {
	in := form.Parse(queryFields(c))
	opts := chart.Options{
		Width:  queryInt(c, "width"),
		Height: queryInt(c, "height"),
		Format: format,
	}
	key := cache.Key(string(format), opts.Width, opts.Height, in)

	if img, ok, err := h.charts.Get(key); err != nil {
		h.logger.Warn().Err(err).Str("key", key).Msg("chart cache read failed")
	} else if ok {
		c.Header("X-Cache", "hit")
		c.Data(http.StatusOK, img.ContentType, img.Body)
		return
	}

	est := emissions.Calculate(in)
	canvas := chart.NewCanvas(opts)
	defer canvas.Release()
	canvas.Draw(est.Chart)

	var buf bytes.Buffer
	if err := canvas.Render(&buf); err != nil {
		h.logger.Error().Err(err).Str("format", string(format)).Msg("failed to render chart")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render chart"})
		return
	}

	if h.charts.Enabled() {
		if err := h.charts.Put(key, cache.Image{ContentType: contentType, Body: buf.Bytes()}); err != nil {
			h.logger.Warn().Err(err).Str("key", key).Msg("chart cache write failed")
		}
		c.Header("X-Cache", "miss")
	}
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// maxChartSide bounds the requested image size.
const maxChartSide = 4096

// queryInt reads a positive image dimension; anything else means default.
func queryInt(c *gin.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v <= 0 {
		return 0
	}
	return min(v, maxChartSide)
}

func queryFields(c *gin.Context) form.Fields {
	fields := form.Fields{}
	for _, name := range form.Names {
		if v, ok := c.GetQuery(name); ok {
			fields[name] = v
		}
	}
	return fields
}

// bodyFields decodes a JSON object body into raw field text. Numbers keep
// their literal spelling; booleans become "true"/"false"; anything else
// non-string is dropped and later reads as 0.
func bodyFields(c *gin.Context) (form.Fields, error) {
	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errNotObject
	}

	fields := form.Fields{}
	for _, name := range form.Names {
		switch v := raw[name].(type) {
		case string:
			fields[name] = v
		case json.Number:
			fields[name] = v.String()
		case bool:
			fields[name] = strconv.FormatBool(v)
		}
	}
	return fields, nil
}
