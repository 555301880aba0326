package chart

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dghubble/sling"
)

const (
	defaultBaseURL = "https://api.datawrapper.de/v3/"
	chartType      = "d3-lines"
	apiTimeout     = 15 * time.Second
)

// Client talks to the Datawrapper v3 API
type Client struct {
	base *sling.Sling
}

// NewClient creates a Datawrapper client authenticated with the given token
func NewClient(token string) *Client {
	return NewClientWithBaseURL(token, defaultBaseURL)
}

// NewClientWithBaseURL creates a client against a custom API base URL.
// Tests point this at a local server.
func NewClientWithBaseURL(token, baseURL string) *Client {
	httpClient := &http.Client{
		Timeout: apiTimeout,
	}
	return &Client{
		base: sling.New().
			Client(httpClient).
			Base(baseURL).
			Set("Authorization", "Bearer "+token),
	}
}

type chartConfig struct {
	Title string `json:"title"`
	Type  string `json:"type"`
}

type chartInfo struct {
	ID string `json:"id"`
}

// CreateChart creates an unpublished line chart and returns its id
func (c *Client) CreateChart(title string) (string, error) {
	var info chartInfo
	resp, err := c.base.New().
		Post("charts").
		BodyJSON(chartConfig{Title: title, Type: chartType}).
		ReceiveSuccess(&info)
	if err != nil {
		return "", fmt.Errorf("creating chart: %w", err)
	}
	if err := checkStatus(resp, "creating chart"); err != nil {
		return "", err
	}
	if info.ID == "" {
		return "", fmt.Errorf("creating chart: no chart id in response")
	}
	return info.ID, nil
}

// UploadData uploads the CSV payload for the chart
func (c *Client) UploadData(chartID, csvData string) error {
	resp, err := c.base.New().
		Put("charts/"+chartID+"/data").
		Set("Content-Type", "text/csv").
		Body(strings.NewReader(csvData)).
		ReceiveSuccess(nil)
	if err != nil {
		return fmt.Errorf("uploading chart data: %w", err)
	}
	return checkStatus(resp, "uploading chart data")
}

// PatchMetadata applies the game-flow visualization settings to the chart
func (c *Client) PatchMetadata(chartID, teamA, teamB string) error {
	resp, err := c.base.New().
		Patch("charts/"+chartID).
		BodyJSON(gameFlowMetadata(teamA, teamB)).
		ReceiveSuccess(nil)
	if err != nil {
		return fmt.Errorf("patching chart metadata: %w", err)
	}
	return checkStatus(resp, "patching chart metadata")
}

// Publish publishes the chart
func (c *Client) Publish(chartID string) error {
	resp, err := c.base.New().
		Post("charts/" + chartID + "/publish").
		ReceiveSuccess(nil)
	if err != nil {
		return fmt.Errorf("publishing chart: %w", err)
	}
	return checkStatus(resp, "publishing chart")
}

func checkStatus(resp *http.Response, op string) error {
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: datawrapper returned status %d", op, resp.StatusCode)
	}
	return nil
}

// gameFlowMetadata builds the visualization patch for a game-flow line
// chart: hollow end-point symbols per team line, a shaded area between the
// two series, and monotone interpolation.
func gameFlowMetadata(teamA, teamB string) map[string]interface{} {
	lineStyle := func() map[string]interface{} {
		return map[string]interface{}{
			"symbols": map[string]interface{}{
				"on":      "last",
				"style":   "hollow",
				"enabled": true,
			},
			"valueLabels": map[string]interface{}{
				"first":   false,
				"enabled": true,
			},
		}
	}

	return map[string]interface{}{
		"metadata": map[string]interface{}{
			"describe": map[string]interface{}{
				"source-name":      "Basketball Reference Play-by-Play",
				"source-url":       "",
				"intro":            fmt.Sprintf("Game flow chart for %s vs. %s.", teamA, teamB),
				"byline":           "",
				"aria-description": fmt.Sprintf("Line chart showing the score progression for %s and %s throughout the game.", teamA, teamB),
				"number-format":    "-",
			},
			"visualize": map[string]interface{}{
				"dark-mode-invert": true,
				"lines": map[string]interface{}{
					teamA: lineStyle(),
					teamB: lineStyle(),
				},
				"custom-area-fills": []map[string]interface{}{
					{
						"id":             "game-flow-gap",
						"from":           teamA,
						"to":             teamB,
						"color":          "#cccccc",
						"opacity":        0.3,
						"colorNegative":  "#E31A1C",
						"interpolation":  "linear",
						"useMixedColors": false,
					},
				},
				"legend": map[string]interface{}{
					"enabled":   true,
					"position":  "top",
					"alignment": "left",
				},
				"connector-lines": true,
				"interpolation":   "monotone-x",
				"hover-highlight": true,
				"plotHeightFixed": 350,
				"show-color-key":  true,
			},
		},
	}
}
