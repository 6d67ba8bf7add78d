package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"spacexdash/domain/launch"
	"spacexdash/internal"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testTable() *launch.Table {
	return &launch.Table{
		Records: []launch.Record{
			{FlightNumber: 1, Site: "CCAFS LC-40", PayloadMassKg: 500, BoosterCategory: "v1.0", Class: launch.Failure},
			{FlightNumber: 2, Site: "KSC LC-39A", PayloadMassKg: 2490, BoosterCategory: "FT", Class: launch.Success},
			{FlightNumber: 3, Site: "KSC LC-39A", PayloadMassKg: 5300, BoosterCategory: "FT", Class: launch.Failure},
			{FlightNumber: 4, Site: "VAFB SLC-4E", PayloadMassKg: 9600, BoosterCategory: "FT", Class: launch.Success},
		},
		MinPayload: 500,
		MaxPayload: 9600,
	}
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	// the repository root holds ui/templates, ui/static and ui/content
	srv, err := NewServer(os.DirFS(".."), testTable(), internal.NewLogger(internal.LogLevelError))
	require.NoError(t, err)
	return srv
}

func get(t *testing.T, srv *Server, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func TestNewServerRequiresTable(t *testing.T) {
	_, err := NewServer(os.DirFS(".."), nil, nil)
	assert.Error(t, err)
}

func TestIndexPage(t *testing.T) {
	rec := get(t, newTestServer(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "SpaceX Launch Records Dashboard")
	assert.Contains(t, body, `id="site-dropdown"`)
	assert.Contains(t, body, `id="payload-slider"`)
	assert.Contains(t, body, `id="success-pie"`)
	assert.Contains(t, body, `id="success-payload-scatter-chart"`)
	assert.Contains(t, body, `<option value="All" selected>All Sites</option>`)
	assert.Contains(t, body, "Kennedy SC LC-39A")
	assert.Contains(t, body, "<strong>launch site</strong>")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDIsEchoed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(RequestIDHeader, "launch-42")
	rec := httptest.NewRecorder()
	newTestServer(t).Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "launch-42", rec.Header().Get(RequestIDHeader))
}

func TestStaticAssets(t *testing.T) {
	rec := get(t, newTestServer(t), "/static/dashboard.js")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/charts/pie")
}

func TestLayoutAndDatasetEndpoints(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/api/layout")
	require.Equal(t, http.StatusOK, rec.Code)
	var layout Layout
	decode(t, rec, &layout)
	assert.Equal(t, DashboardTitle, layout.Title)
	_, ok := layout.Widget(PayloadSliderID)
	assert.True(t, ok)

	rec = get(t, srv, "/api/dataset")
	require.Equal(t, http.StatusOK, rec.Code)
	var dataset struct {
		Records int      `json:"records"`
		Min     float64  `json:"min_payload_kg"`
		Max     float64  `json:"max_payload_kg"`
		Sites   []string `json:"sites"`
	}
	decode(t, rec, &dataset)
	assert.Equal(t, 4, dataset.Records)
	assert.Equal(t, 500.0, dataset.Min)
	assert.Equal(t, 9600.0, dataset.Max)
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A", "VAFB SLC-4E"}, dataset.Sites)
}

type pieResponse struct {
	Chart struct {
		Title    string `json:"title"`
		Empty    bool   `json:"empty"`
		Segments []struct {
			Label string  `json:"label"`
			Value float64 `json:"value"`
		} `json:"segments"`
	} `json:"chart"`
	Figure struct {
		Data []struct {
			Type   string   `json:"type"`
			Labels []string `json:"labels"`
			Sort   *bool    `json:"sort"`
		} `json:"data"`
	} `json:"figure"`
}

func TestPieChartEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/api/charts/pie?site=KSC+LC-39A")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pieResponse
	decode(t, rec, &resp)
	assert.Equal(t, "Successful booster landings for KSC LC-39A", resp.Chart.Title)
	require.Len(t, resp.Chart.Segments, 2)
	assert.Equal(t, "Failure", resp.Chart.Segments[0].Label)
	assert.Equal(t, 1.0, resp.Chart.Segments[0].Value)
	assert.Equal(t, "Success", resp.Chart.Segments[1].Label)
	require.Len(t, resp.Figure.Data, 1)
	assert.Equal(t, []string{"Failure", "Success"}, resp.Figure.Data[0].Labels)
	require.NotNil(t, resp.Figure.Data[0].Sort)
	assert.False(t, *resp.Figure.Data[0].Sort)
}

func TestPieChartEndpointDefaultsToAllSites(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/charts/pie")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pieResponse
	decode(t, rec, &resp)
	assert.Equal(t, "Successful booster landings by Launch Site", resp.Chart.Title)
	assert.Len(t, resp.Chart.Segments, 3)
}

func TestPieChartEndpointUnknownSite(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/charts/pie?site=Boca+Chica")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp pieResponse
	decode(t, rec, &resp)
	assert.True(t, resp.Chart.Empty)
	assert.Empty(t, resp.Chart.Segments)
}

type scatterResponse struct {
	Chart struct {
		Title  string `json:"title"`
		Points []struct {
			X    float64 `json:"x"`
			Y    int     `json:"y"`
			Site string  `json:"site"`
		} `json:"points"`
	} `json:"chart"`
	Summary struct {
		Points    int `json:"points"`
		Successes int `json:"successes"`
	} `json:"summary"`
}

func TestScatterPlotEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := get(t, srv, "/api/charts/scatter?site=KSC+LC-39A&low=0&high=10000")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp scatterResponse
	decode(t, rec, &resp)
	assert.Equal(t, "Landing success vs Payload Mass for KSC LC-39A", resp.Chart.Title)
	require.Len(t, resp.Chart.Points, 2)
	for _, p := range resp.Chart.Points {
		assert.Equal(t, "KSC LC-39A", p.Site)
	}
	assert.Equal(t, 2, resp.Summary.Points)
	assert.Equal(t, 1, resp.Summary.Successes)

	rec = get(t, srv, "/api/charts/scatter?low=500&high=9600")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	assert.Equal(t, "Landing success vs Payload Mass for all launch sites", resp.Chart.Title)
	// 500 and 9600 sit on the bounds
	assert.Len(t, resp.Chart.Points, 2)
}

func TestScatterPlotEndpointRejectsBadRange(t *testing.T) {
	srv := newTestServer(t)

	for _, url := range []string{
		"/api/charts/scatter?low=abc",
		"/api/charts/scatter?low=6000&high=1000",
		"/api/charts/scatter?high=20000",
		"/charts/scatter.svg?low=-1",
		"/api/export/scatter.xlsx?low=9000&high=100",
	} {
		t.Run(url, func(t *testing.T) {
			rec := get(t, srv, url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			decode(t, rec, &body)
			assert.Equal(t, "INVALID_INPUT", body["code"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestSVGEndpoints(t *testing.T) {
	srv := newTestServer(t)

	for _, url := range []string{
		"/charts/pie.svg",
		"/charts/pie.svg?site=KSC+LC-39A",
		"/charts/scatter.svg?site=KSC+LC-39A",
		"/charts/scatter.svg?site=Boca+Chica",
	} {
		t.Run(url, func(t *testing.T) {
			rec := get(t, srv, url)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, svgContentType, rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), "<svg")
		})
	}
}

func TestScatterExportEndpoint(t *testing.T) {
	rec := get(t, newTestServer(t), "/api/export/scatter.xlsx?site=KSC+LC-39A")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "spacex_launches.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Launches")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestHealthEndpoint(t *testing.T) {
	rec := get(t, newTestServer(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","records":4}`, rec.Body.String())
}
