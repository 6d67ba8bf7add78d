package ui

import (
	"bytes"
	"net/http"
	"strconv"

	"spacexdash/adapters/excel"
	"spacexdash/adapters/render"
	"spacexdash/app"
	"spacexdash/domain/launch"
	"spacexdash/internal/errors"

	"github.com/gin-gonic/gin"
)

const (
	svgContentType  = "image/svg+xml"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", gin.H{
		"Title":     DashboardTitle,
		"Layout":    s.layout,
		"Selection": launch.DefaultSelection(),
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"records": s.table.Len(),
	})
}

func (s *Server) handleLayout(c *gin.Context) {
	c.JSON(http.StatusOK, s.layout)
}

func (s *Server) handleDataset(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"records":        s.table.Len(),
		"min_payload_kg": s.table.MinPayload,
		"max_payload_kg": s.table.MaxPayload,
		"sites":          s.table.Sites(),
		"options":        launch.SiteOptions,
	})
}

// handlePieChart is the site dropdown callback
func (s *Server) handlePieChart(c *gin.Context) {
	site := siteParam(c)
	pie := app.PieChart(s.table, site)
	s.logger.Debug("[PieChart] site=%q segments=%d empty=%t", site, len(pie.Segments), pie.Empty)

	c.JSON(http.StatusOK, gin.H{
		"chart":  pie,
		"figure": pie.Figure(),
	})
}

// handleScatterPlot is the dropdown + payload slider callback
func (s *Server) handleScatterPlot(c *gin.Context) {
	sel, err := selectionParams(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}
	sc := app.ScatterPlot(s.table, sel.Site, sel.Range)
	s.logger.Debug("[ScatterPlot] site=%q range=[%g, %g] points=%d", sel.Site, sel.Range.Low, sel.Range.High, len(sc.Points))

	c.JSON(http.StatusOK, gin.H{
		"chart":   sc,
		"figure":  sc.Figure(),
		"summary": app.Summarize(sc),
	})
}

func (s *Server) handlePieSVG(c *gin.Context) {
	var buf bytes.Buffer
	if err := render.PieSVG(&buf, app.PieChart(s.table, siteParam(c))); err != nil {
		s.abortWithError(c, errors.Wrap(err, "pie chart rendering failed"))
		return
	}
	c.Data(http.StatusOK, svgContentType, buf.Bytes())
}

func (s *Server) handleScatterSVG(c *gin.Context) {
	sel, err := selectionParams(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := render.ScatterSVG(&buf, app.ScatterPlot(s.table, sel.Site, sel.Range)); err != nil {
		s.abortWithError(c, errors.Wrap(err, "scatter chart rendering failed"))
		return
	}
	c.Data(http.StatusOK, svgContentType, buf.Bytes())
}

func (s *Server) handleScatterExport(c *gin.Context) {
	sel, err := selectionParams(c)
	if err != nil {
		s.abortWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := excel.WriteScatter(&buf, app.ScatterPlot(s.table, sel.Site, sel.Range)); err != nil {
		s.abortWithError(c, errors.Wrap(err, "scatter export failed"))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="spacex_launches.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// abortWithError maps INVALID_INPUT to 400 and everything else to 500
func (s *Server) abortWithError(c *gin.Context, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	if code == errors.CodeInvalidInput {
		status = http.StatusBadRequest
		s.logger.Warn("[%s] Rejected request: %v", c.FullPath(), err)
	} else {
		s.logger.Error("[%s] Request failed: %v", c.FullPath(), err)
	}
	c.AbortWithStatusJSON(status, gin.H{
		"error": err.Error(),
		"code":  code,
	})
}

// siteParam reads the dropdown value, defaulting to all sites
func siteParam(c *gin.Context) string {
	if site := c.Query("site"); site != "" {
		return site
	}
	return launch.AllSites
}

// selectionParams reads site, low and high. Missing bounds take the slider extremes.
func selectionParams(c *gin.Context) (launch.Selection, error) {
	low, err := floatParam(c, "low", launch.SliderMin)
	if err != nil {
		return launch.Selection{}, err
	}
	high, err := floatParam(c, "high", launch.SliderMax)
	if err != nil {
		return launch.Selection{}, err
	}
	rng, err := launch.NewPayloadRange(low, high)
	if err != nil {
		return launch.Selection{}, err
	}
	return launch.Selection{Site: siteParam(c), Range: rng}, nil
}

func floatParam(c *gin.Context, name string, defaultValue float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Newf(errors.CodeInvalidInput, "query parameter %s=%q is not a number", name, raw)
	}
	return v, nil
}
