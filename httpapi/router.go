package httpapi

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/luma/seymour/internal/inspect"
	"github.com/luma/seymour/internal/jsonview"
	"github.com/luma/seymour/protocol"
)

// NewRouter returns the playground routes:
//
//	GET  /ping
//	POST /commands/parse     wire line in, JSON out
//	POST /commands/render    JSON in, wire line out
//	POST /responses/parse
//	POST /responses/render
func NewRouter(debug bool, log *zap.Logger) *gin.Engine {
	gin.DisableConsoleColor()
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Logs all requests, RFC3339 with UTC time format.
	r.Use(ginzap.GinzapWithConfig(log, &ginzap.Config{
		TimeFormat: time.RFC3339,
		UTC:        true,
		SkipPaths:  []string{"/ping"},
	}))

	// Logs all panic to error log
	r.Use(ginzap.RecoveryWithZap(log, true))

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	commands := r.Group("/commands")
	commands.POST("/parse", parseCommand)
	commands.POST("/render", renderCommand)

	responses := r.Group("/responses")
	responses.POST("/parse", parseResponse)
	responses.POST("/render", renderResponse)

	return r
}

func parseCommand(c *gin.Context) {
	line, ok := readBody(c)
	if !ok {
		return
	}

	cmd, err := protocol.ParseCommand(trimLine(line))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"reply": protocol.BadCommandFrom(err).String(),
		})
		return
	}

	writeDoc(c, func() ([]byte, error) { return jsonview.MarshalCommand(cmd) })
}

func parseResponse(c *gin.Context) {
	line, ok := readBody(c)
	if !ok {
		return
	}

	resp, err := protocol.ParseResponse(trimLine(line))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	writeDoc(c, func() ([]byte, error) { return jsonview.MarshalResponse(resp) })
}

func renderCommand(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	cmd, err := jsonview.UnmarshalCommand([]byte(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.String(http.StatusOK, cmd.String())
}

func renderResponse(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	resp, err := jsonview.UnmarshalResponse([]byte(body))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.String(http.StatusOK, resp.String())
}

func readBody(c *gin.Context) (string, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, inspect.MaxLineSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	if len(body) > inspect.MaxLineSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": errBodyTooLarge.Error()})
		return "", false
	}

	return string(body), true
}

// trimLine drops a single trailing line terminator, so bodies sent with
// `curl --data-binary @file` work too.
func trimLine(body string) string {
	return inspect.RemoveTrailingCR(strings.TrimSuffix(body, "\n"))
}

func writeDoc(c *gin.Context, marshal func() ([]byte, error)) {
	doc, err := marshal()
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", doc)
}

var errBodyTooLarge = errors.New("request body is larger than a single line may be")
