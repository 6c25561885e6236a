// Package fundapitest provides an in-memory fund backend for tests.
package fundapitest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/epeers/fundmanager/internal/models"
	"github.com/gin-gonic/gin"
)

// Request is one call received by the backend
type Request struct {
	Method string
	Path   string
	Body   string
}

// Backend serves the /fundapi routes from memory and records every call
type Backend struct {
	*httptest.Server

	mu       sync.Mutex
	funds    []models.Fund
	requests []Request
	failures map[string]int

	// DeleteBody is the body returned by a successful delete
	DeleteBody string
}

// NewBackend starts a backend seeded with funds. Close it when done.
func NewBackend(funds ...models.Fund) *Backend {
	gin.SetMode(gin.TestMode)

	b := &Backend{
		funds:      append([]models.Fund{}, funds...),
		failures:   make(map[string]int),
		DeleteBody: "Fund deleted successfully",
	}

	router := gin.New()
	router.Use(b.record)

	api := router.Group("/fundapi")
	api.GET("/all", b.list)
	api.POST("/add", b.add)
	api.PUT("/update", b.update)
	api.DELETE("/delete/:id", b.delete)
	api.GET("/get/:id", b.get)

	b.Server = httptest.NewServer(router)
	return b
}

// Fail makes every call to method+path answer with status until cleared with
// status 0. path is the full request path, e.g. "/fundapi/all".
func (b *Backend) Fail(method, path string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := method + " " + path
	if status == 0 {
		delete(b.failures, key)
		return
	}
	b.failures[key] = status
}

// SetFunds replaces the stored records
func (b *Backend) SetFunds(funds ...models.Fund) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.funds = append([]models.Fund{}, funds...)
}

// Funds returns a copy of the stored records
func (b *Backend) Funds() []models.Fund {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Fund{}, b.funds...)
}

// Requests returns every call received so far
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Request{}, b.requests...)
}

// Count returns how many calls matched method and path
func (b *Backend) Count(method, path string) int {
	n := 0
	for _, r := range b.Requests() {
		if r.Method == method && r.Path == path {
			n++
		}
	}
	return n
}

func (b *Backend) record(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	b.mu.Lock()
	b.requests = append(b.requests, Request{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Body:   string(body),
	})
	status, failing := b.failures[c.Request.Method+" "+c.Request.URL.Path]
	b.mu.Unlock()

	if failing {
		c.AbortWithStatusJSON(status, gin.H{"error": http.StatusText(status)})
		return
	}
	c.Next()
}

func (b *Backend) list(c *gin.Context) {
	c.JSON(http.StatusOK, b.Funds())
}

func (b *Backend) add(c *gin.Context) {
	var f models.Fund
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.indexOf(f.FundID) >= 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "fund already exists"})
		return
	}
	b.funds = append(b.funds, f)
	c.JSON(http.StatusOK, f)
}

func (b *Backend) update(c *gin.Context) {
	var f models.Fund
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(f.FundID)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "fund not found"})
		return
	}
	b.funds[i] = f
	c.JSON(http.StatusOK, f)
}

func (b *Backend) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fund id"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "fund not found"})
		return
	}
	b.funds = append(b.funds[:i], b.funds[i+1:]...)
	c.String(http.StatusOK, b.DeleteBody)
}

func (b *Backend) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid fund id"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	i := b.indexOf(id)
	if i < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "fund not found"})
		return
	}
	c.JSON(http.StatusOK, b.funds[i])
}

// indexOf must be called with b.mu held
func (b *Backend) indexOf(id int64) int {
	for i, f := range b.funds {
		if f.FundID == id {
			return i
		}
	}
	return -1
}
