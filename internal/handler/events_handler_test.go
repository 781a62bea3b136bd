package handler_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"taskboard/internal/handler"
	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStream_SendsChanges(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	s, err := store.Open(context.Background(), repository.NewMemoryRepository(), store.WithLogger(logger))
	require.NoError(t, err)

	r := gin.New()
	r.GET("/events", handler.NewEventsHandler(s, logger).Stream)
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	// Act
	_, err = s.Create(context.Background(), model.TaskDraft{Title: "streamed", Status: model.StatusToDo, Priority: model.PriorityLow})
	require.NoError(t, err)

	// Assert
	scanner := bufio.NewScanner(resp.Body)
	var event, data string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "event:") {
			event = strings.TrimPrefix(line, "event:")
		}
		if strings.HasPrefix(line, "data:") {
			data = strings.TrimPrefix(line, "data:")
			break
		}
	}
	require.NoError(t, scanner.Err())
	assert.Equal(t, string(store.TaskCreated), event)
	assert.Contains(t, data, `"title":"streamed"`)
}
