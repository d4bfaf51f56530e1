package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cberrors "github.com/dbmrq/cookbook/internal/errors"
	"github.com/dbmrq/cookbook/internal/logging"
	"github.com/dbmrq/cookbook/internal/recipe"
)

const body = `{"recipes":[
	{"id":1,"name":"Classic Margherita Pizza","ingredients":["dough"],"instructions":["bake"],"difficulty":"Easy","tags":["Pizza"],"image":"https://img/1.jpg","rating":4.6},
	{"id":2,"name":"Vegetarian Stir-Fry","difficulty":"Medium","rating":4.7}
],"total":2,"skip":0,"limit":30}`

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *fakeClock) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	c := NewClient()
	c.BaseURL = server.URL + "/recipes"
	c.HTTPClient = server.Client()
	c.Now = clock.Now
	c.SetLogger(logging.NewNoop())
	return c, clock
}

func TestClient_List(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipes", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	})

	got, err := c.List(context.Background(), recipe.SortNone)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Classic Margherita Pizza", got[0].Name)
	assert.Equal(t, recipe.DifficultyEasy, got[0].Difficulty)
	assert.Equal(t, []string{"Pizza"}, got[0].Tags)
	assert.InDelta(t, 4.7, got[1].Rating, 0.001)
}

func TestClient_SortQuery(t *testing.T) {
	var queries []string
	var mu sync.Mutex
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		queries = append(queries, r.URL.Query().Get("sortBy")+":"+r.URL.Query().Get("order"))
		mu.Unlock()
		_, _ = w.Write([]byte(body))
	})

	ctx := context.Background()
	_, err := c.List(ctx, recipe.SortAsc)
	require.NoError(t, err)
	_, err = c.List(ctx, recipe.SortDesc)
	require.NoError(t, err)

	assert.Equal(t, []string{"name:asc", "name:desc"}, queries)
}

func TestClient_URL(t *testing.T) {
	c := NewClient()
	assert.Equal(t, DefaultBaseURL, c.URL(recipe.SortNone))
	assert.Equal(t, DefaultBaseURL+"?order=desc&sortBy=name", c.URL(recipe.SortDesc))
}

func TestClient_CachesWithinTTL(t *testing.T) {
	var calls atomic.Int32
	c, clock := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(body))
	})
	ctx := context.Background()

	_, err := c.List(ctx, recipe.SortAsc)
	require.NoError(t, err)
	clock.Advance(DefaultTTL - time.Second)
	_, err = c.List(ctx, recipe.SortAsc)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "second call inside the window should hit the cache")

	// A different directive is a different cache entry.
	_, err = c.List(ctx, recipe.SortNone)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())

	clock.Advance(2 * time.Second)
	_, err = c.List(ctx, recipe.SortAsc)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load(), "expired entry should be refetched")
}

func TestClient_Invalidate(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(body))
	})
	ctx := context.Background()

	_, _ = c.List(ctx, recipe.SortNone)
	c.Invalidate()
	_, _ = c.List(ctx, recipe.SortNone)

	assert.Equal(t, int32(2), calls.Load())
}

func TestClient_ReturnsCopies(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
	ctx := context.Background()

	first, err := c.List(ctx, recipe.SortNone)
	require.NoError(t, err)
	first[0].Name = "corrupted"
	first[0].Tags[0] = "corrupted"

	second, err := c.List(ctx, recipe.SortNone)
	require.NoError(t, err)
	assert.Equal(t, "Classic Margherita Pizza", second[0].Name)
	assert.Equal(t, "Pizza", second[0].Tags[0])
}

func TestClient_BadStatus(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	ctx := context.Background()

	_, err := c.List(ctx, recipe.SortNone)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cberrors.ErrNetwork))
	assert.Contains(t, err.Error(), "500")

	_, err = c.List(ctx, recipe.SortNone)
	require.Error(t, err)
	assert.Equal(t, int32(2), calls.Load(), "failures must not be cached")
}

func TestClient_MalformedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"recipes": "nope"`))
	})

	_, err := c.List(context.Background(), recipe.SortNone)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cberrors.ErrParse))
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := NewClient()
	c.BaseURL = url
	c.SetLogger(logging.NewNoop())

	_, err := c.List(context.Background(), recipe.SortNone)
	require.Error(t, err)
	assert.True(t, cberrors.IsRetryable(err))
}

func TestClient_EmptyEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	got, err := c.List(context.Background(), recipe.SortNone)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestClient_InvalidOrder(t *testing.T) {
	c := NewClient()
	_, err := c.List(context.Background(), recipe.SortOrder("sideways"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, cberrors.ErrValidation))
}

func TestClient_CollapsesConcurrentRequests(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		_, _ = w.Write([]byte(body))
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := c.List(ctx, recipe.SortNone)
			assert.NoError(t, err)
			assert.Len(t, got, 2)
		}()
	}

	// Let the goroutines join the in-flight request before answering it.
	time.Sleep(100 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
}
