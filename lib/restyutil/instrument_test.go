package restyutil

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type memoryOutput struct {
	mutex    sync.Mutex
	messages map[string]string
}

func (o *memoryOutput) Write(id, contents string) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.messages[id] = contents
}

func TestInstrumentClientDumpsExchanges(t *testing.T) {
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer slog.SetDefault(previous)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "29")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	output := &memoryOutput{messages: map[string]string{}}
	client := resty.New()
	InstrumentClient(client, output)

	_, err := client.R().
		SetQueryParam("key", "secret").
		Get(server.URL + "/members")
	if err != nil {
		t.Fatal(err)
	}

	require.Len(t, output.messages, 1)
	dump := output.messages["1"]
	require.Contains(t, dump, "X-Ratelimit-Remaining: 29")
	require.Contains(t, dump, `{"results":[]}`)
	require.False(t, strings.Contains(dump, "secret"))
}
