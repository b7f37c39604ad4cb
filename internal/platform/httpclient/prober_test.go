package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"subburst/internal/platform/logx"
	"subburst/internal/testutil"
)

func hostOf(server *httptest.Server) string {
	return strings.TrimPrefix(server.URL, "http://")
}

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"simple", "<html><head><title>Example Domain</title></head></html>", "Example Domain"},
		{"attributes", `<title lang="en">Hello</title>`, "Hello"},
		{"uppercase tag", "<TITLE>Shout</TITLE>", "Shout"},
		{"first match wins", "<title>One</title><title>Two</title>", "One"},
		{"whitespace collapsed", "<title>\n  Admin \t Panel\n</title>", "Admin Panel"},
		{"entities unescaped", "<title>Tom &amp; Jerry</title>", "Tom & Jerry"},
		{"no title", "<html><body>hi</body></html>", ""},
		{"empty title", "<title></title>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, ExtractTitle(tt.doc), tt.want, "title")
		})
	}
}

func TestProber_Probe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<html><head><title>Welcome</title></head></html>"))
	}))
	defer server.Close()

	prober := NewProber(New(DefaultConfig(), logx.Discard()))
	res, err := prober.Probe(context.Background(), hostOf(server))

	testutil.AssertNoError(t, err, "probe")
	testutil.AssertEqual(t, res.StatusCode, http.StatusOK, "status code")
	testutil.AssertEqual(t, res.Title, "Welcome", "title")
}

func TestProber_NonUTF8Charset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Café" en latin-1
		_, _ = w.Write([]byte("<title>Caf\xe9</title>"))
	}))
	defer server.Close()

	prober := NewProber(New(DefaultConfig(), logx.Discard()))
	res, err := prober.Probe(context.Background(), hostOf(server))

	testutil.AssertNoError(t, err, "probe")
	testutil.AssertEqual(t, res.Title, "Café", "decoded title")
}

func TestProber_ErrorStatusStillRecorded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	prober := NewProber(New(DefaultConfig(), logx.Discard()))
	res, err := prober.Probe(context.Background(), hostOf(server))

	testutil.AssertNoError(t, err, "probe")
	testutil.AssertEqual(t, res.StatusCode, http.StatusNotFound, "status code")
	testutil.AssertEqual(t, res.Title, "", "no title")
}

func TestProber_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	host := hostOf(server)
	server.Close()

	factory := NewProberFactory(DefaultConfig(), logx.Discard())
	prober, err := factory()
	testutil.AssertNoError(t, err, "factory")

	_, err = prober.Probe(context.Background(), host)
	testutil.AssertError(t, err, "unreachable host")
}

func TestNewProberFactory_ClientPerProber(t *testing.T) {
	factory := NewProberFactory(DefaultConfig(), logx.Discard())

	a, err := factory()
	testutil.AssertNoError(t, err, "first prober")
	b, err := factory()
	testutil.AssertNoError(t, err, "second prober")

	pa, pb := a.(*Prober), b.(*Prober)
	testutil.AssertTrue(t, pa.client != pb.client, "each prober owns its client")
	testutil.AssertTrue(t, pa.client.httpClient.Transport != pb.client.httpClient.Transport, "each prober owns its transport")
}

func TestIsSuccess(t *testing.T) {
	testutil.AssertTrue(t, IsSuccess(200), "200")
	testutil.AssertTrue(t, IsSuccess(204), "204")
	testutil.AssertFalse(t, IsSuccess(301), "301")
	testutil.AssertFalse(t, IsSuccess(500), "500")
}
