package gemini

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shillcollin/genbridge/internal/httpclient"
)

// backendClient is the transport boundary of the adapter. The production
// implementation speaks HTTP; tests swap in fakes via the newBackend hook.
type backendClient interface {
	Generate(ctx context.Context, req *generateRequest, requestID string) (*generateResponse, error)
	GenerateStream(ctx context.Context, req *generateRequest, requestID string) (chunkStream, error)
}

// chunkStream yields decoded streamed chunks. Recv returns io.EOF when the
// backend closes the stream.
type chunkStream interface {
	Recv() (*generateResponse, error)
	Close() error
}

const requestIDHeader = "X-Request-ID"

type httpBackend struct {
	opts       options
	httpClient *http.Client
	// streamClient carries no overall timeout so long streams are not cut off.
	streamClient *http.Client
}

func newHTTPBackend(opts options) (backendClient, error) {
	client := opts.httpClient
	if client == nil {
		client = httpclient.New(httpclient.WithTimeout(opts.timeout))
	}
	return &httpBackend{
		opts:         opts,
		httpClient:   client,
		streamClient: httpclient.New(httpclient.WithTimeout(0), httpclient.WithTransport(client.Transport)),
	}, nil
}

func (b *httpBackend) Generate(ctx context.Context, payload *generateRequest, requestID string) (*generateResponse, error) {
	body, err := b.doRequest(ctx, b.httpClient, payload, false, requestID)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var resp generateResponse
	if err := json.NewDecoder(body).Decode(&resp); err != nil {
		return nil, &httpError{StatusCode: 0, Body: "decode response: " + err.Error()}
	}
	return &resp, nil
}

func (b *httpBackend) GenerateStream(ctx context.Context, payload *generateRequest, requestID string) (chunkStream, error) {
	body, err := b.doRequest(ctx, b.streamClient, payload, true, requestID)
	if err != nil {
		return nil, err
	}
	return newSSEStream(body), nil
}

func (b *httpBackend) doRequest(ctx context.Context, client *http.Client, payload *generateRequest, stream bool, requestID string) (io.ReadCloser, error) {
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		return nil, err
	}
	endpoint := "/models/" + url.PathEscape(payload.Model)
	if stream {
		endpoint += ":streamGenerateContent?alt=sse"
	} else {
		endpoint += ":generateContent"
	}
	fullURL := strings.TrimRight(b.opts.baseURL, "/") + endpoint
	if b.opts.apiKey != "" {
		sep := "?"
		if strings.Contains(endpoint, "?") {
			sep = "&"
		}
		fullURL += sep + "key=" + url.QueryEscape(b.opts.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set(requestIDHeader, requestID)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 8192))
		herr := &httpError{
			StatusCode: resp.StatusCode,
			Body:       string(data),
			RetryAfter: retryAfterSeconds(resp.Header.Get("Retry-After")),
		}
		var envelope apiErrorResponse
		if json.Unmarshal(data, &envelope) == nil && envelope.Error.Message != "" {
			herr.API = envelope.Error
		}
		return nil, herr
	}
	return resp.Body, nil
}

// retryAfterSeconds parses a Retry-After header value, either delta-seconds or
// an HTTP date. Absent or unparseable values yield zero.
func retryAfterSeconds(value string) int64 {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return int64(secs)
	}
	if when, err := http.ParseTime(value); err == nil {
		if d := time.Until(when); d > 0 {
			return int64(d / time.Second)
		}
	}
	return 0
}

// sseStream decodes server-sent-event framed chunks off a response body. Each
// data line carries one complete JSON chunk; a [DONE] sentinel or body close
// ends the stream.
type sseStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
}

func newSSEStream(body io.ReadCloser) *sseStream {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &sseStream{body: body, scanner: scanner}
}

func (s *sseStream) Recv() (*generateResponse, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data:") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if line == "[DONE]" {
			return nil, io.EOF
		}
		var chunk generateResponse
		if err := json.Unmarshal([]byte(line), &chunk); err != nil {
			return nil, &httpError{StatusCode: 0, Body: "decode stream chunk: " + err.Error()}
		}
		return &chunk, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (s *sseStream) Close() error {
	return s.body.Close()
}
