package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
)

// ReceivedRequest is one call the fake backend served.
type ReceivedRequest struct {
	Body    map[string]any
	RawBody []byte
	Query   url.Values
	Headers http.Header
}

type stubbedResponse struct {
	status      int
	contentType string
	body        []byte
}

// ApiMock stands in for the expense backend. Responses are keyed by method
// and path; a "*" path segment matches any value.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	responses map[string]map[int]stubbedResponse
	defaults  map[string]stubbedResponse
	requests  map[string][]ReceivedRequest
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		responses: map[string]map[int]stubbedResponse{},
		defaults:  map[string]stubbedResponse{},
		requests:  map[string][]ReceivedRequest{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var decoded map[string]any
	_ = json.Unmarshal(body, &decoded)
	if decoded == nil {
		decoded = map[string]any{}
	}

	a.mu.Lock()
	key := r.Method + r.URL.Path
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], ReceivedRequest{
		Body:    decoded,
		RawBody: body,
		Query:   r.URL.Query(),
		Headers: r.Header.Clone(),
	})
	resp := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	if resp.contentType != "" {
		w.Header().Set("Content-Type", resp.contentType)
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// SetResponse stubs a JSON response. Index -1 sets the default for every call.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response any) {
	body, _ := json.Marshal(response)
	a.set(index, method, path, stubbedResponse{status: status, contentType: "application/json", body: body})
}

// SetRawResponse stubs a non-JSON response such as a CSV export or a chart image.
func (a *ApiMock) SetRawResponse(index int, method, path string, status int, contentType string, body []byte) {
	a.set(index, method, path, stubbedResponse{status: status, contentType: contentType, body: body})
}

func (a *ApiMock) set(index int, method, path string, resp stubbedResponse) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if index == -1 {
		a.defaults[key] = resp
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]stubbedResponse{}
	}
	a.responses[key][index] = resp
}

// Requests returns the calls received on every path matching method and path.
func (a *ApiMock) Requests(method, path string) []ReceivedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []ReceivedRequest
	for key, reqs := range a.requests {
		if keyMatches(key, method, path) {
			out = append(out, reqs...)
		}
	}
	return out
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	reqs := a.Requests(method, path)
	if index < 0 || index >= len(reqs) {
		return nil
	}
	return reqs[index].Body
}

func (a *ApiMock) GetRequestQueries(method, path string, index int) url.Values {
	reqs := a.Requests(method, path)
	if index < 0 || index >= len(reqs) {
		return nil
	}
	return reqs[index].Query
}

// ClearResponses drops stubs and recorded calls on every path starting with method+path.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prefix := method + path
	for key := range a.responses {
		if strings.HasPrefix(key, prefix) {
			delete(a.responses, key)
		}
	}
	for key := range a.defaults {
		if strings.HasPrefix(key, prefix) {
			delete(a.defaults, key)
		}
	}
	for key := range a.requests {
		if strings.HasPrefix(key, prefix) {
			delete(a.requests, key)
		}
	}
}

func (a *ApiMock) responseFor(method, path string, index int) stubbedResponse {
	for key, byIndex := range a.responses {
		if keyMatches(key, method, path) {
			if resp, ok := byIndex[index]; ok {
				return resp
			}
		}
	}
	for key, resp := range a.defaults {
		if keyMatches(key, method, path) {
			return resp
		}
	}
	return stubbedResponse{status: http.StatusOK, contentType: "application/json", body: []byte("{}")}
}

func keyMatches(key, method, path string) bool {
	if !strings.HasPrefix(key, method+"/") {
		return false
	}
	return matchPath(strings.TrimPrefix(key, method), path)
}

func matchPath(pattern string, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && pathParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}

	return true
}
