package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/nimiq-community/go-nimiq-rpc/libs/log"
	"github.com/nimiq-community/go-nimiq-rpc/rpc/jsonrpc/types"
	"github.com/nimiq-community/go-nimiq-rpc/version"
)

const (
	protoHTTP  = "http"
	protoHTTPS = "https"
	protoTCP   = "tcp"
	protoUNIX  = "unix"
)

var userAgent = "go-nimiq-rpc/" + version.Version

//-------------------------------------------------------------

// Parsed URL structure
type parsedURL struct {
	url.URL

	isUnixSocket bool
}

// Parse URL and set defaults
func newParsedURL(remoteAddr string) (*parsedURL, error) {
	if remoteAddr == "" {
		return nil, errors.New("empty remote address")
	}

	u, err := url.Parse(remoteAddr)
	if err != nil {
		return nil, err
	}

	// default to tcp if nothing specified
	if u.Scheme == "" {
		u.Scheme = protoTCP
	}

	pu := &parsedURL{
		URL:          *u,
		isUnixSocket: false,
	}

	if u.Scheme == protoUNIX {
		pu.isUnixSocket = true
	}

	return pu, nil
}

// Change protocol to HTTP for unknown protocols and TCP protocol - useful for RPC connections
func (u *parsedURL) SetDefaultSchemeHTTP() {
	// protocol to use for http operations, to support both http and https
	switch u.Scheme {
	case protoHTTP, protoHTTPS:
		// known protocols not changed
	default:
		// default to http for unknown protocols (ex. tcp)
		u.Scheme = protoHTTP
	}
}

// Get full address without the protocol - useful for Dialer connections
func (u parsedURL) GetHostWithPath() string {
	// Remove protocol, userinfo and # fragment, assume opaque is empty
	return u.Host + u.EscapedPath()
}

// Get a trimmed address - useful for WS connections
func (u parsedURL) GetTrimmedHostWithPath() string {
	// if it's not an unix socket we return the normal URL
	if !u.isUnixSocket {
		return u.GetHostWithPath()
	}
	// if it's a unix socket we replace the host slashes with a period
	// this is because otherwise the http.Client would think that the
	// domain is invalid.
	return strings.ReplaceAll(u.GetHostWithPath(), "/", ".")
}

// GetDialAddress returns the endpoint to dial for the parsed URL
func (u parsedURL) GetDialAddress() string {
	// if it's not a unix socket we return the host, example: localhost:8648
	if !u.isUnixSocket {
		return u.Host
	}
	// otherwise we return the path of the unix socket, ex /tmp/socket
	return u.GetHostWithPath()
}

// Get a trimmed address with protocol - useful as address in RPC connections
func (u parsedURL) GetTrimmedURL() string {
	return u.Scheme + "://" + u.GetTrimmedHostWithPath()
}

//-------------------------------------------------------------

// Caller implementers can facilitate calling the JSON-RPC endpoint.
type Caller interface {
	Call(ctx context.Context, method string, params []interface{}, result interface{}) (interface{}, error)
}

//-------------------------------------------------------------

// HTTPStatusError is returned when the node answers with a non-2xx status
// and the body is not a JSON-RPC error object (e.g. 401 on bad credentials).
type HTTPStatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected HTTP status %s", e.Status)
	}
	return fmt.Sprintf("unexpected HTTP status %s: %s", e.Status, bytes.TrimSpace(e.Body))
}

//-------------------------------------------------------------

// Client is a JSON-RPC client, which sends POST HTTP requests to the
// remote server.
//
// Client is safe for concurrent use by multiple goroutines.
type Client struct {
	address  string
	username string
	password string
	headers  http.Header

	client  *http.Client
	logger  log.Logger
	metrics *Metrics
	limiter *rate.Limiter

	mtx       sync.Mutex
	nextReqID int
}

var _ Caller = (*Client)(nil)
var _ Caller = (*RequestBatch)(nil)

// Option sets an optional parameter on the Client.
type Option func(*Client)

// WithCredentials sets the basic-auth credentials sent with every request.
// They take precedence over userinfo embedded in the remote URL.
func WithCredentials(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Add(key, value) }
}

// WithLogger sets the logger used to trace requests.
func WithLogger(logger log.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMetrics sets the metrics recorded for each call.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) { c.metrics = metrics }
}

// WithRateLimit limits outgoing HTTP requests to rps per second with the
// given burst. A non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New returns a Client pointed at the given address.
// An error is returned on invalid remote.
func New(remote string, opts ...Option) (*Client, error) {
	httpClient, err := DefaultHTTPClient(remote)
	if err != nil {
		return nil, err
	}
	return NewWithHTTPClient(remote, httpClient, opts...)
}

// NewWithHTTPClient returns a Client pointed at the given address using a
// custom http client. An error is returned on invalid remote. The function
// panics when client is nil.
func NewWithHTTPClient(remote string, c *http.Client, opts ...Option) (*Client, error) {
	if c == nil {
		panic("nil http.Client provided")
	}

	parsedURL, err := newParsedURL(remote)
	if err != nil {
		return nil, fmt.Errorf("invalid remote %s: %w", remote, err)
	}

	parsedURL.SetDefaultSchemeHTTP()

	address := parsedURL.GetTrimmedURL()
	username := parsedURL.User.Username()
	password, _ := parsedURL.User.Password()

	rpcClient := &Client{
		address:  address,
		username: username,
		password: password,
		headers:  make(http.Header),
		client:   c,
		logger:   log.NewNopLogger(),
		metrics:  NopMetrics(),
	}
	for _, opt := range opts {
		opt(rpcClient)
	}

	return rpcClient, nil
}

// Remote returns the address requests are posted to, without credentials.
func (c *Client) Remote() string {
	return c.address
}

// Call issues a POST HTTP request. Requests are JSON encoded. Params are sent
// positionally. The response's result is decoded into result unless result is
// nil or the node answered null.
func (c *Client) Call(
	ctx context.Context,
	method string,
	params []interface{},
	result interface{},
) (interface{}, error) {
	id := c.nextRequestID()

	request, err := types.ParamsToRequest(id, method, params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params: %w", err)
	}

	requestBytes, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()
	c.metrics.Requests.With("method", method).Add(1)

	res, err := c.call(ctx, requestBytes, id, result)

	elapsed := time.Since(start)
	c.metrics.RequestDuration.With("method", method).Observe(elapsed.Seconds())
	if err != nil {
		c.metrics.Errors.With("method", method).Add(1)
		c.logger.Debug("rpc call failed", "method", method, "id", id, "duration", elapsed, "err", err)
		return nil, err
	}

	c.logger.Debug("rpc call", "method", method, "id", id, "duration", elapsed)
	return res, nil
}

func (c *Client) call(ctx context.Context, requestBytes []byte, id types.JSONRPCIntID, result interface{}) (interface{}, error) {
	httpResponse, responseBytes, err := c.post(ctx, requestBytes)
	if err != nil {
		return nil, err
	}

	if !isSuccess(httpResponse) {
		return nil, statusError(httpResponse, responseBytes)
	}

	res, err := unmarshalResponseBytes(responseBytes, id, result)
	if err != nil {
		return nil, fmt.Errorf("%s. %w", getHTTPRespErrPrefix(httpResponse), err)
	}
	return res, nil
}

// post sends the body to the remote and reads the whole response.
func (c *Client) post(ctx context.Context, body []byte) (*http.Response, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.address, bytes.NewReader(body))
	if err != nil {
		return nil, nil, fmt.Errorf("request setup failed: %w", err)
	}

	for k, vs := range c.headers {
		for _, v := range vs {
			httpRequest.Header.Add(k, v)
		}
	}
	httpRequest.Header.Set("Content-Type", "application/json")
	if httpRequest.Header.Get("User-Agent") == "" {
		httpRequest.Header.Set("User-Agent", userAgent)
	}

	if c.username != "" || c.password != "" {
		httpRequest.SetBasicAuth(c.username, c.password)
	}

	httpResponse, err := c.client.Do(httpRequest)
	if err != nil {
		return nil, nil, fmt.Errorf("post failed: %w", err)
	}
	defer httpResponse.Body.Close()

	responseBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%s. Failed to read response body: %w", getHTTPRespErrPrefix(httpResponse), err)
	}

	return httpResponse, responseBytes, nil
}

// NewRequestBatch starts a batch of requests for this client.
func (c *Client) NewRequestBatch() *RequestBatch {
	return &RequestBatch{
		requests: make([]*jsonRPCBufferedRequest, 0),
		client:   c,
	}
}

func (c *Client) sendBatch(ctx context.Context, requests []*jsonRPCBufferedRequest) ([]interface{}, error) {
	if len(requests) == 0 {
		return []interface{}{}, nil
	}

	reqs := make([]types.RPCRequest, 0, len(requests))
	results := make([]interface{}, 0, len(requests))
	for _, req := range requests {
		reqs = append(reqs, req.request)
		results = append(results, req.result)
	}

	// serialize the array of requests into a single JSON object
	requestBytes, err := json.Marshal(reqs)
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}

	c.metrics.Requests.With("method", batchMethod).Add(1)
	start := time.Now()
	defer func() {
		c.metrics.RequestDuration.With("method", batchMethod).Observe(time.Since(start).Seconds())
	}()

	httpResponse, responseBytes, err := c.post(ctx, requestBytes)
	if err != nil {
		c.metrics.Errors.With("method", batchMethod).Add(1)
		return nil, err
	}

	if !isSuccess(httpResponse) {
		c.metrics.Errors.With("method", batchMethod).Add(1)
		return nil, statusError(httpResponse, responseBytes)
	}

	// collect ids to check responses IDs in unmarshalResponseBytesArray
	ids := make([]types.JSONRPCIntID, len(requests))
	for i, req := range requests {
		ids[i] = req.request.ID.(types.JSONRPCIntID)
	}

	res, err := unmarshalResponseBytesArray(responseBytes, ids, results)
	if err != nil {
		c.metrics.Errors.With("method", batchMethod).Add(1)
		return nil, err
	}
	c.logger.Debug("rpc batch", "size", len(requests), "duration", time.Since(start))
	return res, nil
}

func (c *Client) nextRequestID() types.JSONRPCIntID {
	c.mtx.Lock()
	id := c.nextReqID
	c.nextReqID++
	c.mtx.Unlock()
	return types.JSONRPCIntID(id)
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// statusError prefers a JSON-RPC error carried in a non-2xx body over the
// bare HTTP status.
func statusError(resp *http.Response, body []byte) error {
	response := &types.RPCResponse{}
	if err := json.Unmarshal(body, response); err == nil && response.Error != nil {
		return response.Error
	}
	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       body,
	}
}

func getHTTPRespErrPrefix(resp *http.Response) string {
	return fmt.Sprintf("error in json rpc client, with http response metadata: (Status: %s, Protocol %s)", resp.Status, resp.Proto)
}

//-------------------------------------------------------------

// jsonRPCBufferedRequest encapsulates a single buffered request, as well as its
// anticipated response structure.
type jsonRPCBufferedRequest struct {
	request types.RPCRequest
	result  interface{} // The result will be deserialized into this object.
}

// RequestBatch allows us to buffer multiple request/response structures
// into a single batch request. Note that this batch acts like a FIFO queue, and
// is thread-safe.
type RequestBatch struct {
	client *Client

	mtx      sync.Mutex
	requests []*jsonRPCBufferedRequest
}

// Count returns the number of enqueued requests waiting to be sent.
func (b *RequestBatch) Count() int {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return len(b.requests)
}

func (b *RequestBatch) enqueue(req *jsonRPCBufferedRequest) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	b.requests = append(b.requests, req)
}

// Clear empties out the request batch.
func (b *RequestBatch) Clear() int {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.clear()
}

func (b *RequestBatch) clear() int {
	count := len(b.requests)
	b.requests = make([]*jsonRPCBufferedRequest, 0)
	return count
}

// Send will attempt to send the current batch of enqueued requests, and then
// will clear out the requests once done. On success, this returns the
// deserialized list of results from each of the enqueued requests.
func (b *RequestBatch) Send(ctx context.Context) ([]interface{}, error) {
	b.mtx.Lock()
	defer func() {
		b.clear()
		b.mtx.Unlock()
	}()
	return b.client.sendBatch(ctx, b.requests)
}

// Call enqueues a request to call the given RPC method with the specified
// parameters, in the same way that the `Client.Call` function would.
func (b *RequestBatch) Call(
	_ context.Context,
	method string,
	params []interface{},
	result interface{},
) (interface{}, error) {
	id := b.client.nextRequestID()
	request, err := types.ParamsToRequest(id, method, params)
	if err != nil {
		return nil, err
	}
	b.enqueue(&jsonRPCBufferedRequest{request: request, result: result})
	return result, nil
}

//-------------------------------------------------------------

func makeHTTPDialer(remoteAddr string) (func(string, string) (net.Conn, error), error) {
	u, err := newParsedURL(remoteAddr)
	if err != nil {
		return nil, err
	}

	protocol := u.Scheme

	// accept http(s) as an alias for tcp
	switch protocol {
	case protoHTTP, protoHTTPS:
		protocol = protoTCP
	}

	dialFn := func(proto, addr string) (net.Conn, error) {
		return net.Dial(protocol, u.GetDialAddress())
	}

	return dialFn, nil
}

// DefaultHTTPClient is used to create an http client with some default parameters.
// We overwrite the http.Client.Dial so we can do http over tcp or unix.
// remoteAddr should be fully featured (eg. with tcp:// or unix://).
// An error will be returned in case of invalid remoteAddr.
func DefaultHTTPClient(remoteAddr string) (*http.Client, error) {
	dialFn, err := makeHTTPDialer(remoteAddr)
	if err != nil {
		return nil, err
	}

	client := &http.Client{
		Transport: &http.Transport{
			// Set to true to prevent GZIP-bomb DoS attacks
			DisableCompression: true,
			Dial:               dialFn,
			Proxy:              http.ProxyFromEnvironment,
		},
	}

	return client, nil
}
