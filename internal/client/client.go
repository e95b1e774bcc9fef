package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	api "github.com/solarbi/savvy-planner/api/v1"
	apiclient "github.com/solarbi/savvy-planner/internal/api/client"
	"github.com/solarbi/savvy-planner/pkg/requestid"
)

const uploadPath = "/upload_assumption_file/form"

// Client is the generated api client plus the upload form, which the api
// document does not describe.
type Client struct {
	*apiclient.ClientWithResponses

	server     *url.URL
	httpClient *http.Client
	token      string
}

type Option func(c *Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sends token as a bearer token on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func New(server string, opts ...Option) (*Client, error) {
	u, err := url.Parse(server)
	if err != nil {
		return nil, fmt.Errorf("invalid server url %q: %w", server, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: scheme and host are required", server)
	}

	c := &Client{server: u, httpClient: &http.Client{}}
	for _, o := range opts {
		o(c)
	}

	c.ClientWithResponses, err = apiclient.NewClientWithResponses(server,
		apiclient.WithHTTPClient(c.httpClient),
		apiclient.WithRequestEditorFn(c.editRequest),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api client: %w", err)
	}
	return c, nil
}

func (c *Client) editRequest(ctx context.Context, req *http.Request) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set(requestid.Header, requestid.Generate())
	return nil
}

// ResponseError is returned for any non 2xx answer.
type ResponseError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *ResponseError) Error() string {
	if e.RequestID != "" {
		return fmt.Sprintf("%d: %s (request id %s)", e.StatusCode, e.Message, e.RequestID)
	}
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewResponseError reads the api Error in body. Bodies of another shape fall
// back to the status text.
func NewResponseError(resp *http.Response, body []byte) *ResponseError {
	re := &ResponseError{StatusCode: resp.StatusCode, RequestID: resp.Header.Get(requestid.Header)}

	var reply api.Error
	if err := json.Unmarshal(body, &reply); err == nil && reply.Message != "" {
		re.Message = reply.Message
		if reply.RequestId != nil {
			re.RequestID = *reply.RequestId
		}
	} else {
		re.Message = http.StatusText(resp.StatusCode)
	}
	return re
}

// IsNotFound reports whether err is a 404 answer.
func IsNotFound(err error) bool {
	var re *ResponseError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}

// UploadAssumption posts the workbook at path through the upload form and
// asks for a json answer instead of the redirect browsers get.
func (c *Client) UploadAssumption(ctx context.Context, name, path string) (*api.UploadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening assumption file: %w", err)
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		err := writeUploadForm(mw, name, filepath.Base(path), f)
		_ = pw.CloseWithError(err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.server.JoinPath(uploadPath).String(), pr)
	if err != nil {
		_ = pr.Close()
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")
	if err := c.editRequest(ctx, req); err != nil {
		_ = pr.Close()
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading upload answer: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewResponseError(resp, body)
	}

	var result api.UploadResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding upload answer: %w", err)
	}
	return &result, nil
}

func writeUploadForm(mw *multipart.Writer, name, filename string, r io.Reader) error {
	if err := mw.WriteField("name", name); err != nil {
		return err
	}
	part, err := mw.CreateFormFile("excel_file", filename)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, r); err != nil {
		return err
	}
	return mw.Close()
}
