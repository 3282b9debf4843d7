package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient calls a running API in tests and decodes JSON bodies into dest
// on success and errDest otherwise.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(ctx context.Context, endpoint string, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodGet, endpoint, "", http.NoBody, dest, errDest)
}

func (a APIClient) Post(ctx context.Context, endpoint string, request, dest, errDest any) (*http.Response, error) {
	b, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return a.do(ctx, http.MethodPost, endpoint, "application/json", bytes.NewReader(b), dest, errDest)
}

func (a APIClient) Delete(ctx context.Context, endpoint string, dest, errDest any) (*http.Response, error) {
	return a.do(ctx, http.MethodDelete, endpoint, "", http.NoBody, dest, errDest)
}

// Upload posts content as the multipart file field.
func (a APIClient) Upload(
	ctx context.Context,
	endpoint, field, fileName string,
	content []byte,
	dest, errDest any,
) (*http.Response, error) {
	var body bytes.Buffer

	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile(field, fileName)
	if err != nil {
		return nil, fmt.Errorf("mw.CreateFormFile: %w", err)
	}

	if _, err = part.Write(content); err != nil {
		return nil, fmt.Errorf("part.Write: %w", err)
	}

	if err = mw.Close(); err != nil {
		return nil, fmt.Errorf("mw.Close: %w", err)
	}

	return a.do(ctx, http.MethodPost, endpoint, mw.FormDataContentType(), &body, dest, errDest)
}

// Download returns the raw body of a GET request.
func (a APIClient) Download(ctx context.Context, endpoint string) (*http.Response, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+endpoint, http.NoBody)
	if err != nil {
		return nil, nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("io.ReadAll: %w", err)
	}

	return resp, body, nil
}

func (a APIClient) do(
	ctx context.Context,
	method, endpoint, contentType string,
	payload io.Reader,
	dest, errDest any,
) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	if err = parseResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("parseResponse: %w", err)
	}

	return resp, nil
}

func parseResponse(r *http.Response, dest, errDest any) error {
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices {
		if dest == nil {
			return nil
		}

		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}

		return nil
	}

	if errDest != nil {
		if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Decode(err destination): %w", err)
		}
	}

	return nil
}
