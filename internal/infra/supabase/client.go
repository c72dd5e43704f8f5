// Package supabase speaks the PostgREST dialect of the record store: tables
// addressed by path, equality and in-set predicates as query parameters, and
// representation-returning writes.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"lardocepet-api/internal/infra"
	"lardocepet-api/internal/pkg/config"
)

type Client struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

func NewClient(cfg config.SupabaseConfig) *Client {
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: cfg.RestURL(),
		apiKey:  cfg.APIKey,
	}
}

// Filter is a PostgREST predicate on an indexed column.
type Filter struct {
	Field string
	Value string // already in PostgREST operator form, e.g. "eq.3"
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Value: fmt.Sprintf("eq.%v", value)}
}

func In(field string, values ...string) Filter {
	return Filter{Field: field, Value: "in.(" + strings.Join(values, ",") + ")"}
}

// Select runs a filtered GET against table and decodes the result collection
// into dest (a pointer to a slice). Row order is the store's order.
func (c *Client) Select(ctx context.Context, table string, filters []Filter, dest any) error {
	resp, err := c.do(ctx, http.MethodGet, table, filters, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return statusError(table, resp)
	}
	return decodeBody(table, resp.Body, dest)
}

// Insert POSTs body to table and decodes the returned representation into
// dest (a pointer to a slice; PostgREST always returns a collection).
func (c *Client) Insert(ctx context.Context, table string, body any, dest any) error {
	resp, err := c.do(ctx, http.MethodPost, table, nil, body, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		// ok
	case http.StatusConflict:
		return infra.WrapGatewayErr(infra.KindDuplicateKey, "insert conflicts with existing record in "+table, nil)
	default:
		return statusError(table, resp)
	}
	if dest == nil {
		return nil
	}
	return decodeBody(table, resp.Body, dest)
}

// Update PATCHes the rows matching filters and decodes the updated
// representation into dest.
func (c *Client) Update(ctx context.Context, table string, filters []Filter, body any, dest any) error {
	resp, err := c.do(ctx, http.MethodPatch, table, filters, body, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		// ok
	case http.StatusConflict:
		return infra.WrapGatewayErr(infra.KindDuplicateKey, "update conflicts with existing record in "+table, nil)
	default:
		return statusError(table, resp)
	}
	if dest == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return decodeBody(table, resp.Body, dest)
}

// Delete removes the rows matching filters.
func (c *Client) Delete(ctx context.Context, table string, filters []Filter) error {
	resp, err := c.do(ctx, http.MethodDelete, table, filters, nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return statusError(table, resp)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, table string, filters []Filter, body any, extraHeaders map[string]string) (*http.Response, error) {
	endpoint := c.baseURL + "/" + table
	if len(filters) > 0 {
		parts := make([]string, len(filters))
		for i, f := range filters {
			parts[i] = f.Field + "=" + url.QueryEscape(f.Value)
		}
		endpoint += "?" + strings.Join(parts, "&")
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, infra.WrapGatewayErr(infra.KindBadResponse, "encode request body for "+table, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, infra.WrapGatewayErr(infra.KindUpstream, "build request for "+table, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// Timeouts and refused connections land here.
		return nil, infra.WrapGatewayErr(infra.KindUpstream, "record store unreachable for "+table, err)
	}
	return resp, nil
}

func statusError(table string, resp *http.Response) error {
	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := fmt.Sprintf("record store returned %d for %s", resp.StatusCode, table)
	if len(detail) > 0 {
		msg += ": " + string(detail)
	}
	return infra.WrapGatewayErr(infra.KindUpstream, msg, nil)
}

func decodeBody(table string, body io.Reader, dest any) error {
	if err := json.NewDecoder(body).Decode(dest); err != nil {
		return infra.WrapGatewayErr(infra.KindBadResponse, "malformed response from "+table, err)
	}
	return nil
}
