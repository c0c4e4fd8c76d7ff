// internal/places/upstream.go
package places

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"net/url"
	"strings"
	"time"

	"restaurant-finder/internal/common/errors"
	commonhttp "restaurant-finder/internal/common/http"
	"restaurant-finder/internal/common/metrics"
	"restaurant-finder/internal/models"
)

const (
	operationSearch  = "text_search"
	operationDetails = "details"
)

type outcomeKind int

const (
	outcomeOK outcomeKind = iota
	outcomeNotFound
	outcomeFailed
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeOK:
		return "ok"
	case outcomeNotFound:
		return "not_found"
	default:
		return "failed"
	}
}

// outcome is what an upstream call produced: a value, a confirmed absence, or a failure with its reason.
type outcome[T any] struct {
	kind   outcomeKind
	value  T
	reason *errors.StandardError
}

func succeeded[T any](v T) outcome[T] {
	return outcome[T]{kind: outcomeOK, value: v}
}

func absent[T any]() outcome[T] {
	return outcome[T]{kind: outcomeNotFound}
}

func failed[T any](reason *errors.StandardError) outcome[T] {
	return outcome[T]{kind: outcomeFailed, reason: reason}
}

type upstream struct {
	config *Config
	http   *commonhttp.Client
}

func (u *upstream) textSearch(ctx context.Context, query string) outcome[[]models.SearchResult] {
	params := url.Values{}
	params.Set("query", query)
	params.Set("type", "restaurant")
	params.Set("key", u.config.APIKey)
	params.Set("language", u.config.Language)

	var resp models.TextSearchResponse
	if reason := u.call(ctx, operationSearch, u.config.TextSearchURL, params, &resp); reason != nil {
		return record(operationSearch, failed[[]models.SearchResult](reason))
	}
	if resp.Status != models.PlacesStatusOK {
		return record(operationSearch, failed[[]models.SearchResult](
			errors.NewUpstreamStatusError(operationSearch, resp.Status, errorMessage(resp.ErrorMessage))))
	}

	results := make([]models.SearchResult, 0, len(resp.Results))
	for _, place := range resp.Results {
		results = append(results, models.SearchResult{
			PlaceID: place.PlaceID,
			Name:    place.Name,
			Address: place.FormattedAddress,
			Rating:  place.Rating,
		})
	}
	return record(operationSearch, succeeded(results))
}

func (u *upstream) details(ctx context.Context, placeID string) outcome[*models.PlacePayload] {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", DetailsFields)
	params.Set("key", u.config.APIKey)
	params.Set("language", u.config.Language)

	var resp models.DetailsResponse
	if reason := u.call(ctx, operationDetails, u.config.DetailsURL, params, &resp); reason != nil {
		return record(operationDetails, failed[*models.PlacePayload](reason))
	}
	if resp.Status != models.PlacesStatusOK {
		return record(operationDetails, failed[*models.PlacePayload](
			errors.NewUpstreamStatusError(operationDetails, resp.Status, errorMessage(resp.ErrorMessage))))
	}
	if isEmptyResult(resp.Result) {
		return record(operationDetails, absent[*models.PlacePayload]())
	}

	var place models.PlacePayload
	if err := json.Unmarshal(resp.Result, &place); err != nil {
		return record(operationDetails, failed[*models.PlacePayload](
			errors.NewUpstreamDecodeFailedError(operationDetails, err)))
	}
	return record(operationDetails, succeeded(&place))
}

func (u *upstream) call(ctx context.Context, operation, endpoint string, params url.Values, out interface{}) *errors.StandardError {
	start := time.Now()
	err := u.http.GetJSON(ctx, endpoint, params, out)
	metrics.UpstreamDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err == nil {
		return nil
	}

	var decodeErr *commonhttp.DecodeError
	if stderrors.As(err, &decodeErr) {
		return errors.NewUpstreamDecodeFailedError(operation, err)
	}
	return errors.NewUpstreamUnavailableError(operation, redactKey(err, u.config.APIKey))
}

func record[T any](operation string, o outcome[T]) outcome[T] {
	metrics.UpstreamRequests.WithLabelValues(operation, o.kind.String()).Inc()
	return o
}

func isEmptyResult(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err == nil && len(obj) == 0 {
		return true
	}
	return false
}

func errorMessage(msg string) string {
	if msg == "" {
		return "Unknown error"
	}
	return msg
}

// redactKey keeps the API key out of logged transport errors, which quote the request URL.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	msg := err.Error()
	redacted := strings.ReplaceAll(msg, url.QueryEscape(key), "REDACTED")
	if redacted == msg {
		return err
	}
	return stderrors.New(redacted)
}
