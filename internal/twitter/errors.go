// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package twitter

import "fmt"

// APIError is the problem document v2 endpoints return for failed
// requests, e.g. {"title":"Unauthorized","type":"about:blank",
// "status":401,"detail":"Unauthorized"}.
type APIError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Type   string `json:"type"`
	Status int    `json:"status"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	if e.Detail != "" && e.Detail != e.Title {
		return fmt.Sprintf("twitter: %d %s: %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("twitter: %d %s", e.Status, e.Title)
}

// Empty reports whether the decoded body carried no error information.
func (e APIError) Empty() bool {
	return e.Title == "" && e.Status == 0
}

// relevantError returns the transport-level error if there was one,
// then the decoded API error if the body carried one, otherwise nil.
func relevantError(httpError error, apiError APIError) error {
	if httpError != nil {
		return httpError
	}
	if apiError.Empty() {
		return nil
	}
	return apiError
}
