// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package twitter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dghubble/sling"

	"github.com/sociolex/coinage/pkg/types"
)

// UserService provides access to the v2 user endpoints.
type UserService struct {
	sling *sling.Sling
}

func newUserService(base *sling.Sling) *UserService {
	return &UserService{
		sling: base.Path("users/"),
	}
}

// Lookup fetches the profile behind one account ID. cfg supplies the
// optional User-Agent override, as with SearchRecent.
//
// The endpoint reports an unknown ID as HTTP 200 with a top-level
// errors array and no data; Lookup converts that shape into an error
// naming the ID.
func (s *UserService) Lookup(ctx context.Context, id string, cfg types.SearchConfig) (types.User, error) {
	if id == "" {
		return types.User{}, fmt.Errorf("empty user id")
	}

	success := new(userLookupResponse)
	apiError := new(APIError)

	req, err := s.sling.New().Get(id).Request()
	if err != nil {
		return types.User{}, fmt.Errorf("creating user lookup request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}

	resp, err := s.sling.Do(req.WithContext(ctx), success, apiError)
	if rerr := relevantError(err, *apiError); rerr != nil {
		return types.User{}, fmt.Errorf("user %s lookup: %w", id, rerr)
	}
	if resp.StatusCode != http.StatusOK {
		return types.User{}, fmt.Errorf("user %s lookup: API returned HTTP %d", id, resp.StatusCode)
	}
	if len(success.Errors) > 0 {
		detail := success.Errors[0]
		return types.User{}, fmt.Errorf("user %s lookup: %s: %s", id, detail.Title, detail.Detail)
	}
	if success.Data.ID == "" {
		return types.User{}, fmt.Errorf("user %s lookup: response carried no profile", id)
	}

	return types.User{
		ID:       success.Data.ID,
		Name:     success.Data.Name,
		Username: success.Data.Username,
	}, nil
}

// Users lookup API JSON structures.
type userLookupResponse struct {
	Data   apiUser          `json:"data"`
	Errors []apiErrorDetail `json:"errors"`
}

type apiUser struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

// apiErrorDetail is one entry of the partial-error array some v2
// endpoints return inside an otherwise successful response.
type apiErrorDetail struct {
	Value  string `json:"value"`
	Detail string `json:"detail"`
	Title  string `json:"title"`
	Type   string `json:"type"`
}
