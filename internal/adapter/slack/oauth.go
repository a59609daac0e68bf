package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"goaltracker/internal/core/ports"
)

const defaultTokenEndpoint = "https://slack.com/api/oauth.v2.access"

// OAuthClient exchanges authorization codes at Slack's token endpoint.
type OAuthClient struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Endpoint     string
	HTTPClient   *http.Client
}

func NewOAuthClient(clientID, clientSecret, redirectURL string) *OAuthClient {
	return &OAuthClient{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     defaultTokenEndpoint,
		HTTPClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

var _ ports.SlackTokenExchanger = (*OAuthClient)(nil)

type oauthResponse struct {
	OK          bool   `json:"ok"`
	Error       string `json:"error"`
	AccessToken string `json:"access_token"`
	Team        struct {
		ID string `json:"id"`
	} `json:"team"`
	AuthedUser struct {
		ID          string `json:"id"`
		AccessToken string `json:"access_token"`
	} `json:"authed_user"`
}

func (c *OAuthClient) Exchange(ctx context.Context, code string) (ports.SlackTokenResult, error) {
	if c.ClientID == "" || c.ClientSecret == "" {
		return ports.SlackTokenResult{}, fmt.Errorf("slack client credentials not configured")
	}

	form := url.Values{}
	form.Set("client_id", c.ClientID)
	form.Set("client_secret", c.ClientSecret)
	form.Set("code", code)
	if c.RedirectURL != "" {
		form.Set("redirect_uri", c.RedirectURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return ports.SlackTokenResult{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return ports.SlackTokenResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ports.SlackTokenResult{}, fmt.Errorf("slack token endpoint returned %d", resp.StatusCode)
	}

	var body oauthResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.SlackTokenResult{}, err
	}
	if !body.OK {
		return ports.SlackTokenResult{}, fmt.Errorf("slack token exchange failed: %s", body.Error)
	}

	return ports.SlackTokenResult{
		AccessToken:     body.AccessToken,
		TeamID:          body.Team.ID,
		AuthedUserID:    body.AuthedUser.ID,
		AuthedUserToken: body.AuthedUser.AccessToken,
	}, nil
}
