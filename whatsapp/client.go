// Package whatsapp is a client for the WhatsApp Cloud API (Meta Graph API).
package whatsapp

import (
	"net/http"
)

// DefaultBaseURL is the production Graph API host.
const DefaultBaseURL = "https://graph.facebook.com"

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(accessToken, baseURL, apiVersion, phoneNumberID string, httpClient http.Client) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := Client{
		config: Config{
			AccessToken:   accessToken,
			BaseURL:       baseURL,
			APIVersion:    apiVersion,
			PhoneNumberID: phoneNumberID,
		},
		httpClient: &httpClient,
	}

	return client
}

func (c *Client) messagesURL() string {
	return c.config.BaseURL + "/" + c.config.APIVersion + "/" + c.config.PhoneNumberID + "/messages"
}

func (c *Client) mediaURL(mediaID string) string {
	return c.config.BaseURL + "/" + c.config.APIVersion + "/" + mediaID
}
