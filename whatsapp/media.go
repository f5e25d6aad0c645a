package whatsapp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// GetMediaURL resolves the temporary download URL of a received media
// object. The URL expires after a few minutes and must be fetched with
// bearer auth (see DownloadMedia). Returns an empty URL on any failure.
func (c *Client) GetMediaURL(mediaID string) (string, error) {
	respBody, err := c.sendGet(c.mediaURL(mediaID))
	if err != nil {
		log.Error().Err(err).Str("media_id", mediaID).Msg("Error resolving media URL")
		return "", err
	}

	var media mediaURLResponse
	if err := json.Unmarshal(respBody, &media); err != nil {
		log.Error().Err(err).Str("media_id", mediaID).Msg("Error parsing media URL response")
		return "", fmt.Errorf("failed to unmarshal media response: %w", err)
	}

	return media.URL, nil
}

// DownloadMedia fetches binary media content from a URL returned by
// GetMediaURL, authenticating with the bearer token.
func (c *Client) DownloadMedia(url string) ([]byte, string, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error downloading media")
		return nil, "", fmt.Errorf("failed to download media: %w", err)
	}
	defer resp.Body.Close()

	if !c.isSuccessStatusCode(resp.StatusCode) {
		log.Error().Int("status", resp.StatusCode).Msg("Media download rejected")
		return nil, "", fmt.Errorf("media download failed: HTTP %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read media body: %w", err)
	}

	return data, resp.Header.Get("Content-Type"), nil
}

func (c *Client) sendGet(url string) ([]byte, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if !c.isSuccessStatusCode(resp.StatusCode) {
		return nil, fmt.Errorf("%s", remoteErrorMessage(resp.StatusCode, responseBody))
	}

	return responseBody, nil
}
