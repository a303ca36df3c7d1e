package gofile

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// GetServers returns the available upload servers
func (c *Client) GetServers(ctx context.Context) (*ServerList, error) {
	return call[ServerList](ctx, c, "get servers", http.MethodGet, c.apiURL+"/servers", nil, nil)
}

// CreateFolder creates a folder under the given parent folder
func (c *Client) CreateFolder(ctx context.Context, parentFolderID, name string) (*Item, error) {
	body := createFolderRequest{
		ParentFolderID: parentFolderID,
		FolderName:     name,
	}
	return call[Item](ctx, c, "create folder", http.MethodPost, c.apiURL+"/contents/createFolder", nil, body)
}

// UpdateContent sets one attribute of a content item. Valid attributes are
// name, description, tags, public, expiry and password; the accepted value
// shape depends on the attribute, so it is passed through untyped.
func (c *Client) UpdateContent(ctx context.Context, contentID, attribute string, value any) (*Item, error) {
	body := updateContentRequest{
		Attribute: attribute,
		Value:     value,
	}
	endpoint := fmt.Sprintf("%s/contents/%s/update", c.apiURL, contentID)
	return call[Item](ctx, c, "update content", http.MethodPut, endpoint, nil, body)
}

// DeleteContents deletes the given content items. The ids travel as a single
// comma-joined string, which is what the API expects.
func (c *Client) DeleteContents(ctx context.Context, contentIDs []string) (map[string]ContentStatus, error) {
	body := deleteRequest{
		ContentsID: strings.Join(contentIDs, ","),
	}
	result, err := call[map[string]ContentStatus](ctx, c, "delete contents", http.MethodDelete, c.apiURL+"/contents", nil, body)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// GetFolder fetches a folder and its children. The password is only needed
// for password-protected folders and may be empty.
func (c *Client) GetFolder(ctx context.Context, folderID, password string) (*Item, error) {
	var query url.Values
	if password != "" {
		query = url.Values{"password": {password}}
	}
	endpoint := fmt.Sprintf("%s/contents/%s", c.apiURL, folderID)
	return call[Item](ctx, c, "get folder", http.MethodGet, endpoint, query, nil)
}

// Search searches for contents inside a folder
func (c *Client) Search(ctx context.Context, folderID, searched string) (*SearchResult, error) {
	query := url.Values{
		"contentId":      {folderID},
		"searchedString": {searched},
	}
	return call[SearchResult](ctx, c, "search", http.MethodGet, c.apiURL+"/contents/search", query, nil)
}

// CreateDirectLink creates a direct download link for a content item.
// opts may be nil for an unrestricted link.
func (c *Client) CreateDirectLink(ctx context.Context, contentID string, opts *DirectLinkOptions) (*DirectLink, error) {
	if opts == nil {
		opts = &DirectLinkOptions{}
	}
	endpoint := fmt.Sprintf("%s/contents/%s/directlinks", c.apiURL, contentID)
	return call[DirectLink](ctx, c, "create direct link", http.MethodPost, endpoint, nil, opts)
}

// UpdateDirectLink replaces the restrictions of an existing direct link
func (c *Client) UpdateDirectLink(ctx context.Context, contentID, linkID string, opts *DirectLinkOptions) (*DirectLink, error) {
	if opts == nil {
		opts = &DirectLinkOptions{}
	}
	endpoint := fmt.Sprintf("%s/contents/%s/directlinks/%s", c.apiURL, contentID, linkID)
	return call[DirectLink](ctx, c, "update direct link", http.MethodPut, endpoint, nil, opts)
}

// DeleteDirectLink removes a direct link from a content item
func (c *Client) DeleteDirectLink(ctx context.Context, contentID, linkID string) error {
	endpoint := fmt.Sprintf("%s/contents/%s/directlinks/%s", c.apiURL, contentID, linkID)
	_, err := call[struct{}](ctx, c, "delete direct link", http.MethodDelete, endpoint, nil, nil)
	return err
}

// CopyContents copies content items into the destination folder
func (c *Client) CopyContents(ctx context.Context, contentIDs []string, destFolderID string) (map[string]ContentResult, error) {
	body := transferRequest{
		FolderID:   destFolderID,
		ContentsID: strings.Join(contentIDs, ","),
	}
	result, err := call[map[string]ContentResult](ctx, c, "copy contents", http.MethodPost, c.apiURL+"/contents/copy", nil, body)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// MoveContents moves content items into the destination folder
func (c *Client) MoveContents(ctx context.Context, contentIDs []string, destFolderID string) (map[string]ContentResult, error) {
	body := transferRequest{
		FolderID:   destFolderID,
		ContentsID: strings.Join(contentIDs, ","),
	}
	result, err := call[map[string]ContentResult](ctx, c, "move contents", http.MethodPut, c.apiURL+"/contents/move", nil, body)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// ImportContents imports public content items into the account's root folder
func (c *Client) ImportContents(ctx context.Context, contentIDs []string) (map[string]ContentResult, error) {
	body := importRequest{
		ContentsID: strings.Join(contentIDs, ","),
	}
	result, err := call[map[string]ContentResult](ctx, c, "import contents", http.MethodPost, c.apiURL+"/contents/import", nil, body)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

// GetAccountID returns the id of the account owning the configured token
func (c *Client) GetAccountID(ctx context.Context) (string, error) {
	result, err := call[accountID](ctx, c, "get account id", http.MethodGet, c.apiURL+"/accounts/getid", nil, nil)
	if err != nil {
		return "", err
	}
	return result.ID, nil
}

// GetAccount fetches the details of an account
func (c *Client) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s", c.apiURL, accountID)
	return call[Account](ctx, c, "get account", http.MethodGet, endpoint, nil, nil)
}

// ResetToken invalidates the account's API token and returns the replacement.
// The client keeps using its configured token; managing the new one is the
// caller's job.
func (c *Client) ResetToken(ctx context.Context, accountID string) (string, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/resettoken", c.apiURL, accountID)
	result, err := call[string](ctx, c, "reset token", http.MethodPost, endpoint, nil, nil)
	if err != nil {
		return "", err
	}
	return *result, nil
}
