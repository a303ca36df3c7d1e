package gofile

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// recordedRequest captures what the test server saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

func recordingServer(t *testing.T, response string, requests *[]recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("failed to read request body: %v", err)
		}
		*requests = append(*requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
		})
		w.Write([]byte(response))
	}))
}

func TestGetServers(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"servers":[{"name":"store1","zone":"eu"},{"name":"store4","zone":"na"}]}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	servers, err := client.GetServers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(servers.Servers) != 2 {
		t.Fatalf("expected 2 servers, got %d", len(servers.Servers))
	}
	if servers.Servers[0].Root() != "https://store1.gofile.io" {
		t.Errorf("unexpected server root: %s", servers.Servers[0].Root())
	}
	if requests[0].Method != http.MethodGet || requests[0].Path != "/servers" {
		t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
	}

	// A second lookup is an independent transaction, not a cached result.
	if _, err := client.GetServers(context.Background()); err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if len(requests) != 2 {
		t.Errorf("expected 2 requests on the wire, got %d", len(requests))
	}
}

func TestCreateFolder(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"id":"f1","name":"backups","type":"folder","parentFolder":"root1"}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	item, err := client.CreateFolder(context.Background(), "root1", "backups")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if item.ID != "f1" || !item.IsFolder() {
		t.Errorf("unexpected item: %+v", item)
	}
	if requests[0].Method != http.MethodPost || requests[0].Path != "/contents/createFolder" {
		t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
	}

	var body map[string]any
	if err := json.Unmarshal(requests[0].Body, &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["parentFolderId"] != "root1" || body["folderName"] != "backups" {
		t.Errorf("unexpected body: %s", requests[0].Body)
	}
}

func TestUpdateContent(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"id":"c1","name":"renamed.txt"}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	if _, err := client.UpdateContent(context.Background(), "c1", "name", "renamed.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requests[0].Method != http.MethodPut || requests[0].Path != "/contents/c1/update" {
		t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
	}

	var body map[string]any
	if err := json.Unmarshal(requests[0].Body, &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["attribute"] != "name" || body["attributeValue"] != "renamed.txt" {
		t.Errorf("unexpected body: %s", requests[0].Body)
	}
}

func TestDeleteContentsJoinsIDs(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"a":{"status":"ok"},"b":{"status":"ok"},"c":{"status":"ok"}}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	statuses, err := client.DeleteContents(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(statuses) != 3 {
		t.Errorf("expected 3 statuses, got %d", len(statuses))
	}
	if requests[0].Method != http.MethodDelete || requests[0].Path != "/contents" {
		t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
	}

	// The ids must travel as one comma-joined string, not a JSON array.
	var body map[string]any
	if err := json.Unmarshal(requests[0].Body, &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["contentsId"] != "a,b,c" {
		t.Errorf("expected contentsId 'a,b,c', got %v", body["contentsId"])
	}
}

func TestGetFolderPassword(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantQuery string
	}{
		{name: "with password", password: "s3cret", wantQuery: "password=s3cret"},
		{name: "without password", password: "", wantQuery: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests []recordedRequest
			server := recordingServer(t, `{"status":"ok","data":{"id":"f1","type":"folder"}}`, &requests)
			defer server.Close()

			client := testClient(server, "test-token")
			if _, err := client.GetFolder(context.Background(), "f1", tt.password); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if requests[0].Path != "/contents/f1" {
				t.Errorf("unexpected path: %s", requests[0].Path)
			}
			if requests[0].Query != tt.wantQuery {
				t.Errorf("expected query '%s', got '%s'", tt.wantQuery, requests[0].Query)
			}
		})
	}
}

func TestSearch(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"contents":[{"id":"c9","name":"report.pdf","type":"file"}]}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	result, err := client.Search(context.Background(), "f1", "report")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Contents) != 1 || result.Contents[0].Name != "report.pdf" {
		t.Errorf("unexpected result: %+v", result)
	}
	if requests[0].Path != "/contents/search" {
		t.Errorf("unexpected path: %s", requests[0].Path)
	}
	if !strings.Contains(requests[0].Query, "contentId=f1") || !strings.Contains(requests[0].Query, "searchedString=report") {
		t.Errorf("unexpected query: %s", requests[0].Query)
	}
}

func TestCreateDirectLinkOmitsUnsetFields(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"id":"dl1","directLink":"https://store1.gofile.io/download/direct/dl1/x"}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	link, err := client.CreateDirectLink(context.Background(), "c1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.ID != "dl1" {
		t.Errorf("unexpected link: %+v", link)
	}

	if requests[0].Method != http.MethodPost || requests[0].Path != "/contents/c1/directlinks" {
		t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
	}

	// Unset optional fields must be missing entirely, not null.
	var body map[string]any
	if err := json.Unmarshal(requests[0].Body, &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	for _, key := range []string{"expireTime", "sourceIpsAllowed", "domainsAllowed", "auth"} {
		if _, present := body[key]; present {
			t.Errorf("expected '%s' to be omitted from the body, got %s", key, requests[0].Body)
		}
	}
}

func TestCreateDirectLinkEncodesRestrictions(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"id":"dl1"}}`, &requests)
	defer server.Close()

	expire := int64(1767225600)
	opts := &DirectLinkOptions{
		ExpireTime:       &expire,
		SourceIpsAllowed: []string{"192.0.2.7"},
		Auth:             []string{"alice:wonder"},
	}

	client := testClient(server, "test-token")
	if _, err := client.CreateDirectLink(context.Background(), "c1", opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(requests[0].Body, &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["expireTime"] != float64(expire) {
		t.Errorf("expected expireTime %d, got %v", expire, body["expireTime"])
	}
	if _, present := body["domainsAllowed"]; present {
		t.Errorf("expected 'domainsAllowed' to stay omitted, got %s", requests[0].Body)
	}
}

func TestUpdateAndDeleteDirectLink(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"id":"dl1"}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	if _, err := client.UpdateDirectLink(context.Background(), "c1", "dl1", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.DeleteDirectLink(context.Background(), "c1", "dl1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requests[0].Method != http.MethodPut || requests[0].Path != "/contents/c1/directlinks/dl1" {
		t.Errorf("unexpected update request: %s %s", requests[0].Method, requests[0].Path)
	}
	if requests[1].Method != http.MethodDelete || requests[1].Path != "/contents/c1/directlinks/dl1" {
		t.Errorf("unexpected delete request: %s %s", requests[1].Method, requests[1].Path)
	}
}

func TestCopyMoveImport(t *testing.T) {
	tests := []struct {
		name       string
		invoke     func(c *Client) (map[string]ContentResult, error)
		wantMethod string
		wantPath   string
		wantFolder bool
	}{
		{
			name: "copy",
			invoke: func(c *Client) (map[string]ContentResult, error) {
				return c.CopyContents(context.Background(), []string{"a", "b"}, "dest1")
			},
			wantMethod: http.MethodPost,
			wantPath:   "/contents/copy",
			wantFolder: true,
		},
		{
			name: "move",
			invoke: func(c *Client) (map[string]ContentResult, error) {
				return c.MoveContents(context.Background(), []string{"a", "b"}, "dest1")
			},
			wantMethod: http.MethodPut,
			wantPath:   "/contents/move",
			wantFolder: true,
		},
		{
			name: "import",
			invoke: func(c *Client) (map[string]ContentResult, error) {
				return c.ImportContents(context.Background(), []string{"a", "b"})
			},
			wantMethod: http.MethodPost,
			wantPath:   "/contents/import",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requests []recordedRequest
			server := recordingServer(t, `{"status":"ok","data":{"a":{"status":"ok","data":{"id":"a2"}},"b":{"status":"ok","data":{"id":"b2"}}}}`, &requests)
			defer server.Close()

			client := testClient(server, "test-token")
			results, err := tt.invoke(client)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(results) != 2 {
				t.Errorf("expected 2 results, got %d", len(results))
			}
			if requests[0].Method != tt.wantMethod || requests[0].Path != tt.wantPath {
				t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
			}

			var body map[string]any
			if err := json.Unmarshal(requests[0].Body, &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["contentsId"] != "a,b" {
				t.Errorf("expected contentsId 'a,b', got %v", body["contentsId"])
			}
			if tt.wantFolder && body["folderId"] != "dest1" {
				t.Errorf("expected folderId 'dest1', got %v", body["folderId"])
			}
		})
	}
}

func TestGetAccountID(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"id":"acct1"}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	id, err := client.GetAccountID(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if id != "acct1" {
		t.Errorf("expected id 'acct1', got '%s'", id)
	}
	if requests[0].Method != http.MethodGet || requests[0].Path != "/accounts/getid" {
		t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
	}
}

func TestGetAccountIDUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	// No token configured against a server that wants one: the outcome is a
	// described failure embedding the status code, never an escaped panic.
	client := testClient(server, "")
	_, err := client.GetAccountID(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected a StatusError, got %T: %v", err, err)
	}
	if statusErr.Code != http.StatusUnauthorized {
		t.Errorf("expected code 401, got %d", statusErr.Code)
	}
	if !strings.Contains(err.Error(), "401") {
		t.Errorf("expected '401' in the message, got '%s'", err.Error())
	}
}

func TestGetAccount(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":{"id":"acct1","email":"user@example.com","tier":"standard","rootFolder":"root1","statsCurrent":{"fileCount":3,"storage":2048}}}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	account, err := client.GetAccount(context.Background(), "acct1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if account.Email != "user@example.com" {
		t.Errorf("unexpected email: %s", account.Email)
	}
	if account.StatsCurrent.Storage != 2048 {
		t.Errorf("unexpected storage: %d", account.StatsCurrent.Storage)
	}
	if requests[0].Path != "/accounts/acct1" {
		t.Errorf("unexpected path: %s", requests[0].Path)
	}
}

func TestResetToken(t *testing.T) {
	var requests []recordedRequest
	server := recordingServer(t, `{"status":"ok","data":"new-token-value"}`, &requests)
	defer server.Close()

	client := testClient(server, "test-token")
	token, err := client.ResetToken(context.Background(), "acct1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if token != "new-token-value" {
		t.Errorf("expected 'new-token-value', got '%s'", token)
	}
	if requests[0].Method != http.MethodPost || requests[0].Path != "/accounts/acct1/resettoken" {
		t.Errorf("unexpected request: %s %s", requests[0].Method, requests[0].Path)
	}

	// The live client keeps its configured token.
	if client.token != "test-token" {
		t.Errorf("client token must not change, got '%s'", client.token)
	}
}
