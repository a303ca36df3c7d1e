package gofile

import "fmt"

// Content types as reported by the API.
const (
	ItemTypeFolder = "folder"
	ItemTypeFile   = "file"
)

// Item describes a file or folder as returned by the contents endpoints.
type Item struct {
	ID            string                 `json:"id"`
	ParentFolder  string                 `json:"parentFolder"`
	Type          string                 `json:"type"`
	Name          string                 `json:"name"`
	Size          int64                  `json:"size"`
	Code          string                 `json:"code"`
	CreateTime    int64                  `json:"createTime"`
	ModTime       int64                  `json:"modTime"`
	Link          string                 `json:"link"`
	MD5           string                 `json:"md5"`
	MimeType      string                 `json:"mimetype"`
	ChildrenCount int                    `json:"childrenCount"`
	Public        bool                   `json:"public"`
	DirectLinks   map[string]*DirectLink `json:"directLinks"`
	Children      map[string]*Item       `json:"children"`
}

// IsFolder returns true if the item is a folder
func (i *Item) IsFolder() bool {
	return i.Type == ItemTypeFolder
}

// DirectLink describes a shareable download link for a content item,
// optionally restricted by expiry, source IP, domain or credentials.
type DirectLink struct {
	ID               string   `json:"id"`
	ExpireTime       int64    `json:"expireTime"`
	SourceIpsAllowed []string `json:"sourceIpsAllowed"`
	DomainsAllowed   []string `json:"domainsAllowed"`
	Auth             []string `json:"auth"`
	IsReqLink        bool     `json:"isReqLink"`
	DirectLink       string   `json:"directLink"`
}

// Server is an upload server
type Server struct {
	Name string `json:"name"`
	Zone string `json:"zone"`
}

// String returns a human-readable representation of the server
func (s *Server) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Zone)
}

// Root returns the base URL for the server
func (s *Server) Root() string {
	return fmt.Sprintf("https://%s.gofile.io", s.Name)
}

// ServerList is the payload of the servers endpoint
type ServerList struct {
	Servers []Server `json:"servers"`
}

// SearchResult is the payload of the in-folder search endpoint
type SearchResult struct {
	Contents []Item `json:"contents"`
}

// Stats holds storage and traffic counters for an account
type Stats struct {
	FolderCount            int64 `json:"folderCount"`
	FileCount              int64 `json:"fileCount"`
	Storage                int64 `json:"storage"`
	TrafficDirectGenerated int64 `json:"trafficDirectGenerated"`
	TrafficReqDownloaded   int64 `json:"trafficReqDownloaded"`
	TrafficWebDownloaded   int64 `json:"trafficWebDownloaded"`
}

// Account describes an account as returned by the accounts endpoint
type Account struct {
	ID                             string `json:"id"`
	Email                          string `json:"email"`
	Tier                           string `json:"tier"`
	PremiumType                    string `json:"premiumType"`
	Token                          string `json:"token"`
	RootFolder                     string `json:"rootFolder"`
	SubscriptionProvider           string `json:"subscriptionProvider"`
	SubscriptionEndDate            int64  `json:"subscriptionEndDate"`
	SubscriptionLimitDirectTraffic int64  `json:"subscriptionLimitDirectTraffic"`
	SubscriptionLimitStorage       int64  `json:"subscriptionLimitStorage"`
	StatsCurrent                   Stats  `json:"statsCurrent"`
}

// accountID is the payload of the account id lookup endpoint
type accountID struct {
	ID string `json:"id"`
}

// ContentStatus reports the per-id outcome of a bulk delete.
type ContentStatus struct {
	Status string `json:"status"`
}

// ContentResult reports the per-id outcome of a bulk copy, move or import.
type ContentResult struct {
	Status string `json:"status"`
	Data   Item   `json:"data"`
}

// DirectLinkOptions holds the optional restrictions for creating or
// updating a direct link. Unset fields are omitted from the request body
// entirely; the API distinguishes an omitted field from an empty one.
type DirectLinkOptions struct {
	ExpireTime       *int64   `json:"expireTime,omitempty"`
	SourceIpsAllowed []string `json:"sourceIpsAllowed,omitempty"`
	DomainsAllowed   []string `json:"domainsAllowed,omitempty"`
	Auth             []string `json:"auth,omitempty"`
}

// createFolderRequest is the body of the folder creation endpoint
type createFolderRequest struct {
	ParentFolderID string `json:"parentFolderId"`
	FolderName     string `json:"folderName"`
}

// updateContentRequest is the body of the content attribute update endpoint
type updateContentRequest struct {
	Attribute string `json:"attribute"`
	Value     any    `json:"attributeValue"`
}

// deleteRequest carries a comma-joined list of content ids
type deleteRequest struct {
	ContentsID string `json:"contentsId"`
}

// transferRequest is the body of the copy and move endpoints
type transferRequest struct {
	FolderID   string `json:"folderId"`
	ContentsID string `json:"contentsId"`
}

// importRequest is the body of the public-content import endpoint
type importRequest struct {
	ContentsID string `json:"contentsId"`
}
