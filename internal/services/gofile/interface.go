package gofile

import (
	"context"
	"io"
)

// ClientAPI defines the methods required to interact with Gofile.
// It mirrors the concrete client so it can be mocked in tests.
type ClientAPI interface {
	GetServers(ctx context.Context) (*ServerList, error)
	UploadFile(ctx context.Context, name string, contents io.Reader, folderID string) (*Item, error)
	CreateFolder(ctx context.Context, parentFolderID, name string) (*Item, error)
	UpdateContent(ctx context.Context, contentID, attribute string, value any) (*Item, error)
	DeleteContents(ctx context.Context, contentIDs []string) (map[string]ContentStatus, error)
	GetFolder(ctx context.Context, folderID, password string) (*Item, error)
	Search(ctx context.Context, folderID, searched string) (*SearchResult, error)
	CreateDirectLink(ctx context.Context, contentID string, opts *DirectLinkOptions) (*DirectLink, error)
	UpdateDirectLink(ctx context.Context, contentID, linkID string, opts *DirectLinkOptions) (*DirectLink, error)
	DeleteDirectLink(ctx context.Context, contentID, linkID string) error
	CopyContents(ctx context.Context, contentIDs []string, destFolderID string) (map[string]ContentResult, error)
	MoveContents(ctx context.Context, contentIDs []string, destFolderID string) (map[string]ContentResult, error)
	ImportContents(ctx context.Context, contentIDs []string) (map[string]ContentResult, error)
	GetAccountID(ctx context.Context) (string, error)
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	ResetToken(ctx context.Context, accountID string) (string, error)
}
