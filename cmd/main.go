package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/ochronus/gogofile/internal/app"
	"github.com/ochronus/gogofile/internal/config"
	"github.com/ochronus/gogofile/internal/services/gofile"
	"github.com/ochronus/gogofile/internal/utils"
	"github.com/spf13/cobra"
)

const version = "0.3.1"

var configPath string

func main() {
	// Get default config path
	defaultConfigPath, err := config.DefaultConfigPath()
	if err != nil {
		defaultConfigPath = "./config.toml"
	}

	// Root command
	rootCmd := &cobra.Command{
		Use:   "gogofile",
		Short: "Gofile.io command line client",
		Long:  "Command line client for the Gofile.io file hosting service: upload files, manage folders and contents, create direct links and inspect your account.",
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to config file")

	// Generate-config command
	var genToken string
	generateConfigCmd := &cobra.Command{
		Use:   "generate-config",
		Short: "Generate config",
		RunE: func(cmd *cobra.Command, args []string) error {
			return utils.GenerateConfig(configPath, genToken)
		},
	}
	generateConfigCmd.Flags().StringVarP(&genToken, "token", "t", "", "Gofile API token to embed in the config")

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gogofile version %s\n", version)
		},
	}

	rootCmd.AddCommand(generateConfigCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serversCmd())
	rootCmd.AddCommand(accountCmd())
	rootCmd.AddCommand(uploadCmd())
	rootCmd.AddCommand(mkdirCmd())
	rootCmd.AddCommand(lsCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(updateCmd())
	rootCmd.AddCommand(rmCmd())
	rootCmd.AddCommand(cpCmd())
	rootCmd.AddCommand(mvCmd())
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(linkCmd())
	rootCmd.AddCommand(resetTokenCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the dependency container.
// The returned context is canceled on SIGINT/SIGTERM so an in-flight
// call aborts cleanly.
func setup() (context.Context, context.CancelFunc, *app.Container, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg, err := config.Load(configPath)
	if err != nil {
		stop()
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		stop()
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	container, err := app.NewContainer(ctx, cfg)
	if err != nil {
		stop()
		return nil, nil, nil, fmt.Errorf("failed to build container: %w", err)
	}

	return ctx, stop, container, nil
}

func serversCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "servers",
		Short: "List the available upload servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			servers, err := container.Gofile.GetServers(ctx)
			if err != nil {
				return err
			}

			for _, server := range servers.Servers {
				fmt.Println(server.String())
			}
			return nil
		},
	}
}

func accountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show account details",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			id, err := container.Gofile.GetAccountID(ctx)
			if err != nil {
				return err
			}

			account, err := container.Gofile.GetAccount(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("ID:          %s\n", account.ID)
			fmt.Printf("Email:       %s\n", account.Email)
			fmt.Printf("Tier:        %s\n", account.Tier)
			fmt.Printf("Root folder: %s\n", account.RootFolder)
			fmt.Printf("Storage:     %s (%d files, %d folders)\n",
				utils.FormatSize(account.StatsCurrent.Storage),
				account.StatsCurrent.FileCount,
				account.StatsCurrent.FolderCount)
			return nil
		},
	}
}

func uploadCmd() *cobra.Command {
	var folderID string
	cmd := &cobra.Command{
		Use:   "upload FILE...",
		Short: "Upload files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			if folderID == "" {
				folderID = container.Config.Gofile.RootFolder
			}

			for _, path := range args {
				file, err := os.Open(path)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", path, err)
				}

				item, err := container.Gofile.UploadFile(ctx, filepath.Base(path), file, folderID)
				file.Close()
				if err != nil {
					return err
				}

				container.Logger.Infof("Uploaded %s (%s)", item.Name, item.ID)
				fmt.Println(item.Link)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&folderID, "folder", "f", "", "Destination folder id (default: root_folder from config)")
	return cmd
}

func mkdirCmd() *cobra.Command {
	var parentID string
	cmd := &cobra.Command{
		Use:   "mkdir NAME",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			if parentID == "" {
				parentID = container.Config.Gofile.RootFolder
			}

			item, err := container.Gofile.CreateFolder(ctx, parentID, args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\t%s\n", item.ID, item.Name)
			return nil
		},
	}
	cmd.Flags().StringVarP(&parentID, "parent", "p", "", "Parent folder id (default: root_folder from config)")
	return cmd
}

func lsCmd() *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "ls FOLDER_ID",
		Short: "List the contents of a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			folder, err := container.Gofile.GetFolder(ctx, args[0], password)
			if err != nil {
				return err
			}

			children := make([]*gofile.Item, 0, len(folder.Children))
			for _, child := range folder.Children {
				children = append(children, child)
			}
			sort.Slice(children, func(i, j int) bool {
				return children[i].Name < children[j].Name
			})

			for _, child := range children {
				printItem(child)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for protected folders")
	return cmd
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search FOLDER_ID QUERY",
		Short: "Search for contents inside a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			result, err := container.Gofile.Search(ctx, args[0], args[1])
			if err != nil {
				return err
			}

			for i := range result.Contents {
				printItem(&result.Contents[i])
			}
			return nil
		},
	}
}

func updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update CONTENT_ID ATTRIBUTE VALUE",
		Short: "Update a content attribute (name, description, tags, public, expiry, password)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			item, err := container.Gofile.UpdateContent(ctx, args[0], args[1], args[2])
			if err != nil {
				return err
			}

			container.Logger.Infof("Updated %s of %s", args[1], item.ID)
			return nil
		},
	}
}

func rmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm CONTENT_ID...",
		Short: "Delete contents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			statuses, err := container.Gofile.DeleteContents(ctx, args)
			if err != nil {
				return err
			}

			for id, status := range statuses {
				fmt.Printf("%s\t%s\n", id, status.Status)
			}
			return nil
		},
	}
}

func cpCmd() *cobra.Command {
	var destID string
	cmd := &cobra.Command{
		Use:   "cp CONTENT_ID...",
		Short: "Copy contents into a folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			results, err := container.Gofile.CopyContents(ctx, args, destID)
			if err != nil {
				return err
			}

			printResults(results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&destID, "to", "t", "", "Destination folder id")
	cmd.MarkFlagRequired("to")
	return cmd
}

func mvCmd() *cobra.Command {
	var destID string
	cmd := &cobra.Command{
		Use:   "mv CONTENT_ID...",
		Short: "Move contents into a folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			results, err := container.Gofile.MoveContents(ctx, args, destID)
			if err != nil {
				return err
			}

			printResults(results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&destID, "to", "t", "", "Destination folder id")
	cmd.MarkFlagRequired("to")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import CONTENT_ID...",
		Short: "Import public contents into your account",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			results, err := container.Gofile.ImportContents(ctx, args)
			if err != nil {
				return err
			}

			printResults(results)
			return nil
		},
	}
}

func linkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Manage direct links",
	}

	var (
		expireTime   int64
		allowedIPs   []string
		allowedHosts []string
		auth         []string
	)

	buildOptions := func() *gofile.DirectLinkOptions {
		opts := &gofile.DirectLinkOptions{
			SourceIpsAllowed: allowedIPs,
			DomainsAllowed:   allowedHosts,
			Auth:             auth,
		}
		if expireTime > 0 {
			opts.ExpireTime = &expireTime
		}
		return opts
	}

	createCmd := &cobra.Command{
		Use:   "create CONTENT_ID",
		Short: "Create a direct link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			link, err := container.Gofile.CreateDirectLink(ctx, args[0], buildOptions())
			if err != nil {
				return err
			}

			fmt.Printf("%s\t%s\n", link.ID, link.DirectLink)
			return nil
		},
	}

	updateCmd := &cobra.Command{
		Use:   "update CONTENT_ID LINK_ID",
		Short: "Replace the restrictions of a direct link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			link, err := container.Gofile.UpdateDirectLink(ctx, args[0], args[1], buildOptions())
			if err != nil {
				return err
			}

			fmt.Printf("%s\t%s\n", link.ID, link.DirectLink)
			return nil
		},
	}

	for _, c := range []*cobra.Command{createCmd, updateCmd} {
		c.Flags().Int64Var(&expireTime, "expire", 0, "Expiry as a unix timestamp (0 = never)")
		c.Flags().StringSliceVar(&allowedIPs, "allow-ip", nil, "Source IPs allowed to use the link")
		c.Flags().StringSliceVar(&allowedHosts, "allow-domain", nil, "Referrer domains allowed to use the link")
		c.Flags().StringSliceVar(&auth, "auth", nil, "user:password pairs required to use the link")
	}

	rmCmd := &cobra.Command{
		Use:   "rm CONTENT_ID LINK_ID",
		Short: "Delete a direct link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			if err := container.Gofile.DeleteDirectLink(ctx, args[0], args[1]); err != nil {
				return err
			}

			container.Logger.Infof("Deleted direct link %s", args[1])
			return nil
		},
	}

	cmd.AddCommand(createCmd)
	cmd.AddCommand(updateCmd)
	cmd.AddCommand(rmCmd)
	return cmd
}

func resetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-token",
		Short: "Reset the account's API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop, container, err := setup()
			if err != nil {
				return err
			}
			defer stop()

			id, err := container.Gofile.GetAccountID(ctx)
			if err != nil {
				return err
			}

			token, err := container.Gofile.ResetToken(ctx, id)
			if err != nil {
				return err
			}

			fmt.Printf("New API token: %s\n", token)
			fmt.Println("Update your config file; the running client keeps using the old token.")
			return nil
		},
	}
}

func printItem(item *gofile.Item) {
	size := ""
	if !item.IsFolder() {
		size = utils.FormatSize(item.Size)
	}
	fmt.Printf("%s\t%-6s\t%8s\t%s\n", item.ID, item.Type, size, item.Name)
}

func printResults(results map[string]gofile.ContentResult) {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		line := results[id].Status
		if name := results[id].Data.Name; name != "" {
			line += "\t" + name
		}
		fmt.Printf("%s\t%s\n", id, strings.TrimSpace(line))
	}
}
