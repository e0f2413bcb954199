package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"postboard/internal/model"
)

func listCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			posts, err := c.ListPosts(cmd.Context())
			if err != nil {
				return err
			}
			if limit > 0 && limit < len(posts) {
				posts = posts[:limit]
			}
			return printJSON(cmd.OutOrStdout(), posts)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Print at most n posts (0 prints all)")
	return cmd
}

func getCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			post, err := c.GetPost(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), post)
		},
	}
}

func commentsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			comments, err := c.ListComments(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), comments)
		},
	}
}

func createCmd(opts *rootOptions) *cobra.Command {
	var draft model.PostDraft

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			post, err := c.CreatePost(cmd.Context(), draft)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), post)
		},
	}

	cmd.Flags().IntVar(&draft.UserID, "user", 1, "Author id")
	cmd.Flags().StringVar(&draft.Title, "title", "", "Post title")
	cmd.Flags().StringVar(&draft.Body, "body", "", "Post body")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func updateCmd(opts *rootOptions) *cobra.Command {
	var (
		userID      int
		title, body string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields of a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			var patch model.PostPatch
			if cmd.Flags().Changed("user") {
				patch.UserID = &userID
			}
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if cmd.Flags().Changed("body") {
				patch.Body = &body
			}
			if patch.UserID == nil && patch.Title == nil && patch.Body == nil {
				return fmt.Errorf("nothing to update: set --title, --body or --user")
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			post, err := c.UpdatePost(cmd.Context(), id, patch)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), post)
		},
	}

	cmd.Flags().IntVar(&userID, "user", 0, "New author id")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&body, "body", "", "New body")
	return cmd
}

func deleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			c, err := opts.client()
			if err != nil {
				return err
			}
			ok, err := c.DeletePost(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("post %d was not deleted", id)
			}
			return printJSON(cmd.OutOrStdout(), map[string]any{"id": id, "deleted": true})
		},
	}
}

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}
			fmt.Fprintf(out, "Version:    %s\n", version)
			fmt.Fprintf(out, "Commit:     %s\n", commit)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only version number")
	return cmd
}
