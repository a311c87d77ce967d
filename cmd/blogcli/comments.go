package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pribylovaa/go-local-blog/internal/service"
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Read and write article comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list <article-id>",
	Short: "List comments of an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		comments, err := a.svc.Comments(a.ctx, args[0])
		if err != nil {
			return err
		}

		if len(comments) == 0 {
			fmt.Println("no comments yet")
			return nil
		}

		for _, c := range comments {
			fmt.Printf("(%s) %s @ %s\n%s\n\n",
				c.Avatar, c.Author, c.CreatedAt.Format("2006-01-02"), c.Content)
		}

		return nil
	},
}

var commentIn service.CommentInput

var commentsAddCmd = &cobra.Command{
	Use:   "add <article-id>",
	Short: "Add a comment to an article",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		commentIn.ArticleID = args[0]

		// Текущая сессия передаётся явно: инициал аватара берётся из неё,
		// если пользователь залогинен.
		comment, err := a.svc.AddComment(a.ctx, a.svc.CurrentSession(), commentIn)
		if err != nil {
			return err
		}

		fmt.Printf("comment %s added\n", comment.ID)
		return nil
	},
}

func init() {
	commentsCmd.AddCommand(commentsListCmd, commentsAddCmd)

	f := commentsAddCmd.Flags()
	f.StringVar(&commentIn.Author, "author", "", "author name")
	f.StringVar(&commentIn.Email, "email", "", "author email")
	f.StringVar(&commentIn.Content, "content", "", "comment text")
}
