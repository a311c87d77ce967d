package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pribylovaa/go-local-blog/internal/models"
	"github.com/pribylovaa/go-local-blog/internal/service"
)

var articleCategory string

var articlesCmd = &cobra.Command{
	Use:   "articles",
	Short: "Browse the article collection",
}

// importFile — формат YAML-файла импорта контента.
type importFile struct {
	Articles []models.Article `yaml:"articles"`
}

var importCmd = &cobra.Command{
	Use:   "import <file.yaml>",
	Short: "Replace the article collection with the contents of a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var file importFile
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		if err := a.svc.ImportArticles(a.ctx, file.Articles); err != nil {
			return err
		}

		fmt.Printf("imported %d articles\n", len(file.Articles))
		return nil
	},
}

var articlesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all articles page by page (append mode)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		pager, err := a.svc.ArticlePager(a.ctx, articleCategory)
		if err != nil {
			return err
		}

		for {
			items, more := pager.NextPage()
			if len(items) == 0 {
				break
			}

			fmt.Printf("-- page %d/%d\n", pager.CurrentPage(), pager.TotalPages())
			printArticles(items)

			if !more {
				break
			}
		}

		return nil
	},
}

var articlesPageCmd = &cobra.Command{
	Use:   "page <n>",
	Short: "Show one page of articles (jump mode)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("page number must be a positive integer, got %q", args[0])
		}

		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		pager, err := a.svc.ArticlePager(a.ctx, articleCategory)
		if err != nil {
			return err
		}

		items, controls := pager.Page(n)
		if len(items) == 0 {
			fmt.Println("no articles on this page")
		} else {
			printArticles(items)
		}

		fmt.Println(formatControls(controls))
		return nil
	},
}

var topCount int

var articlesTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most viewed articles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		pager, err := a.svc.ArticlePager(a.ctx, articleCategory)
		if err != nil {
			return err
		}

		n := topCount
		if n <= 0 {
			n = a.cfg.Pager.TopCount
		}

		for i, art := range pager.TopByViews(n) {
			fmt.Printf("%d. %s (%d views, %d likes)\n", i+1, art.Title, art.Views, art.Likes)
		}

		return nil
	},
}

func printArticles(items []models.Article) {
	for _, art := range items {
		fmt.Printf("%s\t%s [%s] %d comments, %d views\n",
			art.ID, art.Title, art.Category, art.CommentCount, art.Views)
	}
}

// formatControls отображает состояние навигации: «< 1 ... 4 [5] 6 ... 9 >»,
// с «...» по краям, когда окно не достаёт до первой/последней страницы.
func formatControls(c service.Controls) string {
	var b strings.Builder

	if c.HasPrev {
		b.WriteString("< ")
	}
	if c.LeadingEllipsis {
		b.WriteString("1 ... ")
	}

	for i, p := range c.Window {
		if i > 0 {
			b.WriteByte(' ')
		}
		if p == c.Page {
			fmt.Fprintf(&b, "[%d]", p)
		} else {
			fmt.Fprintf(&b, "%d", p)
		}
	}

	if c.TrailingEllipsis {
		fmt.Fprintf(&b, " ... %d", c.TotalPages)
	}
	if c.HasNext {
		b.WriteString(" >")
	}

	return b.String()
}

func init() {
	articlesCmd.AddCommand(articlesListCmd, articlesPageCmd, articlesTopCmd)
	articlesCmd.PersistentFlags().StringVar(&articleCategory, "category", "all", "category key filter")
	articlesTopCmd.Flags().IntVar(&topCount, "n", 0, "ranking size (default from config)")
}
