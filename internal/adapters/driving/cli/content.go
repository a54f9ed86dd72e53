package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/folio/internal/core/domain"
)

var (
	contentOutput     string
	contentQuery      string
	contentTags       []string
	contentDifficulty string
	contentCategory   string
	contentRaw        bool
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Query content collections",
	Long: `Query the blog, ctf and tool collections directly from GitHub.

Types: blog, ctf, tool (alias: tools).`,
}

var contentSlugsCmd = &cobra.Command{
	Use:   "slugs <type>",
	Short: "List the slugs of a content type",
	Args:  cobra.ExactArgs(1),
	RunE:  runContentSlugs,
}

var contentListCmd = &cobra.Command{
	Use:   "list <type>",
	Short: "List the entries of a content type",
	Long: `Fetch every document of a content type and list its metadata.
Documents that cannot be fetched are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runContentList,
}

var contentGetCmd = &cobra.Command{
	Use:   "get <type> <slug>",
	Short: "Show one document",
	Args:  cobra.ExactArgs(2),
	RunE:  runContentGet,
}

func init() {
	addOutputFlag(contentSlugsCmd, &contentOutput)
	addOutputFlag(contentListCmd, &contentOutput)
	addOutputFlag(contentGetCmd, &contentOutput)

	contentListCmd.Flags().StringVarP(&contentQuery, "query", "q", "", "match title or description")
	contentListCmd.Flags().StringSliceVarP(&contentTags, "tag", "t", nil, "keep entries with any of these tags")
	contentListCmd.Flags().StringVar(&contentDifficulty, "difficulty", "", "keep CTF write-ups of this difficulty")
	contentListCmd.Flags().StringVar(&contentCategory, "category", "", "keep tools of this category")

	contentGetCmd.Flags().BoolVar(&contentRaw, "raw", false, "print the document as markdown with front matter")

	contentCmd.AddCommand(contentSlugsCmd)
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentGetCmd)
	rootCmd.AddCommand(contentCmd)
}

func runContentSlugs(cmd *cobra.Command, args []string) error {
	if err := requireContent(); err != nil {
		return err
	}

	ct, err := domain.ParseContentType(args[0])
	if err != nil {
		return err
	}

	asJSON, err := wantJSON(cmd, contentOutput)
	if err != nil {
		return err
	}

	slugs, err := contentService.Slugs(cmd.Context(), ct)
	if err != nil {
		return fmt.Errorf("failed to list slugs: %w", err)
	}

	if asJSON {
		return printJSON(cmd, slugs)
	}

	out := cmd.OutOrStdout()
	for _, slug := range slugs {
		fmt.Fprintln(out, slug)
	}
	return nil
}

func runContentList(cmd *cobra.Command, args []string) error {
	if err := requireContent(); err != nil {
		return err
	}

	ct, err := domain.ParseContentType(args[0])
	if err != nil {
		return err
	}

	asJSON, err := wantJSON(cmd, contentOutput)
	if err != nil {
		return err
	}

	filter := domain.Filter{
		Query:      contentQuery,
		Tags:       contentTags,
		Difficulty: contentDifficulty,
		Category:   contentCategory,
	}

	collection, err := contentService.List(cmd.Context(), ct, filter)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", ct, err)
	}

	if asJSON {
		return printJSON(cmd, collection.Entries)
	}

	return printCollection(cmd, collection)
}

func runContentGet(cmd *cobra.Command, args []string) error {
	if err := requireContent(); err != nil {
		return err
	}

	ct, err := domain.ParseContentType(args[0])
	if err != nil {
		return err
	}

	asJSON, err := wantJSON(cmd, contentOutput)
	if err != nil {
		return err
	}

	doc, err := contentService.Get(cmd.Context(), ct, args[1])
	if err != nil {
		return fmt.Errorf("%s %q: %w", ct.Label(), args[1], err)
	}

	out := cmd.OutOrStdout()
	switch {
	case contentRaw:
		if renderer == nil {
			return fmt.Errorf("markdown renderer not configured")
		}
		data, err := renderer.Render(*doc)
		if err != nil {
			return fmt.Errorf("failed to render document: %w", err)
		}
		_, err = out.Write(data)
		return err
	case asJSON:
		return printJSON(cmd, map[string]any{
			"metadata": doc.Metadata,
			"content":  doc.Body,
		})
	default:
		if title := doc.Metadata.String(domain.KeyTitle); title != "" {
			fmt.Fprintf(out, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
		}
		fmt.Fprint(out, doc.Body)
		if !strings.HasSuffix(doc.Body, "\n") {
			fmt.Fprintln(out)
		}
		return nil
	}
}

func printCollection(cmd *cobra.Command, collection *domain.Collection) error {
	out := cmd.OutOrStdout()
	if len(collection.Entries) == 0 {
		fmt.Fprintln(out, "No entries found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tDATE\tTAGS")
	for _, entry := range collection.Entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			entry.Slug,
			entry.Title(),
			entry.Metadata.String(domain.KeyDate),
			strings.Join(entry.Tags(), ", "))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d %s entries", len(collection.Entries), collection.Type)
	if len(collection.Tags) > 0 {
		fmt.Fprintf(out, "; tags: %s", strings.Join(collection.Tags, ", "))
	}
	if len(collection.Categories) > 0 {
		fmt.Fprintf(out, "; categories: %s", strings.Join(collection.Categories, ", "))
	}
	fmt.Fprintln(out)
	return nil
}
