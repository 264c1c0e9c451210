package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/folio/internal/domain/query"
	domrec "github.com/kailas-cloud/folio/internal/domain/record"
	"github.com/kailas-cloud/folio/internal/export"
	recordrepo "github.com/kailas-cloud/folio/internal/repository/record"
	filteruc "github.com/kailas-cloud/folio/internal/usecase/filter"
	"github.com/kailas-cloud/folio/internal/version"
)

const defaultCatalog = "content/catalog.yaml"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "folioctl",
		Short:        "Offline tools for the folio content catalog",
		Version:      version.Version,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(filterCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(exportCmd())
	return rootCmd
}

func filterCmd() *cobra.Command {
	var (
		catalog  string
		q        string
		category string
		kind     string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Print the records a search or category filter would show",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			records, err := recordrepo.LoadYAML(catalog)
			if err != nil {
				return err
			}
			svc := filteruc.New(recordrepo.NewStore(records), nil)
			ctx := cmd.Context()

			var matched []domrec.Record
			switch domrec.Kind(kind) {
			case domrec.KindCard:
				matched = filteruc.MatchCategory(svc.Cards(ctx, q), query.NewCategory(category))
			case domrec.KindPost:
				matched = filteruc.MatchFreeText(svc.Posts(ctx, category), query.NewFreeText(q))
			default:
				return fmt.Errorf("unknown kind %q (want card or post)", kind)
			}
			return printRecords(cmd.OutOrStdout(), matched)
		},
	}

	cmd.Flags().StringVar(&catalog, "catalog", defaultCatalog, "catalog YAML file")
	cmd.Flags().StringVar(&q, "q", "", "free-text query")
	cmd.Flags().StringVar(&category, "category", "", "category token (all or empty matches everything)")
	cmd.Flags().StringVar(&kind, "kind", string(domrec.KindCard), "record kind: card or post")
	return cmd
}

func extractCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "extract [page.html...]",
		Short: "Build a catalog from rendered HTML pages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []domrec.Record
			for _, path := range args {
				rs, err := extractFile(path)
				if err != nil {
					return err
				}
				records = append(records, rs...)
			}

			if err := writeCatalog(cmd.OutOrStdout(), out, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "extracted %d records from %d pages\n", len(records), len(args))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output catalog file (default stdout)")
	return cmd
}

func exportCmd() *cobra.Command {
	var (
		catalog  string
		out      string
		q        string
		category string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write catalog records to a .csv or .xlsx table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := export.FormatFromPath(out); err != nil {
				return err
			}
			records, err := recordrepo.LoadYAML(catalog)
			if err != nil {
				return err
			}
			records = filteruc.MatchFreeText(records, query.NewFreeText(q))
			records = filteruc.MatchCategory(records, query.NewCategory(category))

			if err := export.WriteFile(out, records); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalog, "catalog", defaultCatalog, "catalog YAML file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.csv or .xlsx)")
	cmd.Flags().StringVar(&q, "q", "", "free-text query")
	cmd.Flags().StringVar(&category, "category", "", "category token")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// writeCatalog encodes records to path, or to stdout when path is empty.
func writeCatalog(stdout io.Writer, path string, records []domrec.Record) error {
	if path == "" {
		return recordrepo.EncodeYAML(stdout, records)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := recordrepo.EncodeYAML(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func extractFile(path string) ([]domrec.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := recordrepo.ExtractHTML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

func printRecords(w io.Writer, records []domrec.Record) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tKIND\tCATEGORY\tTITLE")
	for i := range records {
		r := &records[i]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID(), r.Kind(), r.Category(), r.Title())
	}
	fmt.Fprintf(tw, "\n%d matched\n", len(records))
	return tw.Flush()
}
