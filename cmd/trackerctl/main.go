// trackerctl is a small command-line consumer of the issue API. It can run
// against a live server (-api, with -email/-password to log in) or fully
// offline against the seeded in-process fixture (-local).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/PSrandula/issue-tracker-app/internal/client"
	"github.com/PSrandula/issue-tracker-app/internal/issue"
)

func main() {
	var (
		apiURL   = flag.String("api", "http://localhost:8080", "API base URL")
		email    = flag.String("email", "", "login email")
		password = flag.String("password", "", "login password")
		token    = flag.String("token", "", "bearer token (skips login)")
		local    = flag.Bool("local", false, "use the in-process demo store instead of the API")

		search   = flag.String("search", "", "title substring filter")
		status   = flag.String("status", "", "status filter")
		priority = flag.String("priority", "", "priority filter")
		page     = flag.Int("page", 1, "page number")
		limit    = flag.Int("limit", client.DefaultPageSize, "page size")

		id    = flag.Uint64("id", 0, "issue id (get/delete)")
		title = flag.String("title", "", "issue title (create)")
		desc  = flag.String("desc", "", "issue description (create)")
	)
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "list"
	}

	ctx := context.Background()

	store, err := buildStore(ctx, *local, *apiURL, *token, *email, *password)
	if err != nil {
		fatal(err)
	}

	switch cmd {
	case "list":
		res, err := store.List(ctx, issue.ListQuery{
			Search: *search, Status: *status, Priority: *priority,
			Page: *page, PageSize: *limit,
		})
		if err != nil {
			fatal(err)
		}
		printIssues(res)
	case "get":
		is, err := store.Get(ctx, *id)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("#%d %s [%s/%s]\n%s\n", is.ID, is.Title, is.Status, is.Priority, is.Description)
	case "create":
		is, err := store.Create(ctx, issue.Fields{Title: title, Description: desc})
		if err != nil {
			fatal(err)
		}
		fmt.Printf("created #%d\n", is.ID)
	case "delete":
		if err := store.Delete(ctx, *id); err != nil {
			fatal(err)
		}
		fmt.Println("deleted")
	case "export":
		csvText, err := store.ExportCSV(ctx)
		if err != nil {
			fatal(err)
		}
		fmt.Print(csvText)
	default:
		fatal(fmt.Errorf("unknown command %q", cmd))
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "trackerctl:", err)
	os.Exit(1)
}

func buildStore(ctx context.Context, local bool, apiURL, token, email, password string) (client.Store, error) {
	if local {
		return client.NewLocal()
	}

	c := client.New(apiURL)
	c.Token = token
	if token == "" && email != "" {
		if err := c.Login(ctx, email, password); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func printIssues(res *issue.ListResult) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tPRIORITY\tCREATED")
	for _, is := range res.Issues {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			is.ID, is.Title, is.Status, is.Priority, is.CreatedAt.Format("2006-01-02"))
	}
	_ = tw.Flush()

	fmt.Fprintf(tw, "\npage of %d\t", res.TotalPages)
	for _, st := range issue.Statuses {
		fmt.Fprintf(tw, "%s: %d\t", st, res.StatusCounts[st])
	}
	fmt.Fprintln(tw)
	_ = tw.Flush()
}
