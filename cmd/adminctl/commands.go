package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/servidz/console/internal/app"
	"github.com/servidz/console/internal/domain/activity"
	"github.com/servidz/console/internal/domain/booking"
	"github.com/servidz/console/internal/domain/collection"
	"github.com/servidz/console/internal/domain/profile"
	"github.com/servidz/console/internal/domain/tasker"
	"github.com/servidz/console/internal/domain/user"
	"github.com/servidz/console/internal/export"
)

// loader builds the console for one command invocation.
type loader func(ctx context.Context) (*app.App, error)

func newRootCmd(load loader) *cobra.Command {
	root := &cobra.Command{
		Use:           "adminctl",
		Short:         "Administer Servidz users, taskers and bookings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newLoginCmd(load),
		newLogoutCmd(load),
		newCollectionCmd(load, user.Entity, "user"),
		newCollectionCmd(load, tasker.Entity, "tasker"),
		newBookingsCmd(load),
		newDashboardCmd(load),
		newProfileCmd(load),
		newActionsCmd(load),
	)
	return root
}

// withApp runs fn against a freshly built console and closes it afterwards.
func withApp(load loader, fn func(ctx context.Context, a *app.App, out io.Writer, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := load(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd.Context(), a, cmd.OutOrStdout(), args)
	}
}

func newLoginCmd(load loader) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session for later commands",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, _ []string) error {
			if password == "" {
				password = os.Getenv("CONSOLE_ADMIN_PASSWORD")
			}
			p, err := a.Session.Login(ctx, email, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Signed in as %s <%s>\n", p.DisplayName(), p.DisplayEmail())
			return nil
		}),
	}
	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password (default $CONSOLE_ADMIN_PASSWORD)")
	return cmd
}

func newLogoutCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, _ []string) error {
			if err := a.Session.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(out, "Signed out")
			return nil
		}),
	}
}

type listFlags struct {
	search string
	status string
	sort   string
	xlsx   string
}

func newListCmd(load loader, entity string) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List " + entity,
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, _ []string) error {
			sort, err := collection.ParseSort(f.sort)
			if err != nil {
				return err
			}
			items, err := a.Console.List(ctx, entity, collection.Query{Search: f.search, Status: f.status, Sort: sort})
			if err != nil {
				return err
			}
			columns, err := export.ColumnsFor(entity)
			if err != nil {
				return err
			}
			if f.xlsx != "" {
				return writeXLSX(out, f.xlsx, entity, columns, items)
			}
			return printItems(out, columns, items)
		}),
	}
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive text to match")
	cmd.Flags().StringVar(&f.status, "status", "", "only items with this status")
	cmd.Flags().StringVar(&f.sort, "sort", "", "newest or oldest")
	cmd.Flags().StringVar(&f.xlsx, "xlsx", "", "write the list to this spreadsheet instead of printing it")
	return cmd
}

func newCollectionCmd(load loader, entity, singular string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   entity,
		Short: "Manage " + entity,
	}
	cmd.AddCommand(
		newListCmd(load, entity),
		newActionCmd(load, entity, collection.ActionBan, "Suspend a "+singular),
		newActionCmd(load, entity, collection.ActionActivate, "Reactivate a "+singular),
	)
	return cmd
}

func newActionCmd(load loader, entity string, action collection.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action) + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, args []string) error {
			item, err := a.Console.Apply(ctx, entity, args[0], action)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s is now %s\n", entity, item.ID, item.Status)
			return nil
		}),
	}
}

func newBookingsCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   booking.Entity,
		Short: "Browse bookings",
	}
	counts := &cobra.Command{
		Use:   "counts",
		Short: "Count bookings by status",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, _ []string) error {
			c, err := a.Console.BookingCounts(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Total\t%d\n", c.Total)
			fmt.Fprintf(tw, "%s\t%d\n", booking.Label(booking.StatusPending), c.Pending)
			fmt.Fprintf(tw, "%s\t%d\n", booking.Label(booking.StatusCompleted), c.Completed)
			fmt.Fprintf(tw, "%s\t%d\n", booking.Label(booking.StatusCancelled), c.Cancelled)
			return tw.Flush()
		}),
	}
	cmd.AddCommand(newListCmd(load, booking.Entity), counts)
	return cmd
}

func newDashboardCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform totals and recent activity",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, _ []string) error {
			o, err := a.Dashboard.Load(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Welcome back, %s\n\n", o.Admin.DisplayName())

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, c := range o.Cards {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.Title, c.Value, c.Growth, c.Note)
			}
			if len(o.RecentActivities) > 0 {
				fmt.Fprintln(tw, "\nRecent activity\t\t\t")
				for _, act := range o.RecentActivities {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", act.Date, act.Type, act.Status, act.Activity)
				}
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			for _, w := range o.Warnings {
				fmt.Fprintf(out, "warning: %s\n", w)
			}
			return nil
		}),
	}
}

func newProfileCmd(load loader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in admin",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, _ []string) error {
			p, err := a.Profile.Get(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s <%s>\n", p.DisplayName(), p.DisplayEmail())
			if p != nil && p.Avatar != "" {
				fmt.Fprintf(out, "avatar: %s\n", p.Avatar)
			}
			return nil
		}),
	}
	avatar := &cobra.Command{
		Use:   "avatar FILE",
		Short: "Upload a new profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read avatar: %w", err)
			}
			url, err := a.Profile.UploadAvatar(ctx, profile.Avatar{Filename: filepath.Base(args[0]), Data: data})
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "avatar uploaded (%s): %s\n", humanize.Bytes(uint64(len(data))), url)
			return nil
		}),
	}
	cmd.AddCommand(avatar)
	return cmd
}

func newActionsCmd(load loader) *cobra.Command {
	var entity string
	var limit int
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Show actions applied from this console",
		Args:  cobra.NoArgs,
		RunE: withApp(load, func(ctx context.Context, a *app.App, out io.Writer, _ []string) error {
			if a.Activity == nil {
				return fmt.Errorf("action log disabled: no database configured")
			}
			entries, err := a.Activity.GetRecentActivity(ctx, activity.ListActivityOptions{Entity: entity, Limit: limit})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(out, "No actions recorded")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\n", humanize.Time(e.CreatedAt), e.Summary)
			}
			return tw.Flush()
		}),
	}
	cmd.Flags().StringVar(&entity, "entity", "", "only actions on this collection")
	cmd.Flags().IntVar(&limit, "limit", activity.DefaultLimit, "maximum entries")
	return cmd
}

func printItems(out io.Writer, columns []export.Column, items []collection.Item) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, item := range items {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = col.Value(item)
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func writeXLSX(out io.Writer, path, entity string, columns []export.Column, items []collection.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := export.WriteXLSX(f, entity, columns, items); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(out, "Wrote %d %s to %s\n", len(items), entity, path)
	return nil
}
