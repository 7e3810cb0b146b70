// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package presenter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/red-box/internal/app"
	"github.com/MKhiriev/red-box/models"
)

// Console writes to a terminal. It implements service.Notifier.
type Console struct {
	out    io.Writer
	styles styles
}

// NewConsole returns a [Console] writing to out. Colours are used only when
// out is a terminal that supports them.
func NewConsole(out io.Writer) *Console {
	return &Console{
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Notify prints n. Errors are boxed so a destructive denial cannot scroll by
// unnoticed.
func (c *Console) Notify(_ context.Context, n models.Notice) {
	var body string
	switch n.Level {
	case models.NoticeSuccess:
		body = c.styles.success.Render("✔ " + n.Text)
	case models.NoticeWarning:
		body = c.styles.warning.Render("! " + n.Text)
	case models.NoticeError:
		body = c.styles.errorBox.Render(c.styles.error.Render(n.Title) + "\n" + n.Text)
	default:
		body = c.styles.info.Render(n.Text)
	}

	if n.Level != models.NoticeError && n.Title != "" {
		body = c.styles.title.Render(n.Title+":") + " " + body
	}
	fmt.Fprintln(c.out, body)
}

// Banner prints the product header.
func (c *Console) Banner() {
	fmt.Fprintln(c.out, c.styles.banner.Render("Red Box 🔒"))
	fmt.Fprintln(c.out, c.styles.subtitle.Render("( A BioMetric Secure Vault )"))
}

// Entries prints the vault listing.
func (c *Console) Entries(entries []models.VaultEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(c.out, c.styles.muted.Render(app.MsgVaultEmpty))
		return
	}

	t := c.table("Name", "Size", "Modified")
	for _, e := range entries {
		t.Row(e.Name, humanSize(e.Size), e.ModifiedAt.Local().Format(time.DateTime))
	}
	fmt.Fprintln(c.out, c.styles.title.Render(app.TitleVaultFiles))
	fmt.Fprintln(c.out, t.Render())
}

// AuditTrail prints audit events, newest first as given.
func (c *Console) AuditTrail(events []models.AuditEvent) {
	if len(events) == 0 {
		fmt.Fprintln(c.out, c.styles.muted.Render("No audit events recorded."))
		return
	}

	t := c.table("Time", "Operation", "Entry", "Attempt", "Outcome", "Reason")
	for _, ev := range events {
		target := ev.Target
		if target == "" {
			target = "-"
		}
		reason := string(ev.Reason)
		if reason == "" {
			reason = "-"
		}
		t.Row(
			ev.OccurredAt.Local().Format(time.DateTime),
			string(ev.Operation),
			target,
			strconv.Itoa(ev.Attempt),
			string(ev.Outcome),
			reason,
		)
	}
	fmt.Fprintln(c.out, t.Render())
}

// Status prints which factors are enrolled.
func (c *Console) Status(st models.EnrollmentStatus) {
	mark := func(ok bool) string {
		if ok {
			return c.styles.success.Render("enrolled")
		}
		return c.styles.warning.Render("missing")
	}
	fmt.Fprintf(c.out, "%s %s\n", c.styles.title.Render("Face: "), mark(st.Face))
	fmt.Fprintf(c.out, "%s %s\n", c.styles.title.Render("Voice:"), mark(st.Voice))
}

// Println prints a plain line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.muted).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.styles.header.Padding(0, 1)
			}
			return c.styles.info.Padding(0, 1)
		})
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
