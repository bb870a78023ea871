package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/zancas/containment/internal/core/domain"
	"github.com/zancas/containment/internal/ui/output"
	"github.com/zancas/containment/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show scopes, base image and build state of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), st)
			return nil
		},
	}
}

func renderStatus(w io.Writer, st *domain.Status) {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())
	good := r.NewStyle().Foreground(style.Green)
	bad := r.NewStyle().Foreground(style.Red)
	warn := r.NewStyle().Foreground(style.Yellow)
	faint := r.NewStyle().Foreground(style.Slate)
	label := r.NewStyle().Bold(true).Width(12)

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n\n", r.NewStyle().Bold(true).Foreground(style.Accent).Render("Image"), st.Tag)

	for _, sc := range st.Scopes {
		icon, note := good.Render(style.Dot), ""
		if !sc.Paved {
			icon, note = faint.Render(style.Circle), faint.Render("  not paved")
		}
		fmt.Fprintf(&b, "  %s %s %s%s\n", icon, label.Render(sc.Scope.String()), sc.Dir, note)
	}
	b.WriteString("\n")

	base := faint.Render("unknown")
	if st.Image != nil {
		packager := string(st.Image.Packager)
		if packager == "" {
			packager = "no packager"
		}
		base = fmt.Sprintf("%s %s", st.Image.Reference, faint.Render("("+packager+")"))
	}
	fmt.Fprintf(&b, "  %s %s\n", label.Render("base image"), base)

	var dockerfile string
	switch {
	case st.Fingerprint == "":
		dockerfile = faint.Render("absent")
	case st.LastBuild == nil:
		dockerfile = warn.Render(style.Warning + " never built")
	case st.Stale():
		dockerfile = warn.Render(style.Warning + " changed since last build")
	default:
		dockerfile = good.Render(style.Check+" built") + " " +
			faint.Render(st.LastBuild.BuiltAt.UTC().Format("2006-01-02 15:04 UTC"))
	}
	fmt.Fprintf(&b, "  %s %s\n", label.Render("dockerfile"), dockerfile)

	image := bad.Render(style.Cross + " missing")
	if st.ImagePresent {
		image = good.Render(style.Check + " present")
	}
	fmt.Fprintf(&b, "  %s %s\n", label.Render("image"), image)

	_, _ = io.WriteString(w, b.String())
}
