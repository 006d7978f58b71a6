// Package render turns engine Views and snapshots into terminal text.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/Redwards2/MeijerShoppingList/pkg/types"
)

// Title heads every rendered list view.
const Title = "Weekly Shopping List"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	captionStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
	editStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	aisleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// Header returns the section heading for a category.
func Header(c types.Category) string {
	return c.Label() + " Items"
}

// EmptyCaption returns the placeholder shown for an empty category.
func EmptyCaption(c types.Category) string {
	return fmt.Sprintf("No %s items yet.", strings.ToLower(c.Label()))
}

// View renders both categories side by side. width is the width of each
// panel; zero lets lipgloss size panels to their content.
func View(v types.View, width int) string {
	panels := make([]string, 0, len(types.Categories))
	for _, c := range types.Categories {
		style := panelStyle
		if width > 0 {
			style = style.Width(width)
		}
		panels = append(panels, style.Render(section(v, c)))
	}
	return strings.Join([]string{
		titleStyle.Render(Title),
		lipgloss.JoinHorizontal(lipgloss.Top, panels...),
	}, "\n")
}

func section(v types.View, c types.Category) string {
	lines := []string{headerStyle.Render(Header(c))}
	items := v.Items(c)
	if len(items) == 0 {
		return strings.Join(append(lines, captionStyle.Render(EmptyCaption(c))), "\n")
	}
	for i, item := range items {
		line := fmt.Sprintf("%d. %s", i+1, item)
		if aisle, ok := v.Aisles[item]; ok {
			line += " " + aisleStyle.Render("["+aisle+"]")
		}
		if v.Editing != nil && v.Editing.Category == c && v.Editing.Index == i {
			line = editStyle.Render("> " + line + " (editing)")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// ListsMarkdown renders lists as a Markdown document with one section per
// category.
func ListsMarkdown(title string, l types.Lists) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", title)
	for _, c := range types.Categories {
		fmt.Fprintf(&b, "\n## %s\n\n", Header(c))
		items := l.Items(c)
		if len(items) == 0 {
			fmt.Fprintf(&b, "_%s_\n", EmptyCaption(c))
			continue
		}
		for _, item := range items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}

// SnapshotMarkdown renders a saved snapshot.
func SnapshotMarkdown(s types.Snapshot) string {
	md := ListsMarkdown("Snapshot: "+s.Name, s.Lists())
	if !s.CreatedAt.IsZero() {
		md += fmt.Sprintf("\nSaved %s\n", s.CreatedAt.Local().Format("Mon Jan 2 2006 15:04"))
	}
	return md
}

// MealPlanMarkdown renders the meal-plan options as three sections.
func MealPlanMarkdown(p types.MealPlan) string {
	var b strings.Builder
	b.WriteString("# Meal Plan\n")
	for _, col := range []struct {
		name  string
		items []string
	}{
		{"Meat", p.Meats},
		{"Vegetable", p.Vegetables},
		{"Side", p.Sides},
	} {
		fmt.Fprintf(&b, "\n## %s\n\n", col.name)
		for _, item := range col.items {
			fmt.Fprintf(&b, "- %s\n", item)
		}
	}
	return b.String()
}

// AislesMarkdown renders known aisle annotations as a sorted table.
func AislesMarkdown(aisles map[string]string) string {
	if len(aisles) == 0 {
		return ""
	}
	items := make([]string, 0, len(aisles))
	for item := range aisles {
		items = append(items, item)
	}
	sort.Strings(items)

	var b strings.Builder
	b.WriteString("| Item | Aisle |\n|---|---|\n")
	for _, item := range items {
		fmt.Fprintf(&b, "| %s | %s |\n", item, aisles[item])
	}
	return b.String()
}

// Markdown renders md for the terminal with the named glamour style
// ("dark", "light", "notty", ...). On failure it returns md unchanged.
func Markdown(md, style string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	if style == "" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
