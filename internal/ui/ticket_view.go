package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"

	"jiractl/internal/domain"
	"jiractl/internal/logging"
	"jiractl/internal/theme"
)

const (
	separator      = "---------------------------------------------------------------"
	unknownDate    = "an unknown date"
	unknownProject = "an unknown project"
	unknownUser    = "an unknown user"
	currentUser    = "you"
)

// typeFormat is the colour and icon of an issue type
type typeFormat struct {
	color lipgloss.Color
	icon  string
}

// typeFormats maps lower-cased issue type names, English and French
var typeFormats = map[string]typeFormat{
	"bogue":             {theme.ColorTypeBug, "🔴"},
	"bug":               {theme.ColorTypeBug, "🔴"},
	"epic":              {theme.ColorTypeEpic, "⚡"},
	"investigation":     {theme.ColorTypeMuted, "🕵️"},
	"sous-tâche":        {theme.ColorTypeTask, "⭕"},
	"subtask":           {theme.ColorTypeTask, "⭕"},
	"tâche":             {theme.ColorTypeTask, "☑"},
	"task":              {theme.ColorTypeTask, "☑"},
	"story":             {theme.ColorTypeStory, "🔖"},
	"user story":        {theme.ColorTypeStory, "🔖"},
	"support":           {theme.ColorTypeMuted, "🆘"},
	"aide informatique": {theme.ColorTypeMuted, "🆘"},
}

func formatForType(issueType domain.IssueType) typeFormat {
	if format, ok := typeFormats[strings.ToLower(issueType.Name)]; ok {
		return format
	}
	return typeFormat{color: theme.ColorTypeDefault}
}

// dateLayouts holds the short date layout of each supported locale.
// The first entry is the fallback.
var dateLayouts = []struct {
	tag    language.Tag
	layout string
}{
	{language.AmericanEnglish, "1/2/2006"},
	{language.BritishEnglish, "02/01/2006"},
	{language.French, "02/01/2006"},
	{language.German, "2.1.2006"},
	{language.Spanish, "2/1/2006"},
	{language.Italian, "2/1/2006"},
	{language.Dutch, "2-1-2006"},
	{language.BrazilianPortuguese, "02/01/2006"},
	{language.Portuguese, "02/01/2006"},
	{language.Japanese, "2006/1/2"},
	{language.Chinese, "2006/1/2"},
	{language.Korean, "2006. 1. 2."},
}

var dateMatcher = func() language.Matcher {
	tags := make([]language.Tag, 0, len(dateLayouts))
	for _, entry := range dateLayouts {
		tags = append(tags, entry.tag)
	}
	return language.NewMatcher(tags)
}()

// dateLayoutFor returns the date layout closest to a BCP 47 locale
func dateLayoutFor(locale string) string {
	if locale == "" {
		return dateLayouts[0].layout
	}

	tag, err := language.Parse(locale)
	if err != nil {
		logging.Logger.Warn("Invalid locale, using default date format", "locale", locale, "error", err)
		return dateLayouts[0].layout
	}

	_, index, confidence := dateMatcher.Match(tag)
	if confidence == language.No {
		return dateLayouts[0].layout
	}
	return dateLayouts[index].layout
}

// TicketView prints tickets in the terminal
type TicketView struct {
	dateLayout string
	markdown   *MarkdownRenderer
	now        func() time.Time
	out        io.Writer
	username   string
}

// NewTicketView creates a new TicketView. Users whose email or login
// equals username are shown as "you".
func NewTicketView(out io.Writer, locale, username string) *TicketView {
	return &TicketView{
		dateLayout: dateLayoutFor(locale),
		markdown:   NewMarkdownRenderer(),
		now:        time.Now,
		out:        out,
		username:   username,
	}
}

// Display writes the ticket to the view output
func (v *TicketView) Display(ticket *domain.Ticket) {
	fmt.Fprintln(v.out, v.Render(ticket))
}

// Render formats a ticket: title, description between separators, then
// the creation and assignment lines
func (v *TicketView) Render(ticket *domain.Ticket) string {
	format := formatForType(ticket.Type)
	typeStyle := lipgloss.NewStyle().Foreground(format.color)
	boldTypeStyle := typeStyle.Bold(true)

	var title strings.Builder
	if format.icon != "" {
		title.WriteString(typeStyle.Render(format.icon) + " ")
	}
	title.WriteString(typeStyle.Render("-") + " ")
	title.WriteString(boldTypeStyle.Render(ticket.Key) + " ")
	title.WriteString(typeStyle.Render("-") + " ")
	title.WriteString(boldTypeStyle.Render(ticket.Summary))

	projectName := unknownProject
	if ticket.Project != nil && ticket.Project.Name != "" {
		projectName = ticket.Project.Name
	}

	lines := []string{
		title.String(),
		separator,
		renderLines(theme.DescriptionStyle, v.markdown.Render(ticket.Description)),
		separator,
		theme.MetaStyle.Render("Created by ") +
			theme.MetaValueStyle.Render(v.formatUser(ticket.Creator)) +
			theme.MetaStyle.Render(" on "+v.formatDate(ticket.Created)),
		theme.MetaStyle.Render("Assigned to ") +
			theme.MetaValueStyle.Render(v.formatUser(ticket.Assignee)) +
			theme.MetaStyle.Render(" in ") +
			theme.MetaValueStyle.Render(projectName) +
			theme.MetaStyle.Render(" (") +
			theme.MutedStyle.Render(ticket.URL) +
			theme.MetaStyle.Render(")"),
	}
	return strings.Join(lines, "\n")
}

func (v *TicketView) formatUser(user *domain.User) string {
	if user == nil {
		return unknownUser
	}
	if v.username != "" && (user.EmailAddress == v.username || user.Name == v.username) {
		return currentUser
	}
	if user.DisplayName == "" {
		return unknownUser
	}
	return user.DisplayName
}

func (v *TicketView) formatDate(date time.Time) string {
	if date.IsZero() {
		return unknownDate
	}
	return date.Format(v.dateLayout) + " (" + humanize.RelTime(date, v.now(), "ago", "from now") + ")"
}
