// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/p09s/folio/content"
	"github.com/p09s/folio/icon"
	"github.com/p09s/folio/style"
	"github.com/p09s/folio/theme"
	"github.com/samber/lo"
)

func (b *statefulBubble) contentWidth() int {
	return b.viewportC.Width
}

func sectionTitle(label string, palette theme.Palette) string {
	return style.Tag(palette.Base, palette.Accent())(strings.ToUpper(label))
}

func (b *statefulBubble) renderHero(palette theme.Palette) string {
	profile := b.payload.Profile

	socials := lo.Map(b.payload.Socials, func(s content.Social, _ int) string {
		return style.Fg(palette.Blue)(s.Name) + " " + style.Faint(s.URL)
	})

	lines := []string{
		"",
		style.New().Bold(true).Foreground(palette.Accent()).Render(profile.Name),
		style.Fg(palette.Subtext)(profile.Role),
		"",
		style.Italic(wordwrap.String(profile.Tagline, b.contentWidth())),
		"",
		fmt.Sprintf("%s %s   %s %s",
			icon.Get(icon.Location), style.Fg(palette.Text)(profile.Location),
			icon.Get(icon.Clock), style.Fg(palette.Text)(b.now.Format("15:04:05"))),
		"",
		strings.Join(socials, "   "),
	}

	if b.showHint && !b.hasScrolled {
		lines = append(lines, "", style.Faint(icon.Get(icon.Hint)+" scroll or tab through sections"))
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) renderWork(palette theme.Palette) string {
	lines := []string{sectionTitle("Work", palette), ""}

	for _, project := range b.payload.Projects {
		title := style.New().Bold(true).Foreground(palette.Text).Render(project.Title)
		if project.Featured {
			title += " " + style.Fg(palette.Yellow)("★")
		}

		lines = append(lines,
			title,
			style.Fg(palette.Subtext)(project.Category)+"  "+style.Fg(palette.Green)(project.Stats),
			wordwrap.String(style.Fg(palette.Text)(project.Description), b.contentWidth()),
			style.Faint(strings.Join(project.Tech, " · ")),
			"",
		)
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) renderJourney(palette theme.Palette) string {
	lines := []string{sectionTitle("Journey", palette), ""}

	for _, exp := range b.payload.Journey {
		lines = append(lines,
			style.New().Bold(true).Foreground(palette.Text).Render(exp.Role)+
				style.Fg(palette.Subtext)(" @ "+exp.Company),
			style.Faint(exp.Period),
			wordwrap.String(style.Fg(palette.Text)(exp.Description), b.contentWidth()),
			"",
		)
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) renderAbout(palette theme.Palette) string {
	return strings.Join([]string{
		sectionTitle("About", palette),
		"",
		wordwrap.String(style.Fg(palette.Text)(b.payload.Profile.Bio), b.contentWidth()),
	}, "\n")
}

func (b *statefulBubble) renderCommunity(palette theme.Palette) string {
	lines := []string{sectionTitle("Community", palette), ""}

	for _, record := range b.payload.Community {
		tags := lo.Map(record.Tags, func(tag string, _ int) string {
			return style.Tag(palette.Base, palette.Surface)(tag)
		})

		header := style.New().Bold(true).Foreground(palette.Text).Render(record.Role) +
			style.Fg(palette.Subtext)(" · "+record.Org)
		if record.Featured {
			header += " " + style.Fg(palette.Pink)("♥")
		}

		lines = append(lines,
			header,
			style.Faint(record.Period),
			wordwrap.String(style.Fg(palette.Text)(record.Description), b.contentWidth()),
			strings.Join(tags, " "),
			"",
		)
	}

	return strings.Join(lines, "\n")
}

func (b *statefulBubble) renderContact(palette theme.Palette) string {
	profile := b.payload.Profile

	socials := lo.Map(b.payload.Socials, func(s content.Social, _ int) string {
		return style.Fg(palette.Blue)(s.Name) + " " + style.Faint(s.URL)
	})

	return strings.Join([]string{
		sectionTitle("Contact", palette),
		"",
		style.Fg(palette.Text)("Have an idea? Let's build it together."),
		"",
		fmt.Sprintf("%s %s  %s",
			icon.Get(icon.Mail),
			style.New().Bold(true).Foreground(palette.Accent()).Render(profile.Email),
			style.Faint("("+b.keymap.copyEmail.Help().Key+" to copy)")),
		"",
		strings.Join(socials, "   "),
	}, "\n")
}
