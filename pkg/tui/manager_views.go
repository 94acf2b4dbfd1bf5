package tui

import (
	"fmt"
	"strings"
)

func (m *ManagerModel) View() string {
	if !m.active {
		return ""
	}

	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render("Custom Emojis"))
	b.WriteString("\n\n")

	switch m.mode {
	case managerList:
		b.WriteString(m.listView())
	case managerAdd:
		b.WriteString(m.addView())
	case managerPickImage:
		b.WriteString(formLabelStyle.Render("Pick an image file"))
		b.WriteString("\n\n")
		b.WriteString(m.files.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter select · esc back"))
	case managerPickImport:
		b.WriteString(formLabelStyle.Render("Pick a JSON export file"))
		b.WriteString("\n\n")
		b.WriteString(m.files.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter import · esc back"))
	case managerConfirmClear:
		b.WriteString(fmt.Sprintf("Remove all %d custom emojis?", len(m.records)))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("y confirm · n cancel"))
	}

	if m.formErr != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.formErr))
	}

	return overlayStyle.Render(b.String())
}

func (m *ManagerModel) listView() string {
	var b strings.Builder

	if len(m.records) == 0 {
		b.WriteString(helpStyle.Render("No custom emojis yet. Press 'a' to add one."))
		b.WriteString("\n")
	} else {
		for i, rec := range m.records {
			line := fmt.Sprintf(":%s:  %s  %s", rec.ID, rec.Name, truncateStr(rec.Src, 36))
			if i == m.cursor {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a add · d delete · e export · i import · x clear all · esc close"))
	return b.String()
}

func (m *ManagerModel) addView() string {
	var b strings.Builder

	b.WriteString(formLabelStyle.Render("Name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")

	b.WriteString(formLabelStyle.Render("ID"))
	b.WriteString("\n")
	b.WriteString(m.idInput.View())
	b.WriteString("\n\n")

	b.WriteString(formLabelStyle.Render("Image (URL or file path)"))
	b.WriteString("\n")
	b.WriteString(m.srcInput.View())
	b.WriteString("\n\n")

	if m.checking {
		b.WriteString(m.spin.View())
		b.WriteString(" checking URL…")
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab next field · ctrl+f browse files · ctrl+s save · esc back"))
	return b.String()
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
