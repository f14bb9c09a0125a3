// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea front end of the grocery list client.
//
// A single Model renders the grouped list and the add-item and recipe
// overlays. Server and assistant calls run as tea.Cmd values, and the list
// is patched only with records the server returned.
package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-grocery-list/internal/logger"
	"github.com/MKhiriev/go-grocery-list/internal/service"
	"github.com/MKhiriev/go-grocery-list/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := NewModel(ctx, t.services, t.buildInfo, t.logger)
	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (m Model) View() string {
	var (
		title   = "GROCERY LIST"
		body    string
		hotKeys string
	)

	switch m.mode {
	case modeBuildInfo:
		return renderBuildInfoWindow(m.buildInfo, m.serverVersion)
	case modeAdd:
		title = "ADD ITEM"
		body = m.viewAdd()
		hotKeys = m.addHotKeys()
	case modeRecipe:
		title = "IMPORT RECIPE"
		body = m.viewRecipe()
		hotKeys = recipeHotKeys(m.importing)
	case modeSearch:
		body = m.viewList()
		hotKeys = "enter: keep search │ esc: clear search"
	case modeLocation:
		body = m.viewList()
		hotKeys = "enter: set market │ esc: cancel"
	default:
		body = m.viewList()
		hotKeys = m.listHotKeys()
	}

	if line := m.statusLine(); line != "" {
		body += "\n" + line + "\n"
	}

	return renderPage(title, body, hotKeys)
}

func (m Model) statusLine() string {
	var parts []string
	if m.busy() && !m.loading {
		parts = append(parts, m.spinner.View())
	}
	if m.importing {
		parts = append(parts, "importing")
	}
	switch {
	case m.errMsg != "":
		parts = append(parts, errorStyle.Render(m.errMsg))
	case m.status != "":
		parts = append(parts, statusStyle.Render(m.status))
	}
	return strings.Join(parts, " ")
}
