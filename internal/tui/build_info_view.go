// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-grocery-list/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	rows := []struct{ label, value string }{
		{"client version", info.BuildVersion()},
		{"build date", info.BuildDate()},
		{"commit", info.BuildCommit()},
		{"server version", serverVersion},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-15s %s", r.label+":", valueOrNA(r.value)))
	}

	return renderPage("ABOUT GROCERY LIST", strings.Join(lines, "\n"), "esc: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v == "" {
		return "N/A"
	}
	return v
}
