// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/gomlx/dispatch/pkg/core/dispatcher/config"
	"github.com/gomlx/dispatch/pkg/core/dispatchkeys"
)

// keyGroup returns a short description of the kind of key.
func keyGroup(key dispatchkeys.DispatchKey) string {
	switch {
	case key.IsBackend():
		return "backend"
	case key >= dispatchkeys.Autograd:
		return "functionality"
	default:
		return "dispatch"
	}
}

// keysTable lists all valid keys, in order of priority.
func keysTable() string {
	table := newTable([]string{"#", "key", "group"}, lipgloss.Right, lipgloss.Left)
	full := dispatchkeys.Full()
	for key := range full.Keys() {
		table.Row(highlightNone, fmt.Sprintf("%d", int(key)), key.String(), keyGroup(key))
	}
	table.Row(highlightNone, "", humanize.Comma(int64(full.Len()))+" keys", "")
	return table.String()
}

// resolveReport describes the effective keys after applying the configuration, the presence of each
// key, and the key that takes precedence.
func resolveReport(keys dispatchkeys.Set, c config.Config) string {
	effective := c.Apply(keys)
	winner := effective.HighestPriority()
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Key set"))
	sb.WriteString("\n")
	summary := newTable(nil, lipgloss.Right, lipgloss.Left)
	summary.Row(highlightNone, "requested", keys.String())
	configDesc := c.String()
	if configDesc == "" {
		configDesc = "(none)"
	}
	summary.Row(highlightNone, "config", configDesc)
	summary.Row(highlightNone, "effective", effective.String())
	summary.Row(highlightNone, "# keys", humanize.Comma(int64(effective.Len())))
	summary.Row(highlightWinner, "highest priority", fmt.Sprintf("%s (#%d)", winner, int(winner)))
	sb.WriteString(summary.String())
	sb.WriteString("\n")

	sb.WriteString(titleStyle.Render("Presence"))
	sb.WriteString("\n")
	presence := newTable([]string{"#", "key", "present", "rank"}, lipgloss.Right, lipgloss.Left)
	remaining := effective.Len()
	var stream strings.Builder
	for cursor := effective.Begin(); !cursor.Done(); cursor.Next() {
		key := cursor.Key()
		if !cursor.Value() {
			stream.WriteByte('0')
			presence.Row(highlightNone, fmt.Sprintf("%d", int(key)), key.String(), "", "")
			continue
		}
		stream.WriteByte('1')
		highlight := highlightPresent
		if key == winner {
			highlight = highlightWinner
		}
		presence.Row(highlight, fmt.Sprintf("%d", int(key)), key.String(), "yes", humanize.Ordinal(remaining))
		remaining--
	}
	sb.WriteString(presence.String())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "presence stream: %s\n", stream.String())
	return sb.String()
}
