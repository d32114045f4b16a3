package platform

import (
	"runtime"
	"sort"
	"strings"
	"unicode/utf8"
)

// IsMac reports whether we run on macOS (darwin).
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

var modifierOrder = map[string]int{
	"ctrl":  0,
	"super": 1,
	"alt":   2,
	"shift": 3,
}

var modifierAliases = map[string]string{
	"ctrl": "ctrl", "control": "ctrl", "cmd": "ctrl", "command": "ctrl", "⌘": "ctrl",
	"alt": "alt", "option": "alt", "opt": "alt", "⌥": "alt",
	"meta": "super", "win": "super", "windows": "super", "super": "super",
	"shift": "shift", "⇧": "shift",
}

// CanonicalKeyForLookup normalizes key descriptions so different aliases resolve consistently.
// Modifiers are sorted in a stable order and cmd maps to ctrl because terminals
// deliver the command key as ctrl.
func CanonicalKeyForLookup(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if key == " " || strings.EqualFold(key, "space") {
		return "space"
	}

	var mods, main []string
	seen := map[string]bool{}
	for _, part := range strings.Split(key, "+") {
		p := strings.ToLower(strings.TrimSpace(part))
		if p == "" {
			continue
		}
		if mod, ok := modifierAliases[p]; ok {
			if !seen[mod] {
				seen[mod] = true
				mods = append(mods, mod)
			}
			continue
		}
		switch p {
		case "escape":
			p = "esc"
		case "return":
			p = "enter"
		}
		main = append(main, p)
	}

	sort.SliceStable(mods, func(i, j int) bool {
		return modifierOrder[mods[i]] < modifierOrder[mods[j]]
	})
	return strings.Join(append(mods, main...), "+")
}

// MatchesKey returns true if two key descriptions should be considered equivalent.
func MatchesKey(actual string, binding string) bool {
	return CanonicalKeyForLookup(actual) == CanonicalKeyForLookup(binding)
}

// DisplayKey formats a key binding for UI hints with platform-friendly modifier names.
func DisplayKey(key string) string {
	canonical := CanonicalKeyForLookup(key)
	if canonical == "" {
		return ""
	}
	parts := strings.Split(canonical, "+")
	for i, p := range parts {
		switch p {
		case "ctrl":
			if IsMac() {
				parts[i] = "Cmd"
			} else {
				parts[i] = "Ctrl"
			}
		case "alt":
			if IsMac() {
				parts[i] = "Option"
			} else {
				parts[i] = "Alt"
			}
		case "esc":
			parts[i] = "Esc"
		default:
			if utf8.RuneCountInString(p) == 1 || strings.HasPrefix(p, "f") && len(p) <= 3 {
				parts[i] = strings.ToUpper(p)
			} else {
				parts[i] = strings.ToUpper(p[:1]) + p[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}

// domKeys maps Bubble Tea key names to the key names used by key-down events.
var domKeys = map[string]string{
	"esc":       "Escape",
	"enter":     "Enter",
	"tab":       "Tab",
	"shift+tab": "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"left":      "ArrowLeft",
	"right":     "ArrowRight",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	"space":     " ",
	" ":         " ",
}

// DOMKey converts a Bubble Tea key string ("esc", "a", "ctrl+o") into the key
// name carried by key-down events ("Escape", "a", "o"). Modifiers are dropped.
func DOMKey(teaKey string) string {
	if utf8.RuneCountInString(teaKey) == 1 {
		return teaKey
	}
	if name, ok := domKeys[teaKey]; ok {
		return name
	}
	canonical := CanonicalKeyForLookup(teaKey)
	if name, ok := domKeys[canonical]; ok {
		return name
	}
	parts := strings.Split(canonical, "+")
	last := parts[len(parts)-1]
	if name, ok := domKeys[last]; ok {
		return name
	}
	if strings.HasPrefix(last, "f") && len(last) > 1 && len(last) <= 3 {
		return strings.ToUpper(last)
	}
	return last
}
