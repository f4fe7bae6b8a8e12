package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/liv/internal/render"
	"github.com/example/liv/internal/theme"
	"github.com/example/liv/internal/viewstate"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	// Context for parsing
	var currentSection string
	var currentTheme *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		// Handle Sections
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			currentTheme = nil

			if strings.HasPrefix(currentSection, "theme.") {
				themeName := strings.TrimPrefix(currentSection, "theme.")
				// Start with defaults so missing keys are fine
				currentTheme = theme.Default()
				currentTheme.Name = themeName
				cfg.Themes[themeName] = currentTheme
			}
			continue
		}

		// Parse Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		// Remove quotes if present
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch {
		case currentTheme != nil:
			err = currentTheme.Set(key, value)
		case currentSection == "panels":
			err = setPanelField(&cfg.Panels, key, value)
		case currentSection == "keys":
			err = setKeyField(&cfg.Keys, key, value)
		case currentSection == "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case currentSection == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			if currentSection == "" {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
			return nil, fmt.Errorf("error in section [%s]: %w", currentSection, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "title":
		cfg.Title = value
	case "theme":
		cfg.Theme = value
	case "backend":
		cfg.Backend = value
	case "filter":
		if _, err := render.ParseFilter(value); err != nil {
			return err
		}
		cfg.Filter = value
	case "zoom_multiplier":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid zoom_multiplier %q", value)
		}
		cfg.ZoomMultiplier = f
	case "print_debug_info":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		cfg.PrintDebugInfo = b
	}
	return nil
}

func setPanelField(p *Panels, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	panel, err := viewstate.ParsePanel(key)
	if err != nil {
		return nil // Ignore unknown panels
	}
	switch panel {
	case viewstate.ActionBar:
		p.ActionBar = b
	case viewstate.Debug:
		p.Debug = b
	case viewstate.Metadata:
		p.Metadata = b
	case viewstate.Example:
		p.Example = b
	}
	return nil
}

func setKeyField(k *Keys, key, value string) error {
	panel, err := viewstate.ParsePanel(key)
	if err != nil {
		return nil // Ignore unknown panels
	}
	if _, err := viewstate.ParseKey(value); err != nil {
		return err
	}
	if strings.EqualFold(value, "none") {
		value = ""
	}
	switch panel {
	case viewstate.ActionBar:
		k.ActionBar = value
	case viewstate.Debug:
		k.Debug = value
	case viewstate.Metadata:
		k.Metadata = value
	case viewstate.Example:
		k.Example = value
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := parseBool(key, value)
	if err != nil {
		return err
	}
	switch strings.ToLower(key) {
	case "copy":
		n.Copy = b
	}
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	return b, nil
}
