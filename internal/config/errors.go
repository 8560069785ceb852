package config

import "fmt"

// ConfigNotFoundError indicates the config file does not exist.
type ConfigNotFoundError struct {
	Path string
	Hint string
}

func (e *ConfigNotFoundError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("config file not found: %s (%s)", e.Path, e.Hint)
	}
	return fmt.Sprintf("config file not found: %s", e.Path)
}

// InvalidConfigError indicates the config file exists but cannot be parsed.
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := fmt.Sprintf("invalid config %s: %s", e.Path, e.Message)
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

// PermissionError indicates the config file could not be accessed.
type PermissionError struct {
	Path string
	Op   string
	Fix  string
}

func (e *PermissionError) Error() string {
	msg := fmt.Sprintf("permission denied: cannot %s %s", e.Op, e.Path)
	if e.Fix != "" {
		msg += " (" + e.Fix + ")"
	}
	return msg
}
