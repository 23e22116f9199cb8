package main

import (
	"os"
	"strings"
)

func envFlagEnabled(name string) bool {
	value := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch value {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}

func gogitFastPathDisabled() bool {
	return envFlagEnabled("SPAWN_DISABLE_GOGIT")
}

func editorLaunchDisabled() bool {
	return envFlagEnabled("SPAWN_NO_EDITOR")
}
