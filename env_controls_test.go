package main

import "testing"

func TestEnvFlagEnabled(t *testing.T) {
	cases := map[string]bool{
		"1":     true,
		"true":  true,
		"YES":   true,
		" on ":  true,
		"":      false,
		"0":     false,
		"false": false,
		"nope":  false,
	}
	for value, want := range cases {
		t.Setenv("SPAWN_TEST_FLAG", value)
		if got := envFlagEnabled("SPAWN_TEST_FLAG"); got != want {
			t.Fatalf("envFlagEnabled(%q) = %v, want %v", value, got, want)
		}
	}
}
