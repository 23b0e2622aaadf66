package vm

import "testing"

func TestComposeEnvIncludesBothCases(t *testing.T) {
	env := ComposeEnv()
	want := []string{
		"HTTP_PROXY=http://127.0.0.1:8080",
		"HTTPS_PROXY=http://127.0.0.1:8080",
		"NO_PROXY=localhost,127.0.0.1,::1",
		"http_proxy=http://127.0.0.1:8080",
		"https_proxy=http://127.0.0.1:8080",
		"no_proxy=localhost,127.0.0.1,::1",
	}
	if len(env) != len(want) {
		t.Fatalf("expected %d env vars, got %d: %v", len(want), len(env), env)
	}
	for i, w := range want {
		if env[i] != w {
			t.Fatalf("env[%d] = %q, want %q", i, env[i], w)
		}
	}
}
