package vm

// proxyAddr is the fixed local address the egress proxy addon listens on
// inside the container (spec §4.5 step 4).
const proxyAddr = "http://127.0.0.1:8080"

// ComposeEnv returns the proxy environment variables set unconditionally on
// every session container, both upper and lower case spellings since tools
// disagree on which they honor (spec §4.5 step 4).
func ComposeEnv() []string {
	noProxy := "localhost,127.0.0.1,::1"
	return []string{
		"HTTP_PROXY=" + proxyAddr,
		"HTTPS_PROXY=" + proxyAddr,
		"NO_PROXY=" + noProxy,
		"http_proxy=" + proxyAddr,
		"https_proxy=" + proxyAddr,
		"no_proxy=" + noProxy,
	}
}
