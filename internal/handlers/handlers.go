/*
Package handlers implements the five search handlers routed by the query
router: inline system controls, the calculator, web search prefixes, custom
user commands and the fallback application search.

Handlers never talk to processes, the clipboard or the browser directly; the
external actions are injected as small interfaces so the shell wires real
spawners and tests wire stubs. Activation callbacks log spawn failures and
still request the launcher close, so a missing external tool never hangs the
UI.
*/
package handlers

// Clipboard copies text on result activation (e.g. a computed value).
type Clipboard interface {
	Copy(text string) error
}

// URLOpener opens a URL in the default browser.
type URLOpener interface {
	OpenURL(url string) error
}

// Spawner runs a shell command, fire and forget.
type Spawner interface {
	Run(command string) error
}
