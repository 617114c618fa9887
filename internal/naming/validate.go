// Package naming validates proposed project names against the npm package
// naming rules, since the generated project's manifest carries the name.
package naming

import (
	"fmt"
	"regexp"
	"strings"
)

const maxNameLength = 214

var (
	allowedCharset = regexp.MustCompile(`^[a-z0-9-._]+$`)
	urlSafe        = regexp.MustCompile(`^[a-zA-Z0-9-._~]+$`)

	// Node core modules plus names npm treats as unpublishable.
	reservedNames = map[string]struct{}{
		"node_modules": {}, "favicon.ico": {},
		"assert": {}, "buffer": {}, "child_process": {}, "cluster": {},
		"console": {}, "constants": {}, "crypto": {}, "dgram": {}, "dns": {},
		"domain": {}, "events": {}, "fs": {}, "http": {}, "https": {},
		"module": {}, "net": {}, "os": {}, "path": {}, "punycode": {},
		"querystring": {}, "readline": {}, "repl": {}, "stream": {},
		"string_decoder": {}, "sys": {}, "timers": {}, "tls": {}, "tty": {},
		"url": {}, "util": {}, "vm": {}, "zlib": {},
	}
)

// Result carries the outcome of a validation run. Errors are ordered the way
// the rules are applied; all violations are collected, not short-circuited.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate applies the project naming rules in order and collects every
// violation. A zero-violation run yields Valid=true with no errors.
func Validate(name string) Result {
	var errs []string

	if name == "" {
		errs = append(errs, "name cannot be empty")
		return Result{Valid: false, Errors: errs}
	}

	if strings.HasPrefix(name, ".") {
		errs = append(errs, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		errs = append(errs, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		errs = append(errs, "name cannot contain leading or trailing spaces")
	}
	if name != strings.ToLower(name) {
		errs = append(errs, "name can no longer contain capital letters")
	}
	if strings.ContainsAny(name, "~'!()*") {
		errs = append(errs, `name can no longer contain special characters ("~'!()*")`)
	}
	if !urlSafe.MatchString(name) {
		errs = append(errs, "name can only contain URL-friendly characters")
	}
	if _, reserved := reservedNames[strings.ToLower(name)]; reserved {
		errs = append(errs, fmt.Sprintf("%s is a reserved name", name))
	}
	if len(name) > maxNameLength {
		errs = append(errs, fmt.Sprintf("name cannot contain more than %d characters", maxNameLength))
	}
	if !allowedCharset.MatchString(name) {
		errs = append(errs, "name may only contain lowercase letters, digits, hyphens, periods and underscores")
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
