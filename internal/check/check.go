// Package check provides the settings diagnostics behind `pathprune check`:
// it explains what the configured rules will do and flags values that
// would make a batch a no-op.
package check

import (
	"github.com/backmassage/pathprune/internal/config"
	"github.com/backmassage/pathprune/internal/display"
	"github.com/backmassage/pathprune/internal/prune"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// stays testable with a recording logger.
type Logger interface {
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(string, ...interface{})
}

// RunCheck logs the effective pruning settings and, for each of cfg.Paths,
// the rewrite they would produce. It returns false when the window count
// is invalid, since every batch would then be left unchanged.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Settings Check ===")

	ok := checkWindow(cfg, log)
	checkWords(cfg, log)
	checkTemplate(cfg, log, ok)

	if len(cfg.Paths) > 0 {
		rw := prune.NewRewriter(cfg.Settings())
		log.Info("Samples:")
		for _, p := range cfg.Paths {
			log.Info("  %s -> %s", p, rw.RewriteString(p))
		}
	}
	return ok
}

// checkWindow reports how --max-folders will be read.
func checkWindow(cfg *config.Config, log Logger) bool {
	n, err := prune.ParseCount(cfg.MaxFolders)
	if err != nil {
		log.Error("Max folders: %v", err)
		log.Warn("Nothing will be rewritten until this is fixed")
		return false
	}
	log.Info("Max folders: %q -> %s", cfg.MaxFolders, n.Describe())
	return true
}

// checkWords lists the parsed word lists and words that are both preferred
// and avoided (the preference wins).
func checkWords(cfg *config.Config, log Logger) {
	prefer := prune.ParsePreferences(cfg.PriorityWords)
	avoid := prune.ParseAvoidance(cfg.AvoidWords)

	log.Info("Preferred (in order): %s", display.FormatWords(prefer))
	// Listed in configured order; matching itself ignores order.
	log.Info("Avoided: %s", display.FormatWords(prune.ParsePreferences(cfg.AvoidWords)))

	for _, w := range prefer {
		if avoid.Contains(w) {
			log.Warn("%q is both preferred and avoided; preference wins", w)
		}
	}
}

// checkTemplate reports where a // marker in the template fences the path.
// An invalid count disables the marker too, so countOK qualifies the report.
func checkTemplate(cfg *config.Config, log Logger, countOK bool) {
	if cfg.Template == "" {
		log.Debug("Template: (none)")
		return
	}
	m := prune.TemplateMarker(cfg.Template)
	if m < 0 {
		log.Info("Template: no // marker, max folders applies")
		return
	}
	if !countOK {
		log.Info("Template: // marker after %s; inactive until max folders is fixed",
			display.FormatCount(m, "component"))
		return
	}
	log.Info("Template: // marker after %s; max folders is ignored",
		display.FormatCount(m, "component"))
}
