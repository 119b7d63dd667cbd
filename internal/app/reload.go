package app

import (
	"github.com/dshills/linestorm/internal/config"
	"github.com/dshills/linestorm/internal/renderer/highlight"
)

// classifier returns the highlighter for a panel's file, caching one per
// path. Files chroma has no lexer for use the configured keywords.
func (app *Application) classifier(path string) highlight.Classifier {
	if c, ok := app.classifiers[path]; ok {
		return c
	}
	var c highlight.Classifier = app.keywords
	if path != "" {
		if ch := highlight.NewChroma(path); ch != nil {
			c = ch
		}
	}
	app.classifiers[path] = c
	return c
}

// applyConfig installs the theme and syntax settings of cfg.
func (app *Application) applyConfig(cfg *config.Config) error {
	theme, err := themeFrom(cfg.Theme)
	if err != nil {
		return err
	}

	styles := app.backend.Styles()
	styles.Theme = theme
	app.backend.SetStyles(styles)

	app.keywords = highlight.NewKeywords(cfg.Syntax.Keywords, cfg.Syntax.Types, cfg.Syntax.LineComment)
	clear(app.classifiers)
	app.config = cfg
	return nil
}

// reloadConfig re-reads the config file after a change. Only theme and
// syntax settings take effect; panel flags and logging keep their
// startup values. Errors leave the previous configuration in place.
func (app *Application) reloadConfig() {
	log := app.logger.WithComponent("config")

	cfg, err := config.LoadWith(app.configPath, config.Options{Lookup: app.opts.Env})
	if err == nil {
		cfg.Logging = app.config.Logging
		cfg.Editor = app.config.Editor
		err = app.applyConfig(cfg)
	}
	if err != nil {
		app.editor.SetMessage("config: " + err.Error())
		log.Warn("reload %s: %v", app.configPath, err)
		return
	}

	app.editor.SetMessage("config reloaded")
	log.Info("reloaded %s", app.configPath)
}

func themeFrom(tc config.ThemeConfig) (*highlight.Theme, error) {
	names := tc.ThemeColors()
	hex := make(map[highlight.Category]string, len(names))
	for _, c := range highlight.Categories() {
		if v, ok := names[c.String()]; ok {
			hex[c] = v
		}
	}
	return highlight.NewTheme(hex)
}
